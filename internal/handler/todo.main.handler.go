package handler

import (
	"net/http"

	"todo-service/internal/usecase"
	"todo-service/pkg/response"
)

type APIHandler struct {
	userUC *usecase.UserUsecase
	todoUC *usecase.TodoUsecase
	otpUC  *usecase.OTPUsecase
}

func NewAPIHandler(
	userUC *usecase.UserUsecase,
	todoUC *usecase.TodoUsecase,
	otpUC *usecase.OTPUsecase,
) *APIHandler {
	return &APIHandler{
		userUC: userUC,
		todoUC: todoUC,
		otpUC:  otpUC,
	}
}

func (h *APIHandler) Ping(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"ping": "pong"})
}

func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"service": "todo-service", "status": "ok"})
}
