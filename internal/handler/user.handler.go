package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"todo-service/pkg/middleware"
	"todo-service/pkg/response"
	"todo-service/pkg/xerrors"
)

func (h *APIHandler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userUC.SignUp(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrUserAlreadyExists):
			response.Error(w, http.StatusConflict, err.Error())
		case errors.Is(err, xerrors.ErrInternalServer):
			response.Error(w, http.StatusInternalServerError, "Failed to create user")
		default:
			response.Error(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	response.JSON(w, http.StatusCreated, user)
}

func (h *APIHandler) HandleLogIn(w http.ResponseWriter, r *http.Request) {
	var req LogInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		response.Error(w, http.StatusBadRequest, "Username and password required")
		return
	}

	token, err := h.userUC.LogIn(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, xerrors.ErrInvalidCredentials) {
			response.Error(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Login failed")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"access_token": token})
}

func (h *APIHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok || userID == "" {
		response.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.userUC.GetUserByID(r.Context(), userID)
	if err != nil {
		response.Error(w, http.StatusNotFound, "User not found")
		return
	}

	response.JSON(w, http.StatusOK, user)
}
