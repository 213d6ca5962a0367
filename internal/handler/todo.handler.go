package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"todo-service/pkg/middleware"
	"todo-service/pkg/response"
	"todo-service/pkg/xerrors"
)

func (h *APIHandler) HandleListTodos(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok || userID == "" {
		response.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	order := r.URL.Query().Get("order")
	todos, err := h.todoUC.List(r.Context(), userID, order)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to list todos")
		return
	}

	response.JSON(w, http.StatusOK, map[string]interface{}{"todos": todos})
}

func (h *APIHandler) HandleGetTodo(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok || userID == "" {
		response.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	todo, err := h.todoUC.Get(r.Context(), userID, chi.URLParam(r, "todoID"))
	if err != nil {
		if errors.Is(err, xerrors.ErrTodoNotFound) {
			response.Error(w, http.StatusNotFound, "Todo not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to fetch todo")
		return
	}

	response.JSON(w, http.StatusOK, todo)
}

func (h *APIHandler) HandleCreateTodo(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok || userID == "" {
		response.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	todo, err := h.todoUC.Create(r.Context(), userID, req.Content, req.IsDone)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrContentRequired), errors.Is(err, xerrors.ErrContentTooLong):
			response.Error(w, http.StatusBadRequest, err.Error())
		default:
			response.Error(w, http.StatusInternalServerError, "Failed to create todo")
		}
		return
	}

	response.JSON(w, http.StatusCreated, todo)
}

func (h *APIHandler) HandleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok || userID == "" {
		response.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	todo, err := h.todoUC.SetDone(r.Context(), userID, chi.URLParam(r, "todoID"), req.IsDone)
	if err != nil {
		if errors.Is(err, xerrors.ErrTodoNotFound) {
			response.Error(w, http.StatusNotFound, "Todo not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to update todo")
		return
	}

	response.JSON(w, http.StatusOK, todo)
}

func (h *APIHandler) HandleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok || userID == "" {
		response.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.todoUC.Delete(r.Context(), userID, chi.URLParam(r, "todoID")); err != nil {
		if errors.Is(err, xerrors.ErrTodoNotFound) {
			response.Error(w, http.StatusNotFound, "Todo not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to delete todo")
		return
	}

	response.NoContent(w)
}
