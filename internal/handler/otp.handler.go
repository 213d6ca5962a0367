package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"todo-service/internal/rate"
	"todo-service/internal/usecase"
	"todo-service/pkg/middleware"
	"todo-service/pkg/response"
	"todo-service/pkg/xerrors"
)

func (h *APIHandler) HandleRequestOTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok || userID == "" {
		response.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	masked, err := h.otpUC.Generate(r.Context(), userID, usecase.PurposeVerifyEmail)
	if err != nil {
		switch {
		case errors.Is(err, rate.ErrTooSoon), errors.Is(err, rate.ErrBlocked):
			response.Error(w, http.StatusTooManyRequests, err.Error())
		case errors.Is(err, xerrors.ErrUserNotFound):
			response.Error(w, http.StatusNotFound, "User not found")
		case errors.Is(err, xerrors.ErrUserNoEmail):
			response.Error(w, http.StatusBadRequest, err.Error())
		default:
			response.Error(w, http.StatusInternalServerError, "Failed to generate OTP")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("OTP sent to %s via email", masked),
		"purpose": usecase.PurposeVerifyEmail,
	})
}

func (h *APIHandler) HandleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.OtpCode == "" {
		response.Error(w, http.StatusBadRequest, "OTP code is required")
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok || userID == "" {
		response.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.otpUC.Verify(r.Context(), userID, usecase.PurposeVerifyEmail, req.OtpCode); err != nil {
		if errors.Is(err, xerrors.ErrInvalidOTP) {
			response.Error(w, http.StatusBadRequest, "Invalid or expired OTP")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to verify OTP")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "OTP verified successfully"})
}
