package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// ForgetPassword handles POST /auth/forget-password and POST /auth/emailOtp.
// Both issue-or-replace the OTP for the email and mail it.
func (h *AuthHandler) ForgetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.ForgetPassword(r.Context(), req.Email); err != nil {
		// Store and delivery failures are both infrastructure faults here.
		h.log.Error("Failed to send OTP", zap.Error(err), zap.String("email", req.Email))
		utils.ResponseInternalError(w, "Failed to send OTP")
		return
	}

	utils.ResponseSuccess(w, "OTP sent successfully", nil)
}

// VerifyOTP handles POST /auth/verify-otp-email
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.VerifyOTP(r.Context(), req.Email, req.OTP); err != nil {
		if errors.Is(err, usecase.ErrInvalidOTP) {
			utils.ResponseBadRequest(w, "Invalid OTP", nil)
			return
		}
		h.log.Error("Failed to verify OTP", zap.Error(err), zap.String("email", req.Email))
		utils.ResponseInternalError(w, "Error verifying OTP")
		return
	}

	utils.ResponseSuccess(w, "OTP verified successfully", nil)
}

// Register handles POST /auth/register123
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Register(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, "User registered successfully", nil)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		// Unknown user and wrong password are both caller-correctable.
		if errors.Is(err, usecase.ErrUserNotFound) {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return
		}
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseRaw(w, http.StatusOK, resp)
}

// ResetPassword handles POST /auth/reset-password. Not gated on a prior
// verify-otp-email call; the endpoints are independent.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			utils.ResponseNotFound(w, "User not found")
			return
		}
		h.log.Error("Failed to reset password", zap.Error(err), zap.String("email", req.Email))
		utils.ResponseInternalError(w, "Failed to reset password")
		return
	}

	utils.ResponseSuccess(w, "Password reset successful", nil)
}
