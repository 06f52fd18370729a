package wire

import (
	"movie-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/forget-password", authHandler.ForgetPassword)
	r.Post("/verify-otp-email", authHandler.VerifyOTP)
	r.Post("/register123", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Post("/reset-password", authHandler.ResetPassword)

	// emailOtp is the same issue-or-replace flow under its legacy path
	r.Post("/emailOtp", authHandler.ForgetPassword)
}
