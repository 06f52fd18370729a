package adaptor

import (
	"errors"
	"net/http"

	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Movie   *MovieHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Movie:   NewMovieHandler(service.Movie, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

// handleServiceError translates service errors into HTTP statuses. Caller
// mistakes come back as 4xx with the sentinel's message; everything else is
// an upstream failure and returns a generic 500, details stay in the log.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrEmailTaken),
		errors.Is(err, usecase.ErrIncorrectPassword),
		errors.Is(err, usecase.ErrInvalidOTP),
		errors.Is(err, usecase.ErrInvalidMovieTitle),
		errors.Is(err, usecase.ErrBeforeReleaseDate):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrMovieNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
