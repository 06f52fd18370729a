package usecase

import "errors"

// Sentinel errors returned by the services. Handlers translate these into
// HTTP statuses with errors.Is; anything else is an upstream failure and
// maps to a generic 500.
var (
	ErrValidation        = errors.New("validation failed")
	ErrUserNotFound      = errors.New("user does not exist")
	ErrEmailTaken        = errors.New("you already have an account")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrInvalidOTP        = errors.New("invalid OTP")
	ErrInvalidMovieTitle = errors.New("invalid movie title")
	ErrBeforeReleaseDate = errors.New("selected date and time are before the movie release date")
	ErrMovieNotFound     = errors.New("movie not found")
)
