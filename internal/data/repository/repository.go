package repository

import (
	"movie-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Movie    MovieRepository
	Booking  BookingRepository
	OTP      OTPRepository
	Sequence SequenceRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Movie:    NewMovieRepository(db, log),
		Booking:  NewBookingRepository(db, log),
		OTP:      NewOTPRepository(db, log),
		Sequence: NewSequenceRepository(db, log),
	}
}
