package usecase

import (
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/mailer"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Movie   MovieService
	Booking BookingService
}

func NewService(repo *repository.Repository, mail mailer.Mailer, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, mail, config, log),
		User:    NewUserService(repo.User, log),
		Movie:   NewMovieService(repo.Movie, log),
		Booking: NewBookingService(repo, log),
	}
}
