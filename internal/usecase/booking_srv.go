package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

const bookingSequence = "booking"

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// CreateBooking validates the requested showing against the movie's release
// date, then allocates the booking number and persists. On rejection nothing
// is written. There is no rollback between validation and persistence.
func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	movie, showDate, err := s.validateShowing(ctx, req.MovieTitle, req.Date, req.Time)
	if err != nil {
		return nil, err
	}

	// Allocate the booking number only after validation passed. A counter
	// failure means no booking record is created.
	numb, err := s.repo.Sequence.Next(ctx, bookingSequence)
	if err != nil {
		return nil, fmt.Errorf("allocate booking number: %w", err)
	}

	// City, name, email, seats, totalPrice and selectedSeats pass through
	// verbatim. The price is not recomputed from the seat count.
	booking := &entity.Booking{
		Numb:          numb,
		MovieID:       movie.ID,
		MovieTitle:    req.MovieTitle,
		City:          req.City,
		Name:          req.Name,
		Email:         req.Email,
		Date:          showDate,
		Time:          req.Time,
		Seats:         req.Seats,
		TotalPrice:    req.TotalPrice,
		SelectedSeats: req.SelectedSeats,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("movie_title", req.MovieTitle),
			zap.String("email", req.Email),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.Int64("numb", booking.Numb),
		zap.String("movie_title", booking.MovieTitle),
		zap.Int("seats", booking.Seats),
		zap.Float64("total_price", booking.TotalPrice),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// validateShowing resolves the movie by exact title and checks that the
// requested date+time does not precede the release date. The candidate time
// is not checked against the movie's declared showtimes.
func (s *bookingService) validateShowing(ctx context.Context, title, date, timeOfDay string) (*entity.Movie, time.Time, error) {
	movie, err := s.repo.Movie.FindByTitle(ctx, title)
	if err != nil {
		s.log.Error("Failed to find movie", zap.Error(err), zap.String("title", title))
		return nil, time.Time{}, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, time.Time{}, ErrInvalidMovieTitle
	}

	showDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	selected, err := composeShowtime(date, timeOfDay)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: time must be HH:MM", ErrValidation)
	}

	// Release date is a calendar date, conventionally midnight. A showing
	// at any time on the release day is allowed; strictly earlier is not.
	if selected.Before(movie.ReleaseDate) {
		return nil, time.Time{}, ErrBeforeReleaseDate
	}

	return movie, showDate, nil
}

// composeShowtime joins a date and a time-of-day label into one timestamp.
func composeShowtime(date, timeOfDay string) (time.Time, error) {
	composed := date + "T" + timeOfDay

	t, err := time.Parse("2006-01-02T15:04", composed)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", composed)
}
