package repository

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (br *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (numb, movie_id, movie_title, city, name, email,
		                      date, time, seats, total_price, selected_seats)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := br.db.Exec(ctx, query,
		booking.Numb,
		booking.MovieID,
		booking.MovieTitle,
		booking.City,
		booking.Name,
		booking.Email,
		booking.Date,
		booking.Time,
		booking.Seats,
		booking.TotalPrice,
		booking.SelectedSeats,
	)

	if err != nil {
		br.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("numb", booking.Numb),
			zap.String("movie_title", booking.MovieTitle),
			zap.String("email", booking.Email),
		)
		return fmt.Errorf("create booking %d: %w", booking.Numb, err)
	}

	return nil
}
