package entity

import (
	"time"
)

// Booking references its movie by denormalized title, not by ID. MovieID
// is resolved from the title at booking time so that later renames do not
// retroactively change what a historical booking pointed at.
type Booking struct {
	Numb          int64     `db:"numb"`
	MovieID       int64     `db:"movie_id"`
	MovieTitle    string    `db:"movie_title"`
	City          string    `db:"city"`
	Name          string    `db:"name"`
	Email         string    `db:"email"`
	Date          time.Time `db:"date"`
	Time          string    `db:"time"`
	Seats         int       `db:"seats"`
	TotalPrice    float64   `db:"total_price"`
	SelectedSeats []string  `db:"selected_seats"`
}
