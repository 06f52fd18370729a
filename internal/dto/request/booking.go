package request

// CreateBookingRequest carries the reservation fields as submitted by the
// client. Seats, totalPrice and selectedSeats are trusted verbatim; the
// server does not recompute the price from the seat count.
type CreateBookingRequest struct {
	MovieTitle    string   `json:"movieTitle" validate:"required"`
	City          string   `json:"city"`
	Name          string   `json:"name"`
	Email         string   `json:"email" validate:"omitempty,email"`
	Date          string   `json:"date" validate:"required"`
	Time          string   `json:"time" validate:"required"`
	Seats         int      `json:"seats"`
	TotalPrice    float64  `json:"totalPrice"`
	SelectedSeats []string `json:"selectedSeats"`
}
