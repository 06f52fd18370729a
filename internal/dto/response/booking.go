package response

import (
	"movie-booking/internal/data/entity"
)

type BookingResponse struct {
	Numb          int64    `json:"numb"`
	MovieTitle    string   `json:"movieTitle"`
	City          string   `json:"city"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Seats         int      `json:"seats"`
	TotalPrice    float64  `json:"totalPrice"`
	SelectedSeats []string `json:"selectedSeats"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		Numb:          booking.Numb,
		MovieTitle:    booking.MovieTitle,
		City:          booking.City,
		Name:          booking.Name,
		Email:         booking.Email,
		Date:          booking.Date.Format("2006-01-02"),
		Time:          booking.Time,
		Seats:         booking.Seats,
		TotalPrice:    booking.TotalPrice,
		SelectedSeats: booking.SelectedSeats,
	}
}
