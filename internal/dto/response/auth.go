package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type LoginResponse struct {
	Token string `json:"token"`
}

type UserResponse struct {
	Numb         int64     `json:"n"`
	Name         string    `json:"name"`
	DateOfBirth  time.Time `json:"dateOfBirth"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"createdAt"`
	CreatedAtIST string    `json:"createdAtIST"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		Numb:         user.Numb,
		Name:         user.Name,
		DateOfBirth:  user.DateOfBirth,
		Email:        user.Email,
		CreatedAt:    user.CreatedAt,
		CreatedAtIST: user.CreatedAtIST(),
	}
}
