package usecase

import (
	"context"
	"fmt"

	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	FetchAll(ctx context.Context) ([]response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) FetchAll(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to fetch users", zap.Error(err))
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	out := make([]response.UserResponse, len(users))
	for i, u := range users {
		out[i] = response.UserToResponse(u)
	}

	return out, nil
}
