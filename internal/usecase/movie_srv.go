package usecase

import (
	"context"
	"fmt"

	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/response"

	"go.uber.org/zap"
)

type MovieService interface {
	FetchMovies(ctx context.Context) ([]response.MovieResponse, error)
	DeleteMovie(ctx context.Context, title string) (*response.MovieResponse, error)
}

type movieService struct {
	movieRepo repository.MovieRepository
	log       *zap.Logger
}

func NewMovieService(movieRepo repository.MovieRepository, log *zap.Logger) MovieService {
	return &movieService{
		movieRepo: movieRepo,
		log:       log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) FetchMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.movieRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to fetch movies", zap.Error(err))
		return nil, fmt.Errorf("fetch movies: %w", err)
	}

	return response.MoviesToResponse(movies), nil
}

// DeleteMovie removes a movie by exact title and returns the deleted record.
func (s *movieService) DeleteMovie(ctx context.Context, title string) (*response.MovieResponse, error) {
	movie, err := s.movieRepo.DeleteByTitle(ctx, title)
	if err != nil {
		s.log.Error("Failed to delete movie", zap.Error(err), zap.String("title", title))
		return nil, fmt.Errorf("delete movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}
