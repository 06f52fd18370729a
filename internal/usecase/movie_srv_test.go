package usecase

import (
	"context"
	"testing"
	"time"

	"movie-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFetchMovies(t *testing.T) {
	movies := newFakeMovieRepo(
		&entity.Movie{ID: 1, Title: "Dune", ReleaseDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		&entity.Movie{ID: 2, Title: "Oppenheimer", ReleaseDate: time.Date(2023, 7, 21, 0, 0, 0, 0, time.UTC)},
	)
	svc := NewMovieService(movies, zap.NewNop())

	out, err := svc.FetchMovies(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Dune", out[0].Title)
	assert.Equal(t, "2024-03-01", out[0].ReleaseDate)
}

func TestDeleteMovieByTitle(t *testing.T) {
	movies := newFakeMovieRepo(
		&entity.Movie{ID: 1, Title: "Dune", ReleaseDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	)
	svc := NewMovieService(movies, zap.NewNop())
	ctx := context.Background()

	deleted, err := svc.DeleteMovie(ctx, "Dune")
	require.NoError(t, err)
	assert.Equal(t, "Dune", deleted.Title)

	// Gone now
	_, err = svc.DeleteMovie(ctx, "Dune")
	assert.ErrorIs(t, err, ErrMovieNotFound)

	out, err := svc.FetchMovies(ctx)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFetchAllUsersIncludesISTTimestamp(t *testing.T) {
	users := newFakeUserRepo()
	created := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, users.Create(context.Background(), &entity.User{
		Numb:      1,
		Name:      "Asha",
		Email:     "a@b.com",
		CreatedAt: created,
	}))

	svc := NewUserService(users, zap.NewNop())
	out, err := svc.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	// 12:00 UTC is 17:30 IST
	assert.Equal(t, "1/15/2024, 5:30:00 PM", out[0].CreatedAtIST)
	assert.Equal(t, created, out[0].CreatedAt)
}
