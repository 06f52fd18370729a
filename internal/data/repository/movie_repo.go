package repository

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	FindByTitle(ctx context.Context, title string) (*entity.Movie, error)
	DeleteByTitle(ctx context.Context, title string) (*entity.Movie, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (mr *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, description, genre, release_date, showtimes, img_url
		FROM movies
		ORDER BY id
	`

	rows, err := mr.db.Query(ctx, query)
	if err != nil {
		mr.log.Error("Failed to get all movies", zap.Error(err))
		return nil, fmt.Errorf("find all movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Description,
			&movie.Genre,
			&movie.ReleaseDate,
			&movie.Showtimes,
			&movie.ImgURL,
		)
		if err != nil {
			mr.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		mr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate movies rows: %w", err)
	}

	return movies, nil
}

func (mr *movieRepository) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	query := `
		SELECT id, title, description, genre, release_date, showtimes, img_url
		FROM movies
		WHERE title = $1
	`

	var movie entity.Movie
	// QueryRow returns at most one row
	err := mr.db.QueryRow(ctx, query, title).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Genre,
		&movie.ReleaseDate,
		&movie.Showtimes,
		&movie.ImgURL,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		mr.log.Error("Failed to find movie by title",
			zap.Error(err),
			zap.String("title", title),
		)
		return nil, fmt.Errorf("find movie by title %s: %w", title, err)
	}

	return &movie, nil
}

// DeleteByTitle removes the movie and returns the deleted row, or (nil, nil)
// when no movie carries that title.
func (mr *movieRepository) DeleteByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	query := `
		DELETE FROM movies
		WHERE title = $1
		RETURNING id, title, description, genre, release_date, showtimes, img_url
	`

	var movie entity.Movie
	err := mr.db.QueryRow(ctx, query, title).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Genre,
		&movie.ReleaseDate,
		&movie.Showtimes,
		&movie.ImgURL,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		mr.log.Error("Failed to delete movie by title",
			zap.Error(err),
			zap.String("title", title),
		)
		return nil, fmt.Errorf("delete movie by title %s: %w", title, err)
	}

	mr.log.Info("Movie deleted", zap.String("title", title), zap.Int64("id", movie.ID))
	return &movie, nil
}
