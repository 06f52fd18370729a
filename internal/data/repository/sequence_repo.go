package repository

import (
	"context"
	"fmt"

	"movie-booking/pkg/database"

	"go.uber.org/zap"
)

// SequenceRepository hands out strictly increasing integers per named
// sequence. Each entity type owns its own name ("movie", "booking", "user").
type SequenceRepository interface {
	Next(ctx context.Context, name string) (int64, error)
}

type sequenceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSequenceRepository(db database.PgxIface, log *zap.Logger) SequenceRepository {
	return &sequenceRepository{
		db:  db,
		log: log.With(zap.String("repository", "sequence")),
	}
}

// Next increments and returns the counter for name. The upsert is a single
// atomic read-modify-write at the database, so two concurrent callers for
// the same name can never observe the same value.
func (r *sequenceRepository) Next(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO sequences (name, value)
		VALUES ($1, 1)
		ON CONFLICT (name)
		DO UPDATE SET value = sequences.value + 1
		RETURNING value
	`

	var value int64
	err := r.db.QueryRow(ctx, query, name).Scan(&value)
	if err != nil {
		r.log.Error("Failed to advance sequence",
			zap.Error(err),
			zap.String("sequence", name),
		)
		return 0, fmt.Errorf("advance sequence %s: %w", name, err)
	}

	return value, nil
}
