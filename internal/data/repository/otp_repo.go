package repository

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OTPRepository interface {
	Upsert(ctx context.Context, email, code string) error
	FindByEmail(ctx context.Context, email string) (*entity.OTP, error)
}

type otpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOTPRepository(db database.PgxIface, log *zap.Logger) OTPRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

// Upsert stores the live code for email. The email column is unique, so a
// re-issue overwrites the existing row instead of creating a second one.
func (r *otpRepository) Upsert(ctx context.Context, email, code string) error {
	query := `
		INSERT INTO otps (email, otp)
		VALUES ($1, $2)
		ON CONFLICT (email)
		DO UPDATE SET otp = EXCLUDED.otp
	`

	_, err := r.db.Exec(ctx, query, email, code)
	if err != nil {
		r.log.Error("Failed to upsert OTP",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("upsert OTP for %s: %w", email, err)
	}

	return nil
}

func (r *otpRepository) FindByEmail(ctx context.Context, email string) (*entity.OTP, error) {
	query := `
		SELECT email, otp
		FROM otps
		WHERE email = $1
	`

	var otp entity.OTP
	err := r.db.QueryRow(ctx, query, email).Scan(
		&otp.Email,
		&otp.Code,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find OTP",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find OTP for %s: %w", email, err)
	}

	return &otp, nil
}
