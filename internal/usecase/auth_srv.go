package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/mailer"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

const userSequence = "user"

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) error
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	ForgetPassword(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, email, password string) error
}

type authService struct {
	repo   *repository.Repository
	mail   mailer.Mailer
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	mail mailer.Mailer,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		mail:   mail,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return fmt.Errorf("%w: dateOfBirth must be YYYY-MM-DD", ErrValidation)
	}

	// 2. Reject duplicate registration
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return ErrEmailTaken
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	// 4. Allocate the user number. If the counter store is unreachable no
	// account is created.
	numb, err := s.repo.Sequence.Next(ctx, userSequence)
	if err != nil {
		return fmt.Errorf("allocate user number: %w", err)
	}

	user := &entity.User{
		Numb:         numb,
		Name:         req.Name,
		DateOfBirth:  dob,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("create account: %w", err)
	}

	s.log.Info("User registered",
		zap.Int64("n", user.Numb),
		zap.String("email", user.Email))

	return nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("Login for unknown user", zap.String("email", req.Email))
		return nil, ErrUserNotFound
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("email", req.Email))
		return nil, ErrIncorrectPassword
	}

	token, err := utils.GenerateToken(s.config.JWT.Secret, user.Numb, s.config.JWT.ExpiryHours)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info("User logged in",
		zap.Int64("n", user.Numb),
		zap.String("email", user.Email))

	return &response.LoginResponse{Token: token}, nil
}

// ForgetPassword issues a fresh OTP for email and mails it. A subsequent
// issuance overwrites the stored code, so only the latest one verifies. The
// code stays stored even when delivery fails.
func (s *authService) ForgetPassword(ctx context.Context, email string) error {
	code := utils.GenerateOTP(s.config.OTP.Length)

	if err := s.repo.OTP.Upsert(ctx, email, code); err != nil {
		s.log.Error("Failed to store OTP", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("store OTP: %w", err)
	}

	if err := s.mail.SendOTP(ctx, email, code); err != nil {
		s.log.Error("Failed to deliver OTP", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("deliver OTP: %w", err)
	}

	s.log.Info("OTP issued", zap.String("email", email))
	return nil
}

// VerifyOTP checks the submitted code against the stored one with exact
// string equality. The record is not consumed; it stays valid until the
// next issuance overwrites it.
func (s *authService) VerifyOTP(ctx context.Context, email, otp string) error {
	stored, err := s.repo.OTP.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to look up OTP", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("look up OTP: %w", err)
	}

	if stored == nil || stored.Code != otp {
		return ErrInvalidOTP
	}

	return nil
}

// ResetPassword replaces the account's password digest. It is deliberately
// not gated on a prior VerifyOTP call; the two endpoints are independent.
func (s *authService) ResetPassword(ctx context.Context, email, password string) error {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for reset", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, email, hashedPassword); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("update password: %w", err)
	}

	s.log.Info("Password reset", zap.String("email", email))
	return nil
}
