package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ncc-portal/backend/internal/app/models"
	"github.com/ncc-portal/backend/internal/app/models/dto"
	"github.com/ncc-portal/backend/internal/pkg/apperrors"
	"github.com/ncc-portal/backend/internal/pkg/auth"
)

// UserStore is the credential store surface the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	DeleteByEmails(ctx context.Context, emails []string) error
}

// AuthService handles registration, login and demo-account lifecycle
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	ResetDemoAccounts(ctx context.Context) ([]dto.DemoAccount, error)
}

type authService struct {
	users      UserStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new student account. Role is fixed at creation; clients
// cannot register admins.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleStudent,
		FullName:     req.FullName,
		Phone:        req.Phone,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", user.Email).Int64("userID", user.ID).Msg("User registered")
	return user, nil
}

// Login verifies credentials and mints a bearer token. A missing user and a
// wrong password both collapse to ErrInvalidCredentials so the response never
// reveals which check failed.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("User logged in")
	return token, user, nil
}

// ResetDemoAccounts deletes and recreates the two fixed demo accounts.
// No other users are touched.
func (s *authService) ResetDemoAccounts(ctx context.Context) ([]dto.DemoAccount, error) {
	emails := make([]string, 0, len(DemoAccounts))
	for _, acc := range DemoAccounts {
		emails = append(emails, acc.Email)
	}

	if err := s.users.DeleteByEmails(ctx, emails); err != nil {
		return nil, err
	}

	accounts := make([]dto.DemoAccount, 0, len(DemoAccounts))
	for _, acc := range DemoAccounts {
		hash, err := auth.HashPassword(acc.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing demo password: %w", err)
		}
		phone := acc.Phone
		user := &models.User{
			Email:        acc.Email,
			PasswordHash: hash,
			Role:         acc.Role,
			FullName:     acc.FullName,
			Phone:        &phone,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
		accounts = append(accounts, dto.DemoAccount{
			Email:    acc.Email,
			Password: acc.Password,
			Role:     string(acc.Role),
		})
	}

	s.logger.Info().Msg("Demo accounts reset")
	return accounts, nil
}
