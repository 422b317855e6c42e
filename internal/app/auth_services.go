package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"

	"github.com/google/uuid"
)

// authService implements the AuthService interface for registration and login
type authService struct {
	userRepo users.UserRepository
	hasher   users.PasswordHasher
	logger   logger.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(userRepo users.UserRepository, hasher users.PasswordHasher, logger logger.Logger) (users.AuthService, error) {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}, nil
}

// Register creates a user in the default department. Emails are stored lower-cased.
func (s *authService) Register(ctx context.Context, input users.RegisterInput) (*users.User, error) {
	email := users.NormalizeEmail(input.Email)
	if err := users.ValidateEmail(email); err != nil {
		return nil, err
	}

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, users.ErrEmailTaken
	}
	if !errors.Is(err, users.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &users.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: hash,
		Profile: users.Profile{
			FirstName:  strings.TrimSpace(input.FirstName),
			LastName:   strings.TrimSpace(input.LastName),
			Department: users.DefaultDepartment,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login returns the user owning email when password matches
func (s *authService) Login(ctx context.Context, email, password string) (*users.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, users.NormalizeEmail(email))
	if errors.Is(err, users.ErrUserNotFound) {
		return nil, users.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	if err := s.hasher.Compare(user.Password, password); err != nil {
		if !errors.Is(err, users.ErrInvalidCredentials) {
			s.logger.Error("password comparison failed", "user_id", user.ID, "error", err)
		}
		return nil, users.ErrInvalidCredentials
	}

	s.logger.Debug("user signed in", "user_id", user.ID)
	return user, nil
}
