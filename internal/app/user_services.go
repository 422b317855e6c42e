package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"
)

// userService implements the UserService interface
type userService struct {
	userRepo users.UserRepository
	logger   logger.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(userRepo users.UserRepository, logger logger.Logger) (users.UserService, error) {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}, nil
}

func (s *userService) GetByID(ctx context.Context, userID string) (*users.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *userService) ListOthers(ctx context.Context, userID string) ([]*users.User, error) {
	list, err := s.userRepo.List(ctx, &users.UserQuery{ExcludeID: userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return list, nil
}

// UpdateProfile replaces the names and department, keeping the profile picture
func (s *userService) UpdateProfile(ctx context.Context, userID string, update users.ProfileUpdate) (*users.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := user.Profile
	profile.FirstName = strings.TrimSpace(update.FirstName)
	profile.LastName = strings.TrimSpace(update.LastName)
	profile.Department = update.Department

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, profile); err != nil {
		return nil, err
	}

	user.Profile = profile
	user.UpdatedAt = time.Now().UTC()

	s.logger.Info("profile updated", "user_id", userID, "department", profile.Department)
	return user, nil
}

func (s *userService) UpdateAvatar(ctx context.Context, userID, pictureURL string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	profile := user.Profile
	profile.ProfilePicture = pictureURL

	if err := profile.Validate(); err != nil {
		return fmt.Errorf("invalid profile picture: %w", err)
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, profile); err != nil {
		return err
	}

	s.logger.Info("profile picture updated", "user_id", userID)
	return nil
}

// DeleteByID removes the user together with all kudos they sent or received
func (s *userService) DeleteByID(ctx context.Context, userID string) error {
	if err := s.userRepo.DeleteByID(ctx, userID); err != nil {
		return err
	}

	s.logger.Info("user deleted", "user_id", userID)
	return nil
}
