package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *users.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return users.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("created user", "user_id", user.ID)
	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, userID string) (*users.User, error) {
	if !isUUID(userID) {
		return nil, users.ErrUserNotFound
	}
	return r.first(ctx, "id = ?", userID)
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	return r.first(ctx, "email = ?", users.NormalizeEmail(email))
}

func (r *gormUserRepository) first(ctx context.Context, where string, arg string) (*users.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where(where, arg).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	dbQuery := r.db.WithContext(ctx).Model(&models.UserModel{})

	if query != nil {
		if query.ExcludeID != "" {
			dbQuery = dbQuery.Where("id <> ?", query.ExcludeID)
		}
		if query.Limit > 0 {
			dbQuery = dbQuery.Limit(query.Limit)
		}
		if query.Offset > 0 {
			dbQuery = dbQuery.Offset(query.Offset)
		}
	}

	var modelList []*models.UserModel
	if err := dbQuery.Order("profile_first_name asc").Order("profile_last_name asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	domainList := make([]*users.User, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormUserRepository) UpdateProfile(ctx context.Context, userID string, profile users.Profile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !isUUID(userID) {
		return users.ErrUserNotFound
	}

	columns := models.ProfileColumnsFromDomain(profile)

	// A map is used so an empty profile picture is written too
	result := r.db.WithContext(ctx).Model(&models.UserModel{}).Where("id = ?", userID).Updates(map[string]any{
		"profile_first_name":      columns.FirstName,
		"profile_last_name":       columns.LastName,
		"profile_department":      columns.Department,
		"profile_profile_picture": columns.ProfilePicture,
		"updated_at":              time.Now().UTC(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return users.ErrUserNotFound
	}

	r.logger.Info("updated profile", "user_id", userID)
	return nil
}

func (r *gormUserRepository) DeleteByID(ctx context.Context, userID string) error {
	if !isUUID(userID) {
		return users.ErrUserNotFound
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("(author_id = ? OR recipient_id = ?)", userID, userID).Delete(&models.KudoModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete kudos: %w", err)
		}

		result := tx.Where("id = ?", userID).Delete(&models.UserModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return users.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("deleted user", "user_id", userID)
	return nil
}

// isUUID guards id lookups; PostgreSQL rejects malformed values for uuid columns instead of finding nothing
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
