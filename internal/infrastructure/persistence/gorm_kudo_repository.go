package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/MGTheTrain/kudos/internal/domain/kudos"
	"github.com/MGTheTrain/kudos/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormKudoRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKudoRepository creates a new GORM-based KudoRepository implementation
func NewGormKudoRepository(db *gorm.DB, logger logger.Logger) (kudos.KudoRepository, error) {
	return &gormKudoRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormKudoRepository) Create(ctx context.Context, kudo *kudos.Kudo) error {
	if err := kudo.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.KudoModel{}
	model.FromDomain(kudo)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create kudo: %w", err)
	}

	r.logger.Info("created kudo", "kudo_id", kudo.ID, "author_id", kudo.AuthorID, "recipient_id", kudo.RecipientID)
	return nil
}

func (r *gormKudoRepository) List(ctx context.Context, query *kudos.KudoQuery) ([]*kudos.Kudo, error) {
	if query == nil {
		query = kudos.NewKudoQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.KudoModel{}).
		Joins("JOIN users AS authors ON authors.id = kudos.author_id").
		Preload("Author").
		Preload("Recipient")

	if query.RecipientID != "" {
		dbQuery = dbQuery.Where("kudos.recipient_id = ?", query.RecipientID)
	}

	if filter := strings.TrimSpace(query.Filter); filter != "" {
		like := "%" + escapeLike(strings.ToLower(filter)) + "%"
		dbQuery = dbQuery.Where(
			"(LOWER(kudos.message) LIKE ? ESCAPE '\\' OR LOWER(authors.profile_first_name) LIKE ? ESCAPE '\\' OR LOWER(authors.profile_last_name) LIKE ? ESCAPE '\\')",
			like, like, like,
		)
	}

	switch query.SortBy {
	case kudos.SortBySender:
		dbQuery = dbQuery.Order("authors.profile_first_name asc").Order("authors.profile_last_name asc")
	case kudos.SortByEmoji:
		dbQuery = dbQuery.Order("kudos.style_emoji asc")
	}
	dbQuery = dbQuery.Order("kudos.created_at desc")

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	var modelList []*models.KudoModel
	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch kudos: %w", err)
	}

	return toDomainKudos(modelList), nil
}

func (r *gormKudoRepository) Recent(ctx context.Context, limit int) ([]*kudos.Kudo, error) {
	var modelList []*models.KudoModel
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Recipient").
		Order("created_at desc").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent kudos: %w", err)
	}

	return toDomainKudos(modelList), nil
}

func toDomainKudos(modelList []*models.KudoModel) []*kudos.Kudo {
	domainList := make([]*kudos.Kudo, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
