package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/kudos/internal/domain/kudos"
	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/pkg/logger"

	"github.com/google/uuid"
)

// DefaultRecentLimit is the number of kudos shown in the recent bar
const DefaultRecentLimit = 3

// kudoService implements the KudoService interface
type kudoService struct {
	kudoRepo kudos.KudoRepository
	userRepo users.UserRepository
	logger   logger.Logger
}

// NewKudoService creates a new instance of KudoService
func NewKudoService(kudoRepo kudos.KudoRepository, userRepo users.UserRepository, logger logger.Logger) (kudos.KudoService, error) {
	return &kudoService{
		kudoRepo: kudoRepo,
		userRepo: userRepo,
		logger:   logger,
	}, nil
}

// Send stores a kudo after checking the message, the recipient and the style.
// Unset style fields fall back to the defaults.
func (s *kudoService) Send(ctx context.Context, input kudos.SendInput) (*kudos.Kudo, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, kudos.ErrEmptyMessage
	}

	if input.AuthorID == input.RecipientID {
		return nil, kudos.ErrSelfKudo
	}

	recipient, err := s.userRepo.GetByID(ctx, input.RecipientID)
	if errors.Is(err, users.ErrUserNotFound) {
		return nil, kudos.ErrRecipientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load recipient: %w", err)
	}

	kudo := &kudos.Kudo{
		ID:          uuid.NewString(),
		Message:     message,
		Style:       input.Style.WithDefaults(),
		AuthorID:    input.AuthorID,
		RecipientID: recipient.ID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := kudo.Validate(); err != nil {
		return nil, fmt.Errorf("invalid kudo: %w", err)
	}

	if err := s.kudoRepo.Create(ctx, kudo); err != nil {
		return nil, err
	}
	kudo.Recipient = recipient

	s.logger.Info("kudo sent", "kudo_id", kudo.ID, "author_id", kudo.AuthorID, "recipient_id", kudo.RecipientID)
	return kudo, nil
}

// Feed lists kudos for query; a nil query yields the default feed
func (s *kudoService) Feed(ctx context.Context, query *kudos.KudoQuery) ([]*kudos.Kudo, error) {
	if query == nil {
		query = kudos.NewKudoQuery()
	}
	if query.SortBy == "" {
		query.SortBy = kudos.SortByDate
	}
	if query.Limit <= 0 {
		query.Limit = kudos.DefaultFeedLimit
	}
	query.Filter = strings.TrimSpace(query.Filter)

	if err := query.Validate(); err != nil {
		return nil, err
	}

	return s.kudoRepo.List(ctx, query)
}

func (s *kudoService) Recent(ctx context.Context, limit int) ([]*kudos.Kudo, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.kudoRepo.Recent(ctx, limit)
}
