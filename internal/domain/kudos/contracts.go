package kudos

import "context"

// SendInput carries the fields of the kudo form
type SendInput struct {
	AuthorID    string
	RecipientID string
	Message     string
	Style       KudoStyle
}

// KudoService defines methods for sending and reading kudos.
type KudoService interface {
	// Send validates and stores a kudo from AuthorID to RecipientID.
	Send(ctx context.Context, input SendInput) (*Kudo, error)

	// Feed returns kudos matching query with Author and Recipient populated.
	Feed(ctx context.Context, query *KudoQuery) ([]*Kudo, error)

	// Recent returns the latest kudos, newest first.
	Recent(ctx context.Context, limit int) ([]*Kudo, error)
}

// KudoRepository defines the interface for Kudo-related persistence
type KudoRepository interface {
	Create(ctx context.Context, kudo *Kudo) error
	List(ctx context.Context, query *KudoQuery) ([]*Kudo, error)
	Recent(ctx context.Context, limit int) ([]*Kudo, error)
}
