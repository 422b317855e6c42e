package kudos

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Feed sort orders
const (
	SortByDate   = "date"
	SortBySender = "sender"
	SortByEmoji  = "emoji"
)

// SortOptions lists the feed sort orders with their labels
var SortOptions = []struct {
	Value string
	Label string
}{
	{SortByDate, "Date"},
	{SortBySender, "Sender Name"},
	{SortByEmoji, "Emoji"},
}

// DefaultFeedLimit caps the number of kudos loaded into the feed
const DefaultFeedLimit = 50

// KudoQuery represents filters, sorting and pagination for the kudo feed
type KudoQuery struct {
	// RecipientID restricts the feed to kudos received by one user
	RecipientID string `validate:"omitempty,uuid4"`
	// Filter matches message, author first name or author last name (case-insensitive)
	Filter string `validate:"omitempty,max=100"`
	SortBy string `validate:"omitempty,oneof=date sender emoji"`
	Limit  int    `validate:"omitempty,gt=0,lte=200"`
	Offset int    `validate:"omitempty,gte=0"`
}

// NewKudoQuery creates a KudoQuery with default values
func NewKudoQuery() *KudoQuery {
	return &KudoQuery{
		SortBy: SortByDate,
		Limit:  DefaultFeedLimit,
	}
}

// Validate checks the query parameters
func (q *KudoQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
