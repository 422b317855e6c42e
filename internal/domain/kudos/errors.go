package kudos

import "errors"

// Domain errors returned by the kudo service
var (
	ErrSelfKudo          = errors.New("you cannot send kudos to yourself")
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrEmptyMessage      = errors.New("please provide a message")
)
