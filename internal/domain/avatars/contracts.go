// Package avatars defines how profile pictures reach object storage.
package avatars

import (
	"context"
	"errors"
	"io"
	"mime/multipart"

	"github.com/MGTheTrain/kudos/internal/domain/users"
)

// FormField is the multipart field carrying the profile picture
const FormField = "profile-pic"

// Upload errors
var (
	ErrMissingFile     = errors.New("no profile picture provided")
	ErrFileTooLarge    = errors.New("profile picture is too large")
	ErrUnsupportedType = errors.New("profile picture must be an image")
)

// Object describes a single object to be written to storage
type Object struct {
	Key         string
	ContentType string
	Size        int64
	Body        io.Reader
}

// AvatarConnector is an interface for interacting with object storage
type AvatarConnector interface {
	// Upload writes the object and returns its public location.
	Upload(ctx context.Context, object *Object) (string, error)

	// Delete removes the object stored under key.
	Delete(ctx context.Context, key string) error
}

// AvatarUploadService defines methods for uploading profile pictures.
type AvatarUploadService interface {
	// Upload stores the profile-pic file of form for userID, records the
	// resulting location as the user's profile picture and returns it.
	Upload(ctx context.Context, userID string, form *multipart.Form) (string, error)

	// Remove deletes the stored profile picture of user. Pictures that were
	// not uploaded through this service are left alone.
	Remove(ctx context.Context, user *users.User) error
}
