package users

import (
	"context"
	"time"
)

// RegisterInput carries the fields of the registration form
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// ProfileUpdate carries the editable fields of the profile settings form
type ProfileUpdate struct {
	FirstName  string
	LastName   string
	Department Department
}

// UserQuery filters the user list shown in the user panel
type UserQuery struct {
	// ExcludeID skips a single user, usually the signed-in one
	ExcludeID string
	Limit     int
	Offset    int
}

// AuthService defines registration and credential checks.
type AuthService interface {
	// Register creates a user with a hashed password.
	// It returns ErrEmailTaken when the email is already registered.
	Register(ctx context.Context, input RegisterInput) (*User, error)

	// Login checks credentials and returns the matching user.
	// It returns ErrInvalidCredentials for an unknown email or a wrong password.
	Login(ctx context.Context, email, password string) (*User, error)
}

// UserService defines methods for reading and managing users.
type UserService interface {
	GetByID(ctx context.Context, userID string) (*User, error)
	// ListOthers returns every user except userID ordered by first name.
	ListOthers(ctx context.Context, userID string) ([]*User, error)
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*User, error)
	UpdateAvatar(ctx context.Context, userID, pictureURL string) error
	DeleteByID(ctx context.Context, userID string) error
}

// SessionManager issues and verifies the signed tokens stored in the session cookie
type SessionManager interface {
	Issue(userID string) (string, error)
	// Parse returns the user ID of a valid token, or ErrInvalidSession.
	Parse(token string) (string, error)
	MaxAge() time.Duration
}

// PasswordHasher hashes and compares passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// UserRepository defines the interface for User-related persistence
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, query *UserQuery) ([]*User, error)
	UpdateProfile(ctx context.Context, userID string, profile Profile) error
	// DeleteByID removes the user and every kudo authored or received by them
	DeleteByID(ctx context.Context, userID string) error
}
