package users

import "errors"

// Domain errors returned by repositories and services
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists with that email")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidCredentials = errors.New("incorrect login")
	ErrInvalidSession     = errors.New("invalid session")
)
