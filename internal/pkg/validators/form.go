// Package validators holds the form field checks shared by the web handlers
// and the helpers domain entities use to run struct validation.
package validators

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field limits
const (
	MinPasswordLength = 5
	MaxMessageLength  = 1000
	MaxNameLength     = 100
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateEmail returns a user-facing error message, or "" when email is acceptable.
func ValidateEmail(email string) string {
	if !emailPattern.MatchString(email) {
		return "Please enter a valid email address"
	}
	return ""
}

// ValidatePassword returns a user-facing error message, or "" when password is acceptable.
func ValidatePassword(password string) string {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fmt.Sprintf("Please enter a password that is at least %d characters long", MinPasswordLength)
	}
	return ""
}

// ValidateName returns a user-facing error message, or "" when name is acceptable.
func ValidateName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "Please enter a value"
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return fmt.Sprintf("Please enter at most %d characters", MaxNameLength)
	}
	return ""
}

// ValidateMessage returns a user-facing error message, or "" when the kudo message is acceptable.
func ValidateMessage(message string) string {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return "Please provide a message"
	}
	if utf8.RuneCountInString(trimmed) > MaxMessageLength {
		return fmt.Sprintf("Messages are limited to %d characters", MaxMessageLength)
	}
	return ""
}

// FieldErrors maps form field names to error messages.
type FieldErrors map[string]string

// Add records msg for field when msg is not empty.
func (e FieldErrors) Add(field, msg string) {
	if msg != "" {
		e[field] = msg
	}
}

// Any reports whether at least one field failed.
func (e FieldErrors) Any() bool {
	return len(e) > 0
}
