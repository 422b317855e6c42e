package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Session defaults
const (
	DefaultSessionCookieName = "kudos-session"
	DefaultSessionMaxAge     = 30 * 24 * time.Hour
)

// SessionSettings configures the signed session cookie
type SessionSettings struct {
	Secret     string        `mapstructure:"secret" validate:"required,min=16"`
	CookieName string        `mapstructure:"cookie_name"`
	MaxAge     time.Duration `mapstructure:"max_age" validate:"gte=0"`
	Secure     bool          `mapstructure:"secure"`
}

// Validate checks that all fields in SessionSettings are valid
// and fills in the cookie name and lifetime when they are unset.
func (s *SessionSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SessionSettings: %w", err)
	}

	if s.CookieName == "" {
		s.CookieName = DefaultSessionCookieName
	}
	if s.MaxAge == 0 {
		s.MaxAge = DefaultSessionMaxAge
	}

	return nil
}
