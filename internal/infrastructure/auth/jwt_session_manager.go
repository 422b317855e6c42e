package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered claims and the signed-in user's ID
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

// JWTSessionManager issues HS256 tokens stored in the session cookie
type JWTSessionManager struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewJWTSessionManager creates a JWTSessionManager from validated session settings
func NewJWTSessionManager(settings *config.SessionSettings) (*JWTSessionManager, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &JWTSessionManager{
		secret: []byte(settings.Secret),
		maxAge: settings.MaxAge,
		now:    time.Now,
	}, nil
}

// Issue signs a token for userID valid for MaxAge
func (m *JWTSessionManager) Issue(userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("cannot issue a session without a user ID")
	}

	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.maxAge)),
		},
		UserID: userID,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

// Parse returns the user ID of a valid token.
// Any malformed, tampered or expired token yields users.ErrInvalidSession.
func (m *JWTSessionManager) Parse(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%w: token expired", users.ErrInvalidSession)
		}
		return "", fmt.Errorf("%w: %v", users.ErrInvalidSession, err)
	}

	if !token.Valid || claims.UserID == "" {
		return "", users.ErrInvalidSession
	}

	return claims.UserID, nil
}

// MaxAge returns the token and cookie lifetime
func (m *JWTSessionManager) MaxAge() time.Duration {
	return m.maxAge
}
