//go:build unit
// +build unit

package auth

import (
	"testing"
	"time"

	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "a-very-secret-session-key"

func newTestSessionManager(t *testing.T) *JWTSessionManager {
	t.Helper()

	m, err := NewJWTSessionManager(&config.SessionSettings{Secret: testSecret, MaxAge: time.Hour})
	require.NoError(t, err)
	return m
}

func TestJWTSessionManager_IssueAndParse(t *testing.T) {
	m := newTestSessionManager(t)

	token, err := m.Issue("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, time.Hour, m.MaxAge())
}

func TestJWTSessionManager_Issue_EmptyUserID(t *testing.T) {
	m := newTestSessionManager(t)

	_, err := m.Issue("")
	assert.Error(t, err)
}

func TestJWTSessionManager_Parse_Expired(t *testing.T) {
	m := newTestSessionManager(t)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := m.Issue("user-1")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, users.ErrInvalidSession)
}

func TestJWTSessionManager_Parse_WrongSecret(t *testing.T) {
	m := newTestSessionManager(t)

	other, err := NewJWTSessionManager(&config.SessionSettings{Secret: "another-secret-of-length"})
	require.NoError(t, err)

	token, err := other.Issue("user-1")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, users.ErrInvalidSession)
}

func TestJWTSessionManager_Parse_Garbage(t *testing.T) {
	m := newTestSessionManager(t)

	_, err := m.Parse("not-a-token")
	assert.ErrorIs(t, err, users.ErrInvalidSession)
}

func TestJWTSessionManager_Parse_RejectsNoneAlgorithm(t *testing.T) {
	m := newTestSessionManager(t)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           "user-1",
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Parse(signed)
	assert.ErrorIs(t, err, users.ErrInvalidSession)
}

func TestNewJWTSessionManager_ShortSecret(t *testing.T) {
	_, err := NewJWTSessionManager(&config.SessionSettings{Secret: "short"})
	assert.Error(t, err)
}
