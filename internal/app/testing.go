//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/MGTheTrain/kudos/internal/domain/kudos"
	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/infrastructure/auth"
	"github.com/MGTheTrain/kudos/internal/infrastructure/persistence"
	"github.com/MGTheTrain/kudos/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	AuthService users.AuthService
	UserService users.UserService
	KudoService kudos.KudoService

	// Infrastructure
	DBContext *persistence.TestContext
}

// SetupTestServices initializes the application services over a migrated test database
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	authService, err := NewAuthService(dbContext.UserRepo, auth.NewBcryptPasswordHasher(bcrypt.MinCost), log)
	require.NoError(t, err)

	userService, err := NewUserService(dbContext.UserRepo, log)
	require.NoError(t, err)

	kudoService, err := NewKudoService(dbContext.KudoRepo, dbContext.UserRepo, log)
	require.NoError(t, err)

	return &TestServices{
		AuthService: authService,
		UserService: userService,
		KudoService: kudoService,
		DBContext:   dbContext,
	}
}
