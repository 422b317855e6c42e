//go:build integration
// +build integration

package persistence

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/kudos/internal/domain/kudos"
	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/pkg/config"
	"github.com/MGTheTrain/kudos/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB       *gorm.DB
	UserRepo users.UserRepository
	KudoRepo kudos.KudoRepository
}

// SetupTestDB initializes a migrated test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		dsn := os.Getenv("KUDOS_TEST_POSTGRES_DSN")
		if dsn == "" {
			dsn = "user=postgres password=postgres host=localhost port=5432 sslmode=disable"
		}
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    dsn,
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			_ = DropDatabase(dsn+" dbname=postgres", uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	if err != nil && dbType == config.PostgresDbType {
		t.Skipf("PostgreSQL not reachable (set KUDOS_TEST_POSTGRES_DSN): %v", err)
	}
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	userRepo, err := NewGormUserRepository(db, log)
	require.NoError(t, err, "Failed to create user repository")

	kudoRepo, err := NewGormKudoRepository(db, log)
	require.NoError(t, err, "Failed to create kudo repository")

	return &TestContext{
		DB:       db,
		UserRepo: userRepo,
		KudoRepo: kudoRepo,
	}
}

// CreateTestUser builds a valid user with the given names
func CreateTestUser(t *testing.T, firstName, lastName string) *users.User {
	t.Helper()

	now := time.Now().UTC()
	return &users.User{
		ID:       uuid.NewString(),
		Email:    strings.ToLower(firstName+"."+lastName) + "@kudos.com",
		Password: "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3y0eQ1aH6h2s3rJ0b8m1yXe",
		Profile: users.Profile{
			FirstName:  firstName,
			LastName:   lastName,
			Department: users.DefaultDepartment,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateTestKudo builds a valid kudo between two users
func CreateTestKudo(t *testing.T, author, recipient *users.User, message string, emoji kudos.Emoji, createdAt time.Time) *kudos.Kudo {
	t.Helper()

	return &kudos.Kudo{
		ID:          uuid.NewString(),
		Message:     message,
		Style:       kudos.KudoStyle{Emoji: emoji}.WithDefaults(),
		AuthorID:    author.ID,
		RecipientID: recipient.ID,
		CreatedAt:   createdAt,
	}
}
