//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/MGTheTrain/kudos/internal/domain/kudos"
	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func register(t *testing.T, services *TestServices, email, first, last string) *users.User {
	t.Helper()

	user, err := services.AuthService.Register(context.Background(), users.RegisterInput{
		Email:     email,
		Password:  "secret",
		FirstName: first,
		LastName:  last,
	})
	require.NoError(t, err)
	return user
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	registered := register(t, services, "Ada@Kudos.com", "Ada", "Lovelace")
	assert.Equal(t, "ada@kudos.com", registered.Email)
	assert.Equal(t, users.DefaultDepartment, registered.Profile.Department)

	user, err := services.AuthService.Login(ctx, "ada@kudos.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = services.AuthService.Login(ctx, "ada@kudos.com", "wrong")
	assert.ErrorIs(t, err, users.ErrInvalidCredentials)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	register(t, services, "ada@kudos.com", "Ada", "Lovelace")

	_, err := services.AuthService.Register(context.Background(), users.RegisterInput{
		Email:     "ADA@kudos.com",
		Password:  "secret",
		FirstName: "Other",
		LastName:  "Ada",
	})
	assert.ErrorIs(t, err, users.ErrEmailTaken)
}

func TestKudoService_SendAndFeed(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	ada := register(t, services, "ada@kudos.com", "Ada", "Lovelace")
	grace := register(t, services, "grace@kudos.com", "Grace", "Hopper")

	_, err := services.KudoService.Send(ctx, kudos.SendInput{
		AuthorID:    ada.ID,
		RecipientID: grace.ID,
		Message:     "Thanks for the compiler",
	})
	require.NoError(t, err)

	feed, err := services.KudoService.Feed(ctx, &kudos.KudoQuery{RecipientID: grace.ID})
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "Ada", feed[0].Author.Profile.FirstName)
	assert.Equal(t, kudos.DefaultEmoji, feed[0].Style.Emoji)

	recent, err := services.KudoService.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestUserService_DeleteRemovesKudos(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	ada := register(t, services, "ada@kudos.com", "Ada", "Lovelace")
	grace := register(t, services, "grace@kudos.com", "Grace", "Hopper")

	_, err := services.KudoService.Send(ctx, kudos.SendInput{AuthorID: ada.ID, RecipientID: grace.ID, Message: "hi"})
	require.NoError(t, err)

	require.NoError(t, services.UserService.DeleteByID(ctx, ada.ID))

	feed, err := services.KudoService.Feed(ctx, &kudos.KudoQuery{RecipientID: grace.ID})
	require.NoError(t, err)
	assert.Empty(t, feed)

	others, err := services.UserService.ListOthers(ctx, grace.ID)
	require.NoError(t, err)
	assert.Empty(t, others)
}
