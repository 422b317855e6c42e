//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/kudos/internal/domain/kudos"
	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type feedFixture struct {
	tc          *TestContext
	jane, bob   *users.User
	zed         *users.User
	first, last *kudos.Kudo
}

// seedFeed creates three users and three kudos one minute apart
func seedFeed(t *testing.T, dbType string) *feedFixture {
	t.Helper()

	tc := SetupTestDB(t, dbType)
	ctx := context.Background()

	jane := CreateTestUser(t, "Jane", "Doe")
	bob := CreateTestUser(t, "Bob", "Smith")
	zed := CreateTestUser(t, "Zed", "Brown")
	for _, u := range []*users.User{jane, bob, zed} {
		require.NoError(t, tc.UserRepo.Create(ctx, u))
	}

	base := time.Now().UTC().Add(-time.Hour)
	first := CreateTestKudo(t, zed, jane, "Great demo", kudos.EmojiThumbsUp, base)
	second := CreateTestKudo(t, jane, bob, "Thanks for 100% coverage", kudos.EmojiHandsUp, base.Add(time.Minute))
	last := CreateTestKudo(t, bob, jane, "Release party!", kudos.EmojiParty, base.Add(2*time.Minute))
	for _, k := range []*kudos.Kudo{first, second, last} {
		require.NoError(t, tc.KudoRepo.Create(ctx, k))
	}

	return &feedFixture{tc: tc, jane: jane, bob: bob, zed: zed, first: first, last: last}
}

func messages(list []*kudos.Kudo) []string {
	out := make([]string, len(list))
	for i, k := range list {
		out[i] = k.Message
	}
	return out
}

func TestKudoSqliteRepository_List_DefaultSortsNewestFirst(t *testing.T) {
	f := seedFeed(t, config.SqliteDbType)

	list, err := f.tc.KudoRepo.List(context.Background(), kudos.NewKudoQuery())
	require.NoError(t, err)

	assert.Equal(t, []string{"Release party!", "Thanks for 100% coverage", "Great demo"}, messages(list))
	require.NotNil(t, list[0].Author)
	require.NotNil(t, list[0].Recipient)
	assert.Equal(t, "Bob", list[0].Author.Profile.FirstName)
	assert.Equal(t, "Jane", list[0].Recipient.Profile.FirstName)
}

func TestKudoSqliteRepository_List_SortBySender(t *testing.T) {
	f := seedFeed(t, config.SqliteDbType)

	list, err := f.tc.KudoRepo.List(context.Background(), &kudos.KudoQuery{SortBy: kudos.SortBySender})
	require.NoError(t, err)

	assert.Equal(t, []string{"Release party!", "Thanks for 100% coverage", "Great demo"}, messages(list))
	assert.Equal(t, "Bob", list[0].Author.Profile.FirstName)
	assert.Equal(t, "Zed", list[2].Author.Profile.FirstName)
}

func TestKudoSqliteRepository_List_SortByEmoji(t *testing.T) {
	f := seedFeed(t, config.SqliteDbType)

	list, err := f.tc.KudoRepo.List(context.Background(), &kudos.KudoQuery{SortBy: kudos.SortByEmoji})
	require.NoError(t, err)

	// HANDSUP < PARTY < THUMBSUP
	assert.Equal(t, []string{"Thanks for 100% coverage", "Release party!", "Great demo"}, messages(list))
}

func TestKudoSqliteRepository_List_Filter(t *testing.T) {
	f := seedFeed(t, config.SqliteDbType)
	ctx := context.Background()

	tests := []struct {
		filter   string
		expected []string
	}{
		{"party", []string{"Release party!"}},
		{"ZED", []string{"Great demo"}},
		{"doe", []string{"Thanks for 100% coverage"}},
		{"100%", []string{"Thanks for 100% coverage"}},
		{"_", []string{}},
		{"nothing matches", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			list, err := f.tc.KudoRepo.List(ctx, &kudos.KudoQuery{Filter: tt.filter})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, messages(list))
		})
	}
}

func TestKudoSqliteRepository_List_ByRecipientWithPaging(t *testing.T) {
	f := seedFeed(t, config.SqliteDbType)

	list, err := f.tc.KudoRepo.List(context.Background(), &kudos.KudoQuery{RecipientID: f.jane.ID, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"Release party!"}, messages(list))

	list, err = f.tc.KudoRepo.List(context.Background(), &kudos.KudoQuery{RecipientID: f.jane.ID, Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"Great demo"}, messages(list))
}

func TestKudoSqliteRepository_List_InvalidQuery(t *testing.T) {
	f := seedFeed(t, config.SqliteDbType)

	_, err := f.tc.KudoRepo.List(context.Background(), &kudos.KudoQuery{SortBy: "likes"})
	assert.Error(t, err)
}

func TestKudoSqliteRepository_Recent(t *testing.T) {
	f := seedFeed(t, config.SqliteDbType)

	list, err := f.tc.KudoRepo.Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, f.last.ID, list[0].ID)
	assert.Equal(t, "Jane", list[0].Recipient.Profile.FirstName)
}

func TestKudoSqliteRepository_Create_Invalid(t *testing.T) {
	f := seedFeed(t, config.SqliteDbType)

	k := CreateTestKudo(t, f.jane, f.jane, "to myself", kudos.EmojiParty, time.Now())
	err := f.tc.KudoRepo.Create(context.Background(), k)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}
