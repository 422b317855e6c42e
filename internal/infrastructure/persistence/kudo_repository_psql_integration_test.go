//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/MGTheTrain/kudos/internal/domain/kudos"
	"github.com/MGTheTrain/kudos/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKudoPostgresRepository_List_DefaultSortsNewestFirst(t *testing.T) {
	f := seedFeed(t, config.PostgresDbType)

	list, err := f.tc.KudoRepo.List(context.Background(), kudos.NewKudoQuery())
	require.NoError(t, err)

	assert.Equal(t, []string{"Release party!", "Thanks for 100% coverage", "Great demo"}, messages(list))
	require.NotNil(t, list[0].Author)
	require.NotNil(t, list[0].Recipient)
	assert.Equal(t, f.bob.ID, list[0].Author.ID)
	assert.Equal(t, f.jane.ID, list[0].Recipient.ID)
}

func TestKudoPostgresRepository_List_Sorts(t *testing.T) {
	f := seedFeed(t, config.PostgresDbType)
	ctx := context.Background()

	bySender, err := f.tc.KudoRepo.List(ctx, &kudos.KudoQuery{SortBy: kudos.SortBySender})
	require.NoError(t, err)
	assert.Equal(t, "Bob", bySender[0].Author.Profile.FirstName)
	assert.Equal(t, "Zed", bySender[2].Author.Profile.FirstName)

	byEmoji, err := f.tc.KudoRepo.List(ctx, &kudos.KudoQuery{SortBy: kudos.SortByEmoji})
	require.NoError(t, err)
	assert.Equal(t, []string{"Thanks for 100% coverage", "Release party!", "Great demo"}, messages(byEmoji))
}

func TestKudoPostgresRepository_List_Filter(t *testing.T) {
	f := seedFeed(t, config.PostgresDbType)
	ctx := context.Background()

	tests := []struct {
		filter   string
		expected []string
	}{
		{"PARTY", []string{"Release party!"}},
		{"zed", []string{"Great demo"}},
		{"Doe", []string{"Thanks for 100% coverage"}},
		{"100%", []string{"Thanks for 100% coverage"}},
		{"_", []string{}},
		{`\`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			list, err := f.tc.KudoRepo.List(ctx, &kudos.KudoQuery{Filter: tt.filter})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, messages(list))
		})
	}
}

func TestKudoPostgresRepository_List_ByRecipientWithPaging(t *testing.T) {
	f := seedFeed(t, config.PostgresDbType)

	list, err := f.tc.KudoRepo.List(context.Background(), &kudos.KudoQuery{RecipientID: f.jane.ID, Limit: 1, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"Great demo"}, messages(list))
}

func TestKudoPostgresRepository_Recent(t *testing.T) {
	f := seedFeed(t, config.PostgresDbType)

	list, err := f.tc.KudoRepo.Recent(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, f.last.ID, list[0].ID)
	assert.Equal(t, f.first.ID, list[2].ID)
}
