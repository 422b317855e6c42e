//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/MGTheTrain/kudos/internal/domain/kudos"
	"github.com/stretchr/testify/assert"
)

func TestKudoModel_ToDomain_WithAssociations(t *testing.T) {
	kudoModel := &KudoModel{
		ID:          "kudo-id",
		Message:     "Nice work",
		Style:       StyleColumns{BackgroundColor: "BLUE", TextColor: "WHITE", Emoji: "PARTY"},
		AuthorID:    "author-id",
		Author:      &UserModel{ID: "author-id", Profile: ProfileColumns{FirstName: "Ann"}},
		RecipientID: "recipient-id",
		CreatedAt:   time.Now(),
	}

	kudo := kudoModel.ToDomain()

	assert.Equal(t, "kudo-id", kudo.ID)
	assert.Equal(t, kudos.ColorBlue, kudo.Style.BackgroundColor)
	assert.Equal(t, kudos.EmojiParty, kudo.Style.Emoji)
	if assert.NotNil(t, kudo.Author) {
		assert.Equal(t, "Ann", kudo.Author.Profile.FirstName)
	}
	assert.Nil(t, kudo.Recipient)
}

func TestKudoModel_FromDomain_SkipsAssociations(t *testing.T) {
	kudo := &kudos.Kudo{
		ID:          "kudo-id",
		Message:     "Nice work",
		Style:       kudos.KudoStyle{}.WithDefaults(),
		AuthorID:    "author-id",
		RecipientID: "recipient-id",
	}

	kudoModel := &KudoModel{}
	kudoModel.FromDomain(kudo)

	assert.Equal(t, "YELLOW", kudoModel.Style.BackgroundColor)
	assert.Equal(t, "THUMBSUP", kudoModel.Style.Emoji)
	assert.Nil(t, kudoModel.Author)
	assert.Nil(t, kudoModel.Recipient)
	assert.Len(t, All(), 2)
}
