//go:build unit
// +build unit

package kudos

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validKudo() *Kudo {
	return &Kudo{
		ID:          uuid.NewString(),
		Message:     "Thanks for the code review!",
		Style:       KudoStyle{}.WithDefaults(),
		AuthorID:    uuid.NewString(),
		RecipientID: uuid.NewString(),
		CreatedAt:   time.Now(),
	}
}

func TestKudo_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(k *Kudo)
		shouldErr bool
	}{
		{"valid", func(k *Kudo) {}, false},
		{"empty message", func(k *Kudo) { k.Message = "" }, true},
		{"self kudo", func(k *Kudo) { k.RecipientID = k.AuthorID }, true},
		{"unknown color", func(k *Kudo) { k.Style.BackgroundColor = "PURPLE" }, true},
		{"unknown emoji", func(k *Kudo) { k.Style.Emoji = "ROCKET" }, true},
		{"missing style", func(k *Kudo) { k.Style = KudoStyle{} }, true},
		{"invalid author", func(k *Kudo) { k.AuthorID = "me" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := validKudo()
			tt.mutate(k)

			err := k.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestKudoStyle_WithDefaults(t *testing.T) {
	style := KudoStyle{TextColor: ColorBlue}.WithDefaults()

	assert.Equal(t, DefaultBackgroundColor, style.BackgroundColor)
	assert.Equal(t, ColorBlue, style.TextColor)
	assert.Equal(t, DefaultEmoji, style.Emoji)
}

func TestEmoji(t *testing.T) {
	assert.Equal(t, "🎉", EmojiParty.Glyph())
	assert.True(t, EmojiHandsUp.Valid())
	assert.False(t, Emoji("ROCKET").Valid())
	assert.True(t, ColorGreen.Valid())
	assert.False(t, Color("PURPLE").Valid())
	assert.Equal(t, "Yellow", ColorYellow.Label())
}

func TestKudoQuery_Validate(t *testing.T) {
	tests := []struct {
		name      string
		query     KudoQuery
		shouldErr bool
	}{
		{"defaults", *NewKudoQuery(), false},
		{"empty", KudoQuery{}, false},
		{"sort by sender", KudoQuery{SortBy: SortBySender}, false},
		{"unknown sort", KudoQuery{SortBy: "likes"}, true},
		{"negative offset", KudoQuery{Offset: -1}, true},
		{"limit too large", KudoQuery{Limit: 500}, true},
		{"bad recipient", KudoQuery{RecipientID: "nope"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
