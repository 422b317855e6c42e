package kudos

import (
	"strings"
	"time"

	"github.com/MGTheTrain/kudos/internal/domain/users"
	"github.com/MGTheTrain/kudos/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// Color of a kudo card
type Color string

// Colors
const (
	ColorRed    Color = "RED"
	ColorGreen  Color = "GREEN"
	ColorYellow Color = "YELLOW"
	ColorBlue   Color = "BLUE"
	ColorWhite  Color = "WHITE"
)

// Colors lists all card colors in display order
var Colors = []Color{ColorRed, ColorGreen, ColorYellow, ColorBlue, ColorWhite}

// Emoji shown on a kudo card
type Emoji string

// Emojis
const (
	EmojiThumbsUp Emoji = "THUMBSUP"
	EmojiParty    Emoji = "PARTY"
	EmojiHandsUp  Emoji = "HANDSUP"
)

// Emojis lists all emojis in display order
var Emojis = []Emoji{EmojiThumbsUp, EmojiParty, EmojiHandsUp}

var emojiGlyphs = map[Emoji]string{
	EmojiThumbsUp: "👍",
	EmojiParty:    "🎉",
	EmojiHandsUp:  "🙌",
}

// Glyph returns the unicode character for e
func (e Emoji) Glyph() string {
	return emojiGlyphs[e]
}

// Valid reports whether e is a known emoji
func (e Emoji) Valid() bool {
	_, ok := emojiGlyphs[e]
	return ok
}

// Valid reports whether c is a known color
func (c Color) Valid() bool {
	for _, known := range Colors {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the color in title case for rendering
func (c Color) Label() string {
	s := strings.ToLower(string(c))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Style defaults
const (
	DefaultBackgroundColor = ColorYellow
	DefaultTextColor       = ColorWhite
	DefaultEmoji           = EmojiThumbsUp
)

// KudoStyle describes how a kudo card is rendered
type KudoStyle struct {
	BackgroundColor Color `validate:"required,color"`
	TextColor       Color `validate:"required,color"`
	Emoji           Emoji `validate:"required,emoji"`
}

// WithDefaults returns a copy of s with unset fields replaced by the defaults
func (s KudoStyle) WithDefaults() KudoStyle {
	if s.BackgroundColor == "" {
		s.BackgroundColor = DefaultBackgroundColor
	}
	if s.TextColor == "" {
		s.TextColor = DefaultTextColor
	}
	if s.Emoji == "" {
		s.Emoji = DefaultEmoji
	}
	return s
}

// Kudo entity
type Kudo struct {
	ID          string `validate:"required,uuid4"`
	Message     string `validate:"required,min=1,max=1000"`
	Style       KudoStyle
	AuthorID    string    `validate:"required,uuid4"`
	RecipientID string    `validate:"required,uuid4,nefield=AuthorID"`
	CreatedAt   time.Time `validate:"required"`

	// Author and Recipient are populated by repository reads only
	Author    *users.User `validate:"-"`
	Recipient *users.User `validate:"-"`
}

// Validate for validating Kudo struct
func (k *Kudo) Validate() error {
	return validators.ValidateStruct(k, map[string]validator.Func{
		"color": validators.OneOf(colorNames()...),
		"emoji": validators.OneOf(emojiNames()...),
	})
}

func colorNames() []string {
	names := make([]string, len(Colors))
	for i, c := range Colors {
		names[i] = string(c)
	}
	return names
}

func emojiNames() []string {
	names := make([]string, len(Emojis))
	for i, e := range Emojis {
		names[i] = string(e)
	}
	return names
}
