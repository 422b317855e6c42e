package models

import (
	"time"

	"github.com/MGTheTrain/kudos/internal/domain/kudos"
)

// StyleColumns are the kudo style fields stored inline on the kudos table
type StyleColumns struct {
	BackgroundColor string `gorm:"not null;type:varchar(10)"`
	TextColor       string `gorm:"not null;type:varchar(10)"`
	Emoji           string `gorm:"not null;type:varchar(10)"`
}

// KudoModel is the GORM database model for kudos
type KudoModel struct {
	ID          string       `gorm:"primaryKey;type:uuid"`
	Message     string       `gorm:"not null;type:text"`
	Style       StyleColumns `gorm:"embedded;embeddedPrefix:style_"`
	AuthorID    string       `gorm:"not null;index;type:uuid"`
	Author      *UserModel   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	RecipientID string       `gorm:"not null;index;type:uuid"`
	Recipient   *UserModel   `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time    `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (KudoModel) TableName() string {
	return "kudos"
}

// ToDomain converts GORM model to domain entity.
// Author and Recipient are converted when they were preloaded.
func (m *KudoModel) ToDomain() *kudos.Kudo {
	k := &kudos.Kudo{
		ID:      m.ID,
		Message: m.Message,
		Style: kudos.KudoStyle{
			BackgroundColor: kudos.Color(m.Style.BackgroundColor),
			TextColor:       kudos.Color(m.Style.TextColor),
			Emoji:           kudos.Emoji(m.Style.Emoji),
		},
		AuthorID:    m.AuthorID,
		RecipientID: m.RecipientID,
		CreatedAt:   m.CreatedAt,
	}
	if m.Author != nil {
		k.Author = m.Author.ToDomain()
	}
	if m.Recipient != nil {
		k.Recipient = m.Recipient.ToDomain()
	}
	return k
}

// FromDomain converts domain entity to GORM model.
// Associations are left empty so saving a kudo never writes users.
func (m *KudoModel) FromDomain(k *kudos.Kudo) {
	m.ID = k.ID
	m.Message = k.Message
	m.Style = StyleColumns{
		BackgroundColor: string(k.Style.BackgroundColor),
		TextColor:       string(k.Style.TextColor),
		Emoji:           string(k.Style.Emoji),
	}
	m.AuthorID = k.AuthorID
	m.RecipientID = k.RecipientID
	m.CreatedAt = k.CreatedAt
}

// All returns every model to migrate
func All() []any {
	return []any{&UserModel{}, &KudoModel{}}
}
