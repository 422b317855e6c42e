package models

import (
	"time"

	"github.com/MGTheTrain/kudos/internal/domain/users"
)

// ProfileColumns are the profile fields stored inline on the users table
type ProfileColumns struct {
	FirstName      string `gorm:"not null;type:varchar(100)"`
	LastName       string `gorm:"not null;type:varchar(100)"`
	Department     string `gorm:"not null;type:varchar(20);default:MARKETING"`
	ProfilePicture string `gorm:"type:varchar(1024)"`
}

// UserModel is the GORM database model for users
type UserModel struct {
	ID        string         `gorm:"primaryKey;type:uuid"`
	Email     string         `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Password  string         `gorm:"not null;type:varchar(255)"`
	Profile   ProfileColumns `gorm:"embedded;embeddedPrefix:profile_"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:       m.ID,
		Email:    m.Email,
		Password: m.Password,
		Profile: users.Profile{
			FirstName:      m.Profile.FirstName,
			LastName:       m.Profile.LastName,
			Department:     users.Department(m.Profile.Department),
			ProfilePicture: m.Profile.ProfilePicture,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.Password = u.Password
	m.Profile = ProfileColumnsFromDomain(u.Profile)
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}

// ProfileColumnsFromDomain converts a domain profile to its column representation
func ProfileColumnsFromDomain(p users.Profile) ProfileColumns {
	return ProfileColumns{
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Department:     string(p.Department),
		ProfilePicture: p.ProfilePicture,
	}
}
