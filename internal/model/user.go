package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"type:varchar(128);not null" json:"name"`
	Email     string         `gorm:"type:varchar(255);not null" json:"email"`
	Country   string         `gorm:"type:varchar(64)" json:"country"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// UserSummary is the trimmed user shape embedded in booking and review listings.
type UserSummary struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email,omitempty"`
	Country string    `json:"country"`
}

// Summary returns the public projection of the user. withEmail controls whether
// the email address is exposed; review listings must not leak it.
func (u *User) Summary(withEmail bool) *UserSummary {
	s := &UserSummary{ID: u.ID, Name: u.Name, Country: u.Country}
	if withEmail {
		s.Email = u.Email
	}
	return s
}
