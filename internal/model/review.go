package model

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	ImageURL  *string   `gorm:"type:varchar(512)" json:"imageUrl"`
	Rating    int       `gorm:"not null" json:"rating"`
	CreatedAt time.Time `json:"createdAt"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Review) TableName() string { return "reviews" }
