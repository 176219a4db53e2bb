package model

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

type Booking struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"userId"`
	Destination string        `gorm:"type:varchar(128);not null" json:"destination"`
	Service     string        `gorm:"type:varchar(128);not null" json:"service"`
	StartDate   time.Time     `gorm:"not null" json:"startDate"`
	EndDate     *time.Time    `json:"endDate"`
	Quantity    int           `gorm:"not null;default:1" json:"quantity"`
	TotalPrice  float64       `gorm:"type:numeric(10,2);not null" json:"totalPrice"`
	Status      BookingStatus `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Booking) TableName() string { return "bookings" }
