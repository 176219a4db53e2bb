package model

import (
	"time"

	"github.com/google/uuid"
)

// Referral pairs a unique shareable code with the user who issued it. UsedByID
// stays null until the code is redeemed and is written exactly once; referrals
// are never deleted.
type Referral struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code      string     `gorm:"type:varchar(16);uniqueIndex:idx_referrals_code;not null" json:"code"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"ownerId"`
	UsedByID  *uuid.UUID `gorm:"type:uuid" json:"usedById"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (Referral) TableName() string { return "referrals" }
