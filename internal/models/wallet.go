package models

import "time"

// Wallets are keyed by mobile number rather than a profile foreign key:
// customers can hold a balance before they ever complete onboarding.
type Wallet struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	MobileNumber string  `gorm:"size:20;uniqueIndex;not null" json:"mobile_number"`
	Balance      float64 `gorm:"default:0" json:"balance"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Wallet) TableName() string { return "wallets" }
