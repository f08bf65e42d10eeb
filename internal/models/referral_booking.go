package models

import "time"

type ReferralBooking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ReferrerMobile string `gorm:"size:20;index" json:"referrer_mobile"`
	RefereeMobile  string `gorm:"size:20" json:"referee_mobile"`

	RefereeBookingID string `gorm:"type:uuid" json:"referee_booking_id"`

	RewardAmount float64 `gorm:"default:0" json:"reward_amount"`
	RewardStatus string  `gorm:"size:20;default:'pending'" json:"reward_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ReferralBooking) TableName() string { return "referral_bookings" }
