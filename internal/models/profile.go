package models

import "time"

type Profile struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	FullName     string `gorm:"size:100" json:"full_name"`
	Phone        string `gorm:"size:20" json:"phone"`

	Role             string `gorm:"size:20;default:'user'" json:"role"`
	OnboardingStatus string `gorm:"size:20;default:'pending'" json:"onboarding_status"`
	IsVerified       bool   `gorm:"default:false" json:"is_verified"`
	SelfieURL        string `gorm:"size:500" json:"selfie_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

const RoleAdmin = "admin"
