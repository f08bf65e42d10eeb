package models

import "time"

type Technician struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	FullName string `gorm:"size:100;not null" json:"full_name"`
	Mobile   string `gorm:"size:20" json:"mobile"`
	Pincode  string `gorm:"size:10" json:"pincode"`

	AadhaarNumber   string `gorm:"size:20" json:"aadhaar_number"`
	AadhaarFrontKey string `gorm:"size:500" json:"aadhaar_front_key"`
	AadhaarBackKey  string `gorm:"size:500" json:"aadhaar_back_key"`
	SelfieKey       string `gorm:"size:500" json:"selfie_key"`

	PrimarySkill string `gorm:"size:50" json:"primary_skill"`
	OtherSkills  string `gorm:"size:255" json:"other_skills"`

	VerificationStatus string `gorm:"size:20;default:'pending'" json:"verification_status"`
	IsVerified         bool   `gorm:"default:false" json:"is_verified"`
	IsActive           bool   `gorm:"default:false" json:"is_active"`
	Remark             string `gorm:"size:255" json:"remark"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Technician) TableName() string { return "technicians" }
