package models

import "time"

type PlatformEarning struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	BookingID    string `gorm:"type:uuid;index" json:"booking_id"`
	TechnicianID string `gorm:"type:uuid;index" json:"technician_id"`

	GrossAmount          float64 `gorm:"default:0" json:"gross_amount"`
	CommissionAmount     float64 `gorm:"default:0" json:"commission_amount"`
	TechnicianAmount     float64 `gorm:"default:0" json:"technician_amount"`
	CommissionPercentage float64 `gorm:"default:0" json:"commission_percentage"`

	CreatedAt time.Time `json:"created_at"`
}

func (PlatformEarning) TableName() string { return "platform_earnings" }
