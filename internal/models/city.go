package models

import "time"

type ServiceableCity struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	CityName string `gorm:"size:100;not null" json:"city_name"`
	Active   bool   `gorm:"column:is_active;default:true" json:"is_active"`

	InspectionMultiplier float64 `gorm:"default:1" json:"inspection_multiplier"`
	RepairMultiplier     float64 `gorm:"default:1" json:"repair_multiplier"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ServiceableCity) TableName() string { return "serviceable_cities" }
