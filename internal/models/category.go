package models

import "time"

type Category struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name              string  `gorm:"size:100;not null" json:"name"`
	Slug              string  `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	BaseInspectionFee float64 `json:"base_inspection_fee"`
	Active            bool    `gorm:"column:is_active;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string { return "categories" }
