package models

import "time"

type Issue struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	CategoryID string `gorm:"type:uuid;index" json:"category_id"`

	Title    string  `gorm:"size:100;not null" json:"title"`
	IconURL  string  `gorm:"size:500" json:"icon_url"`
	PriceMin float64 `json:"price_min"`
	PriceMax float64 `json:"price_max"`
	Active   bool    `gorm:"column:is_active;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Issue) TableName() string { return "issues" }
