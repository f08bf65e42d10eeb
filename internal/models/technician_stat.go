package models

import "time"

type TechnicianStat struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	TechnicianID string `gorm:"type:uuid;uniqueIndex" json:"technician_id"`

	JobsAssigned  int `gorm:"default:0" json:"jobs_assigned"`
	JobsCompleted int `gorm:"default:0" json:"jobs_completed"`
	JobsCancelled int `gorm:"default:0" json:"jobs_cancelled"`

	TotalEarnings float64 `gorm:"default:0" json:"total_earnings"`
	RatingSum     float64 `gorm:"default:0" json:"rating_sum"`
	RatingCount   int     `gorm:"default:0" json:"rating_count"`
	AvgRating     float64 `gorm:"default:0" json:"avg_rating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TechnicianStat) TableName() string { return "technician_stats" }
