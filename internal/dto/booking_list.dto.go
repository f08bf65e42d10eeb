package dto

import "github.com/hellofixo/fixit-admin/internal/models"

// BookingListItem is a booking row plus the display names its foreign
// keys resolve to. Unresolved keys carry the placeholder labels instead
// of empty strings so the admin table never renders a blank cell.
type BookingListItem struct {
	models.Booking

	CategoryName   string `json:"category_name"`
	IssueName      string `json:"issue_name"`
	TechnicianName string `json:"technician_name"`
}

type Page[T any] struct {
	Data  []T   `json:"data"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
