package dto

type StatCard struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Description string `json:"description"`
	Trend       string `json:"trend"`
}

type RegistryCount struct {
	Title string `json:"title"`
	Count int64  `json:"count"`
	Href  string `json:"href"`
}

type RecentBooking struct {
	ID         string `json:"id"`
	Customer   string `json:"customer"`
	Category   string `json:"category"`
	Technician string `json:"technician"`
	Amount     string `json:"amount"`
	Status     string `json:"status"`
	Date       string `json:"date"`
}

type ChartPoint struct {
	Name     string  `json:"name"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// DashboardView is the whole admin landing page in one response. It is
// always structurally complete: when aggregation fails the caller gets
// the zeroed fallback, never an error.
type DashboardView struct {
	Stats          []StatCard      `json:"stats"`
	RegistryCounts []RegistryCount `json:"registry_counts"`
	RecentBookings []RecentBooking `json:"recent_bookings"`
	ChartData      []ChartPoint    `json:"chart_data"`
}
