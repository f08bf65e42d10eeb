package dashboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/hellofixo/fixit-admin/internal/models"
	"github.com/hellofixo/fixit-admin/internal/usecase/dashboard"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSummaryHappyPath(t *testing.T) {
	now := time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)

	repo := newFakeRepo()
	repo.activeTechs = 3
	repo.commissions = []float64{100, 150.5}
	repo.counts = map[string]int64{
		"profiles":           12,
		"technicians":        7,
		"categories":         4,
		"serviceable_cities": 2,
		"referral_bookings":  1,
		"wallets":            9,
	}
	repo.categories = map[string]string{"cat-1": "AC Repair"}
	repo.technicians = map[string]string{"tech-1": "Ravi Kumar"}
	repo.bookings = []models.Booking{
		{
			ID:                  "b1",
			UserName:            "Asha",
			CategoryID:          strptr("cat-1"),
			TechnicianID:        strptr("tech-1"),
			Status:              "completed",
			FinalAmountPaid:     1200,
			FinalAmountToBePaid: 1200,
			CreatedAt:           time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:                  "b2",
			UserName:            "Vikram",
			Status:              "pending",
			TotalEstimatedPrice: 500,
			FinalAmountPaid:     300,
			CreatedAt:           time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC),
		},
	}

	uc := dashboard.NewGetSummary(repo).WithClock(fixedClock(now))
	view := uc.Execute(context.Background())

	if got := view.Stats[0].Value; got != "2" {
		t.Fatalf("total bookings = %q, want 2", got)
	}
	if got := view.Stats[1].Value; got != "₹1,500" {
		t.Fatalf("total revenue = %q, want ₹1,500", got)
	}
	if got := view.Stats[2].Value; got != "₹250.50" {
		t.Fatalf("platform commission = %q, want ₹250.50", got)
	}
	if got := view.Stats[3].Value; got != "3" {
		t.Fatalf("active techs = %q, want 3", got)
	}

	wantCounts := map[string]int64{
		"Profiles":    12,
		"Technicians": 7,
		"Categories":  4,
		"Cities":      2,
		"Referrals":   1,
		"Wallets":     9,
	}
	for _, rc := range view.RegistryCounts {
		if want, ok := wantCounts[rc.Title]; !ok || rc.Count != want {
			t.Fatalf("registry count %s = %d, want %d", rc.Title, rc.Count, want)
		}
	}

	if len(view.RecentBookings) != 2 {
		t.Fatalf("recent bookings = %d, want 2", len(view.RecentBookings))
	}
	first := view.RecentBookings[0]
	if first.Category != "AC Repair" || first.Technician != "Ravi Kumar" {
		t.Fatalf("enrichment failed: %+v", first)
	}
	if first.Amount != "₹1200" {
		t.Fatalf("amount = %q, want ₹1200", first.Amount)
	}

	second := view.RecentBookings[1]
	if second.Category != dashboard.PlaceholderCategory {
		t.Fatalf("missing category rendered %q, want %q", second.Category, dashboard.PlaceholderCategory)
	}
	if second.Technician != dashboard.PlaceholderTechnician {
		t.Fatalf("missing technician rendered %q, want %q", second.Technician, dashboard.PlaceholderTechnician)
	}
	if second.Amount != "₹500" {
		t.Fatalf("estimated-price amount = %q, want ₹500", second.Amount)
	}

	if len(view.ChartData) != 7 {
		t.Fatalf("chart length = %d, want 7", len(view.ChartData))
	}
}

// Float sums can land a hair under a whole paise boundary; the stat
// cards must carry the rounding into the rupees instead of printing a
// three-digit paise field.
func TestSummaryMoneyStatsRoundToPaise(t *testing.T) {
	repo := newFakeRepo()
	repo.commissions = []float64{100.499, 150.5} // 250.999
	repo.bookings = []models.Booking{
		{ID: "b1", FinalAmountPaid: 1000.5, CreatedAt: time.Date(2024, 1, 7, 9, 0, 0, 0, time.UTC)},
		{ID: "b2", FinalAmountPaid: 234.499, CreatedAt: time.Date(2024, 1, 6, 9, 0, 0, 0, time.UTC)},
	}

	uc := dashboard.NewGetSummary(repo).WithClock(fixedClock(time.Date(2024, 1, 7, 12, 0, 0, 0, time.UTC)))
	view := uc.Execute(context.Background())

	if got := view.Stats[1].Value; got != "₹1,235" {
		t.Fatalf("total revenue = %q, want ₹1,235", got)
	}
	if got := view.Stats[2].Value; got != "₹251" {
		t.Fatalf("platform commission = %q, want ₹251", got)
	}
}

// The sum of per-day counts over the 7-day series must equal the
// number of bookings whose creation date falls inside the window.
func TestChartPartitionsWindowBookings(t *testing.T) {
	now := time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC)

	repo := newFakeRepo()
	repo.bookings = []models.Booking{
		{ID: "in-window-1", FinalAmountPaid: 10, CreatedAt: time.Date(2024, 3, 10, 0, 0, 1, 0, time.UTC)},
		{ID: "in-window-2", FinalAmountPaid: 20, CreatedAt: time.Date(2024, 3, 4, 23, 59, 59, 0, time.UTC)},
		{ID: "in-window-3", FinalAmountPaid: 30, CreatedAt: time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)},
		{ID: "before-window", FinalAmountPaid: 40, CreatedAt: time.Date(2024, 3, 3, 23, 59, 59, 0, time.UTC)},
		{ID: "zero-timestamp"},
	}

	uc := dashboard.NewGetSummary(repo).WithClock(fixedClock(now))
	view := uc.Execute(context.Background())

	totalCount := 0
	totalRevenue := 0.0
	for _, p := range view.ChartData {
		totalCount += p.Bookings
		totalRevenue += p.Revenue
	}

	if totalCount != 3 {
		t.Fatalf("bookings across series = %d, want 3", totalCount)
	}
	if totalRevenue != 60 {
		t.Fatalf("revenue across series = %v, want 60", totalRevenue)
	}

	// Window is oldest first.
	if view.ChartData[0].Name != "Mon" || view.ChartData[6].Name != "Sun" {
		t.Fatalf("day labels out of order: %q ... %q",
			view.ChartData[0].Name, view.ChartData[6].Name)
	}
}

func TestSummaryFallback(t *testing.T) {
	cases := []string{
		"ListAllBookings",
		"CountActiveTechnicians",
		"ListCommissionAmounts",
		"CountRows:technicians",
		"CountRows:wallets",
		"CategoryNames",
	}

	for _, failing := range cases {
		t.Run(failing, func(t *testing.T) {
			repo := newFakeRepo()
			repo.bookings = []models.Booking{
				{ID: "b1", CategoryID: strptr("cat-1"), FinalAmountPaid: 100, CreatedAt: time.Now()},
			}
			repo.failOn[failing] = true

			view := dashboard.NewGetSummary(repo).Execute(context.Background())

			if len(view.Stats) != 4 {
				t.Fatalf("fallback stats = %d entries, want 4", len(view.Stats))
			}
			for _, s := range view.Stats {
				if s.Value != "0" && s.Value != "₹0" {
					t.Fatalf("fallback stat %s = %q, want zeroed", s.Title, s.Value)
				}
			}
			for _, rc := range view.RegistryCounts {
				if rc.Count != 0 {
					t.Fatalf("fallback registry %s = %d, want 0", rc.Title, rc.Count)
				}
			}
			if len(view.RecentBookings) != 0 || view.RecentBookings == nil {
				t.Fatalf("fallback recent bookings should be empty non-nil")
			}
			if len(view.ChartData) != 0 || view.ChartData == nil {
				t.Fatalf("fallback chart should be empty non-nil")
			}
		})
	}
}

// Enrichment must only ask for the foreign keys of the 5-row sample,
// never the whole table.
func TestRecentEnrichmentScopedToSample(t *testing.T) {
	repo := newFakeRepo()
	for i := 0; i < 10; i++ {
		id := string(rune('a' + i))
		repo.bookings = append(repo.bookings, models.Booking{
			ID:         id,
			CategoryID: strptr("cat-" + id),
			CreatedAt:  time.Now(),
		})
	}

	dashboard.NewGetSummary(repo).Execute(context.Background())

	asked := repo.lookups["categories"]
	if len(asked) != 5 {
		t.Fatalf("category lookup asked for %d ids, want 5", len(asked))
	}
}
