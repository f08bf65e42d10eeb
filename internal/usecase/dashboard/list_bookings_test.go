package dashboard_test

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/hellofixo/fixit-admin/internal/models"
	"github.com/hellofixo/fixit-admin/internal/usecase/dashboard"
)

func seedBookings(n int) []models.Booking {
	out := make([]models.Booking, 0, n)
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		out = append(out, models.Booking{
			ID:        fmt.Sprintf("booking-%02d", i),
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
		})
	}
	return out
}

func TestListBookingsPagination(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = seedBookings(25)

	uc := dashboard.NewListBookings(repo)
	ctx := context.Background()

	cases := []struct {
		page, limit int
		wantRows    int
		wantFirstID string
	}{
		{1, 10, 10, "booking-00"},
		{2, 10, 10, "booking-10"},
		{3, 10, 5, "booking-20"},
		{4, 10, 0, ""},
		{0, 0, 10, "booking-00"}, // defaults: page 1, size 10
	}

	for _, tc := range cases {
		result, err := uc.Execute(ctx, tc.page, tc.limit)
		if err != nil {
			t.Fatalf("page %d: unexpected error: %v", tc.page, err)
		}
		if len(result.Data) != tc.wantRows {
			t.Fatalf("page %d: rows = %d, want %d", tc.page, len(result.Data), tc.wantRows)
		}
		if result.Total != 25 {
			t.Fatalf("page %d: total = %d, want 25", tc.page, result.Total)
		}
		if tc.wantRows > 0 && result.Data[0].ID != tc.wantFirstID {
			t.Fatalf("page %d: first id = %q, want %q", tc.page, result.Data[0].ID, tc.wantFirstID)
		}
	}
}

func TestListBookingsSingleRowScenario(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = []models.Booking{
		{
			ID:              "1",
			FinalAmountPaid: 100,
			CreatedAt:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	result, err := dashboard.NewListBookings(repo).Execute(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Data) != 1 {
		t.Fatalf("rows = %d, want exactly 1", len(result.Data))
	}
	if result.Total != 1 {
		t.Fatalf("total = %d, want 1", result.Total)
	}
}

func TestListBookingsEnrichmentPlaceholders(t *testing.T) {
	repo := newFakeRepo()
	repo.categories = map[string]string{"cat-known": "Geyser"}
	repo.technicians = map[string]string{"tech-known": "Sunil"}
	repo.issues = map[string]string{"issue-known": "No cooling"}
	repo.bookings = []models.Booking{
		{
			ID:           "enriched",
			CategoryID:   strptr("cat-known"),
			IssueID:      strptr("issue-known"),
			TechnicianID: strptr("tech-known"),
			CreatedAt:    time.Now(),
		},
		{
			ID:         "dangling-fk",
			CategoryID: strptr("C1"), // not in the fetched set
			CreatedAt:  time.Now(),
		},
	}

	result, err := dashboard.NewListBookings(repo).Execute(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	enriched := result.Data[0]
	if enriched.CategoryName != "Geyser" || enriched.IssueName != "No cooling" || enriched.TechnicianName != "Sunil" {
		t.Fatalf("resolved names wrong: %+v", enriched)
	}

	dangling := result.Data[1]
	if dangling.CategoryName != "N/A" {
		t.Fatalf("dangling category = %q, want N/A", dangling.CategoryName)
	}
	if dangling.IssueName != "N/A" {
		t.Fatalf("missing issue = %q, want N/A", dangling.IssueName)
	}
	if dangling.TechnicianName != "Unassigned" {
		t.Fatalf("missing technician = %q, want Unassigned", dangling.TechnicianName)
	}
}

func TestListBookingsRepeatable(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = seedBookings(12)

	uc := dashboard.NewListBookings(repo)
	ctx := context.Background()

	first, err := uc.Execute(ctx, 2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Execute(ctx, 2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated request diverged:\n%+v\n%+v", first, second)
	}
}

func TestListBookingsSurfacesStoreError(t *testing.T) {
	repo := newFakeRepo()
	repo.failOn["ListBookingsPage"] = true

	_, err := dashboard.NewListBookings(repo).Execute(context.Background(), 1, 10)
	if err == nil {
		t.Fatal("expected store failure to surface, got nil")
	}
}
