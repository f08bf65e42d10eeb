package dashboard

import (
	"context"

	"github.com/hellofixo/fixit-admin/internal/models"
)

// Repository is the read surface the aggregation layer needs. Every
// method is a single independent read against the marketplace tables;
// the use cases decide which of them run concurrently.
type Repository interface {
	// -------- Bookings --------
	ListAllBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	ListBookingsPage(
		ctx context.Context,
		offset int,
		limit int,
	) ([]models.Booking, int64, error)

	// -------- Counts --------
	CountActiveTechnicians(
		ctx context.Context,
	) (int64, error)

	CountRows(
		ctx context.Context,
		table string,
	) (int64, error)

	// -------- Earnings --------
	ListCommissionAmounts(
		ctx context.Context,
	) ([]float64, error)

	// -------- Enrichment lookups (current page ids only) --------
	CategoryNames(
		ctx context.Context,
		ids []string,
	) (map[string]string, error)

	IssueNames(
		ctx context.Context,
		ids []string,
	) (map[string]string, error)

	TechnicianNames(
		ctx context.Context,
		ids []string,
	) (map[string]string, error)
}
