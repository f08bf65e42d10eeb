package dashboard_test

import (
	"context"
	"errors"

	"github.com/hellofixo/fixit-admin/internal/models"
)

var errStoreDown = errors.New("store unreachable")

// fakeRepo serves canned data and can be told to fail any single read,
// which is how the fallback and error-surfacing paths are exercised.
type fakeRepo struct {
	bookings    []models.Booking
	activeTechs int64
	commissions []float64
	counts      map[string]int64

	categories  map[string]string
	issues      map[string]string
	technicians map[string]string

	failOn map[string]bool

	// lookups records which id sets the enrichment reads asked for.
	lookups map[string][]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		counts:      map[string]int64{},
		categories:  map[string]string{},
		issues:      map[string]string{},
		technicians: map[string]string{},
		failOn:      map[string]bool{},
		lookups:     map[string][]string{},
	}
}

func (f *fakeRepo) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	if f.failOn["ListAllBookings"] {
		return nil, errStoreDown
	}
	return f.bookings, nil
}

func (f *fakeRepo) ListBookingsPage(ctx context.Context, offset, limit int) ([]models.Booking, int64, error) {
	if f.failOn["ListBookingsPage"] {
		return nil, 0, errStoreDown
	}

	total := int64(len(f.bookings))
	if offset >= len(f.bookings) {
		return nil, total, nil
	}

	end := offset + limit
	if end > len(f.bookings) {
		end = len(f.bookings)
	}
	return f.bookings[offset:end], total, nil
}

func (f *fakeRepo) CountActiveTechnicians(ctx context.Context) (int64, error) {
	if f.failOn["CountActiveTechnicians"] {
		return 0, errStoreDown
	}
	return f.activeTechs, nil
}

func (f *fakeRepo) CountRows(ctx context.Context, table string) (int64, error) {
	if f.failOn["CountRows:"+table] {
		return 0, errStoreDown
	}
	return f.counts[table], nil
}

func (f *fakeRepo) ListCommissionAmounts(ctx context.Context) ([]float64, error) {
	if f.failOn["ListCommissionAmounts"] {
		return nil, errStoreDown
	}
	return f.commissions, nil
}

func (f *fakeRepo) CategoryNames(ctx context.Context, ids []string) (map[string]string, error) {
	if f.failOn["CategoryNames"] {
		return nil, errStoreDown
	}
	f.lookups["categories"] = ids
	return pick(f.categories, ids), nil
}

func (f *fakeRepo) IssueNames(ctx context.Context, ids []string) (map[string]string, error) {
	if f.failOn["IssueNames"] {
		return nil, errStoreDown
	}
	f.lookups["issues"] = ids
	return pick(f.issues, ids), nil
}

func (f *fakeRepo) TechnicianNames(ctx context.Context, ids []string) (map[string]string, error) {
	if f.failOn["TechnicianNames"] {
		return nil, errStoreDown
	}
	f.lookups["technicians"] = ids
	return pick(f.technicians, ids), nil
}

func pick(src map[string]string, ids []string) map[string]string {
	out := make(map[string]string)
	for _, id := range ids {
		if name, ok := src[id]; ok {
			out[id] = name
		}
	}
	return out
}

func strptr(s string) *string { return &s }
