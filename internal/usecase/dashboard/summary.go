package dashboard

import (
	"context"
	"log"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	domain "github.com/hellofixo/fixit-admin/internal/domain/dashboard"
	"github.com/hellofixo/fixit-admin/internal/dto"
	"github.com/hellofixo/fixit-admin/internal/format"
	"github.com/hellofixo/fixit-admin/internal/models"
	"github.com/hellofixo/fixit-admin/internal/timezone"
)

const (
	PlaceholderCategory   = "N/A"
	PlaceholderCustomer   = "N/A"
	PlaceholderIssue      = "N/A"
	PlaceholderTechnician = "Unassigned"

	chartDays      = 7
	recentBookings = 5
)

// ======================================================
// USE CASE
// ======================================================

type GetSummary struct {
	repo domain.Repository

	// injected so tests can pin the 7-day window
	now func() time.Time
}

func NewGetSummary(repo domain.Repository) *GetSummary {
	return &GetSummary{
		repo: repo,
		now:  time.Now,
	}
}

// WithClock overrides the clock. Test hook only.
func (uc *GetSummary) WithClock(now func() time.Time) *GetSummary {
	uc.now = now
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

// Execute assembles the whole admin landing page. It never returns an
// error: if any contributing read fails the zeroed fallback view is
// returned instead, so the panel always renders.
func (uc *GetSummary) Execute(ctx context.Context) dto.DashboardView {
	view, err := uc.aggregate(ctx)
	if err != nil {
		log.Printf("dashboard aggregation failed, serving fallback: %v", err)
		return FallbackView()
	}
	return view
}

func (uc *GetSummary) aggregate(ctx context.Context) (dto.DashboardView, error) {

	var (
		bookings    []models.Booking
		activeTechs int64
		commissions []float64

		profilesCount    int64
		techniciansCount int64
		categoriesCount  int64
		citiesCount      int64
		referralsCount   int64
		walletsCount     int64
	)

	// All nine reads are independent; a failing branch does not cancel
	// the siblings already in flight, Wait just reports the first error.
	var g errgroup.Group

	g.Go(func() (err error) {
		bookings, err = uc.repo.ListAllBookings(ctx)
		return err
	})
	g.Go(func() (err error) {
		activeTechs, err = uc.repo.CountActiveTechnicians(ctx)
		return err
	})
	g.Go(func() (err error) {
		commissions, err = uc.repo.ListCommissionAmounts(ctx)
		return err
	})
	g.Go(func() (err error) {
		profilesCount, err = uc.repo.CountRows(ctx, "profiles")
		return err
	})
	g.Go(func() (err error) {
		techniciansCount, err = uc.repo.CountRows(ctx, "technicians")
		return err
	})
	g.Go(func() (err error) {
		categoriesCount, err = uc.repo.CountRows(ctx, "categories")
		return err
	})
	g.Go(func() (err error) {
		citiesCount, err = uc.repo.CountRows(ctx, "serviceable_cities")
		return err
	})
	g.Go(func() (err error) {
		referralsCount, err = uc.repo.CountRows(ctx, "referral_bookings")
		return err
	})
	g.Go(func() (err error) {
		walletsCount, err = uc.repo.CountRows(ctx, "wallets")
		return err
	})

	if err := g.Wait(); err != nil {
		return dto.DashboardView{}, err
	}

	totalRevenue := 0.0
	for _, b := range bookings {
		totalRevenue += b.FinalAmountPaid
	}

	totalCommission := 0.0
	for _, amount := range commissions {
		totalCommission += amount
	}

	recent, err := uc.enrichRecent(ctx, bookings)
	if err != nil {
		return dto.DashboardView{}, err
	}

	return dto.DashboardView{
		Stats: []dto.StatCard{
			{Title: "Total Bookings", Value: format.Count(int64(len(bookings))), Description: "All time records", Trend: "up"},
			{Title: "Total Revenue", Value: format.INR(totalRevenue), Description: "Gross booking revenue", Trend: "up"},
			{Title: "Platform Comm.", Value: format.INR(totalCommission), Description: "Net platform earnings", Trend: "up"},
			{Title: "Active Techs", Value: strconv.FormatInt(activeTechs, 10), Description: "Verified & Online", Trend: "up"},
		},
		RegistryCounts: []dto.RegistryCount{
			{Title: "Profiles", Count: profilesCount, Href: "/profiles"},
			{Title: "Technicians", Count: techniciansCount, Href: "/technicians"},
			{Title: "Categories", Count: categoriesCount, Href: "/categories"},
			{Title: "Cities", Count: citiesCount, Href: "/cities"},
			{Title: "Referrals", Count: referralsCount, Href: "/referrals"},
			{Title: "Wallets", Count: walletsCount, Href: "/wallets"},
		},
		RecentBookings: recent,
		ChartData:      uc.chartData(bookings),
	}, nil
}

// ======================================================
// RECENT BOOKINGS
// ======================================================

func (uc *GetSummary) enrichRecent(
	ctx context.Context,
	bookings []models.Booking,
) ([]dto.RecentBooking, error) {

	sample := bookings
	if len(sample) > recentBookings {
		sample = sample[:recentBookings]
	}

	if len(sample) == 0 {
		return []dto.RecentBooking{}, nil
	}

	categoryIDs := uniqueIDs(sample, func(b models.Booking) *string { return b.CategoryID })
	technicianIDs := uniqueIDs(sample, func(b models.Booking) *string { return b.TechnicianID })

	var (
		categoryNames   map[string]string
		technicianNames map[string]string
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		categoryNames, err = uc.repo.CategoryNames(ctx, categoryIDs)
		return err
	})
	g.Go(func() (err error) {
		technicianNames, err = uc.repo.TechnicianNames(ctx, technicianIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	loc := timezone.Location(timezone.DefaultTimezone)

	out := make([]dto.RecentBooking, 0, len(sample))
	for _, b := range sample {
		amount := b.FinalAmountToBePaid
		if amount == 0 {
			amount = b.TotalEstimatedPrice
		}

		out = append(out, dto.RecentBooking{
			ID:         b.ID,
			Customer:   orPlaceholder(b.UserName, PlaceholderCustomer),
			Category:   lookupName(categoryNames, b.CategoryID, PlaceholderCategory),
			Technician: lookupName(technicianNames, b.TechnicianID, PlaceholderTechnician),
			Amount:     "₹" + strconv.FormatFloat(amount, 'f', -1, 64),
			Status:     b.Status,
			Date:       format.ShortDate(b.CreatedAt, loc),
		})
	}

	return out, nil
}

// ======================================================
// 7-DAY CHART
// ======================================================

// chartData builds the trailing 7-day series by scanning the full
// booking set per day and matching the RFC 3339 creation timestamp by
// string prefix against the calendar date. The prefix match (rather
// than a date-range comparison) is load-bearing for callers that rely
// on its exact boundary semantics, so it stays.
func (uc *GetSummary) chartData(bookings []models.Booking) []dto.ChartPoint {

	today := uc.now().UTC()

	points := make([]dto.ChartPoint, 0, chartDays)
	for i := chartDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		prefix := day.Format("2006-01-02")

		count := 0
		revenue := 0.0
		for _, b := range bookings {
			if matchesDay(b.CreatedAt, prefix) {
				count++
				revenue += b.FinalAmountPaid
			}
		}

		points = append(points, dto.ChartPoint{
			Name:     day.Format("Mon"),
			Bookings: count,
			Revenue:  revenue,
		})
	}

	return points
}

func matchesDay(createdAt time.Time, datePrefix string) bool {
	if createdAt.IsZero() {
		return false
	}
	ts := createdAt.UTC().Format(time.RFC3339)
	return len(ts) >= len(datePrefix) && ts[:len(datePrefix)] == datePrefix
}

// ======================================================
// FALLBACK
// ======================================================

// FallbackView is the zeroed, structurally complete response served
// when aggregation fails.
func FallbackView() dto.DashboardView {
	return dto.DashboardView{
		Stats: []dto.StatCard{
			{Title: "Total Bookings", Value: "0", Description: "Fetch failed", Trend: "neutral"},
			{Title: "Total Revenue", Value: "₹0", Description: "Fetch failed", Trend: "neutral"},
			{Title: "Platform Comm.", Value: "₹0", Description: "Fetch failed", Trend: "neutral"},
			{Title: "Active Techs", Value: "0", Description: "Fetch failed", Trend: "neutral"},
		},
		RegistryCounts: []dto.RegistryCount{
			{Title: "Profiles", Count: 0, Href: "/profiles"},
			{Title: "Technicians", Count: 0, Href: "/technicians"},
			{Title: "Categories", Count: 0, Href: "/categories"},
			{Title: "Cities", Count: 0, Href: "/cities"},
			{Title: "Referrals", Count: 0, Href: "/referrals"},
			{Title: "Wallets", Count: 0, Href: "/wallets"},
		},
		RecentBookings: []dto.RecentBooking{},
		ChartData:      []dto.ChartPoint{},
	}
}

// ======================================================
// HELPERS
// ======================================================

func uniqueIDs(
	bookings []models.Booking,
	key func(models.Booking) *string,
) []string {

	seen := make(map[string]struct{})
	out := make([]string, 0, len(bookings))

	for _, b := range bookings {
		id := key(b)
		if id == nil || *id == "" {
			continue
		}
		if _, ok := seen[*id]; ok {
			continue
		}
		seen[*id] = struct{}{}
		out = append(out, *id)
	}

	return out
}

func lookupName(names map[string]string, id *string, placeholder string) string {
	if id == nil || *id == "" {
		return placeholder
	}
	if name, ok := names[*id]; ok && name != "" {
		return name
	}
	return placeholder
}

func orPlaceholder(v, placeholder string) string {
	if v == "" {
		return placeholder
	}
	return v
}
