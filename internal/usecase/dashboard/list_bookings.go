package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	domain "github.com/hellofixo/fixit-admin/internal/domain/dashboard"
	"github.com/hellofixo/fixit-admin/internal/dto"
	"github.com/hellofixo/fixit-admin/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute returns one page of bookings, most recent first, enriched
// with the category/issue/technician display names resolved from the
// unique foreign keys of this page only. Unlike the dashboard summary
// there is no fallback here: a store failure is the caller's error.
func (uc *ListBookings) Execute(
	ctx context.Context,
	page int,
	limit int,
) (dto.Page[dto.BookingListItem], error) {

	page, limit, offset := NormalizePage(page, limit)

	bookings, total, err := uc.repo.ListBookingsPage(ctx, offset, limit)
	if err != nil {
		return dto.Page[dto.BookingListItem]{}, err
	}

	items, err := uc.enrich(ctx, bookings)
	if err != nil {
		return dto.Page[dto.BookingListItem]{}, err
	}

	return dto.Page[dto.BookingListItem]{
		Data:  items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (uc *ListBookings) enrich(
	ctx context.Context,
	bookings []models.Booking,
) ([]dto.BookingListItem, error) {

	if len(bookings) == 0 {
		return []dto.BookingListItem{}, nil
	}

	categoryIDs := uniqueIDs(bookings, func(b models.Booking) *string { return b.CategoryID })
	issueIDs := uniqueIDs(bookings, func(b models.Booking) *string { return b.IssueID })
	technicianIDs := uniqueIDs(bookings, func(b models.Booking) *string { return b.TechnicianID })

	var (
		categoryNames   map[string]string
		issueNames      map[string]string
		technicianNames map[string]string
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		categoryNames, err = uc.repo.CategoryNames(ctx, categoryIDs)
		return err
	})
	g.Go(func() (err error) {
		issueNames, err = uc.repo.IssueNames(ctx, issueIDs)
		return err
	})
	g.Go(func() (err error) {
		technicianNames, err = uc.repo.TechnicianNames(ctx, technicianIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]dto.BookingListItem, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, dto.BookingListItem{
			Booking:        b,
			CategoryName:   lookupName(categoryNames, b.CategoryID, PlaceholderCategory),
			IssueName:      lookupName(issueNames, b.IssueID, PlaceholderIssue),
			TechnicianName: lookupName(technicianNames, b.TechnicianID, PlaceholderTechnician),
		})
	}

	return items, nil
}
