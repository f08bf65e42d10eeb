package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/hellofixo/fixit-admin/internal/domain/dashboard"
	"github.com/hellofixo/fixit-admin/internal/models"
)

type DashboardGormRepository struct {
	db *gorm.DB
}

func NewDashboardGormRepository(db *gorm.DB) *DashboardGormRepository {
	return &DashboardGormRepository{db: db}
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *DashboardGormRepository) ListAllBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *DashboardGormRepository) ListBookingsPage(
	ctx context.Context,
	offset int,
	limit int,
) ([]models.Booking, int64, error) {

	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// --------------------------------------------------
// Counts
// --------------------------------------------------

func (r *DashboardGormRepository) CountActiveTechnicians(
	ctx context.Context,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Technician{}).
		Where("is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DashboardGormRepository) CountRows(
	ctx context.Context,
	table string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Table(table).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Earnings
// --------------------------------------------------

func (r *DashboardGormRepository) ListCommissionAmounts(
	ctx context.Context,
) ([]float64, error) {

	var amounts []float64
	if err := r.db.WithContext(ctx).
		Model(&models.PlatformEarning{}).
		Pluck("commission_amount", &amounts).Error; err != nil {
		return nil, err
	}
	return amounts, nil
}

// --------------------------------------------------
// Enrichment lookups
// --------------------------------------------------

func (r *DashboardGormRepository) CategoryNames(
	ctx context.Context,
	ids []string,
) (map[string]string, error) {

	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Select("id", "name").
		Where("id IN ?", ids).
		Find(&categories).Error; err != nil {
		return nil, err
	}

	names := make(map[string]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}
	return names, nil
}

func (r *DashboardGormRepository) IssueNames(
	ctx context.Context,
	ids []string,
) (map[string]string, error) {

	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	var issues []models.Issue
	if err := r.db.WithContext(ctx).
		Select("id", "title").
		Where("id IN ?", ids).
		Find(&issues).Error; err != nil {
		return nil, err
	}

	names := make(map[string]string, len(issues))
	for _, issue := range issues {
		names[issue.ID] = issue.Title
	}
	return names, nil
}

func (r *DashboardGormRepository) TechnicianNames(
	ctx context.Context,
	ids []string,
) (map[string]string, error) {

	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	var techs []models.Technician
	if err := r.db.WithContext(ctx).
		Select("id", "full_name").
		Where("id IN ?", ids).
		Find(&techs).Error; err != nil {
		return nil, err
	}

	names := make(map[string]string, len(techs))
	for _, tech := range techs {
		names[tech.ID] = tech.FullName
	}
	return names, nil
}

// Compile-time check
var _ domain.Repository = (*DashboardGormRepository)(nil)
