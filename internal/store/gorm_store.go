package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) List(
	ctx context.Context,
	table string,
	dest any,
	p ListParams,
) (int64, error) {

	q := s.db.WithContext(ctx).Table(table)

	for col, val := range p.Filter {
		q = q.Where(fmt.Sprintf("%s = ?", col), val)
	}

	var total int64
	if p.Count {
		if err := q.Count(&total).Error; err != nil {
			return 0, err
		}
	}

	if p.OrderBy != "" {
		dir := "ASC"
		if p.Desc {
			dir = "DESC"
		}
		q = q.Order(fmt.Sprintf("%s %s", p.OrderBy, dir))
	}

	if p.Limit > 0 {
		q = q.Offset(p.Offset).Limit(p.Limit)
	}

	if err := q.Find(dest).Error; err != nil {
		return 0, err
	}

	return total, nil
}

func (s *GormStore) GetByID(
	ctx context.Context,
	table string,
	id string,
	dest any,
) error {
	return s.db.WithContext(ctx).
		Table(table).
		Where("id = ?", id).
		First(dest).Error
}

func (s *GormStore) Insert(
	ctx context.Context,
	table string,
	rows any,
) error {
	return s.db.WithContext(ctx).Table(table).Create(rows).Error
}

func (s *GormStore) Update(
	ctx context.Context,
	table string,
	patch map[string]any,
	f Filter,
) error {

	q := s.db.WithContext(ctx).Table(table)
	for col, val := range f {
		q = q.Where(fmt.Sprintf("%s = ?", col), val)
	}

	return q.Updates(patch).Error
}

func (s *GormStore) Delete(
	ctx context.Context,
	table string,
	f Filter,
) error {

	q := s.db.WithContext(ctx).Table(table)
	for col, val := range f {
		q = q.Where(fmt.Sprintf("%s = ?", col), val)
	}

	return q.Delete(nil).Error
}

// Compile-time check
var _ Store = (*GormStore)(nil)
