package store

import "context"

// Filter matches rows by column equality, the only predicate the
// admin panel ever needs against the marketplace tables.
type Filter map[string]any

type ListParams struct {
	Filter  Filter
	OrderBy string
	Desc    bool

	// Offset/Limit select one page; Limit <= 0 fetches everything.
	Offset int
	Limit  int

	// Count requests the exact total row count across all pages.
	Count bool
}

// Store is the tabular data service the dashboard reads and writes
// through. It is constructor-injected everywhere so handlers and use
// cases can be exercised against a fake in tests.
type Store interface {
	// List fills dest (a *[]Model) with the selected page and, when
	// p.Count is set, returns the exact total count for the filter.
	List(ctx context.Context, table string, dest any, p ListParams) (int64, error)

	GetByID(ctx context.Context, table string, id string, dest any) error

	Insert(ctx context.Context, table string, rows any) error

	Update(ctx context.Context, table string, patch map[string]any, f Filter) error

	Delete(ctx context.Context, table string, f Filter) error
}
