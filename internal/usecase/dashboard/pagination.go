package dashboard

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// NormalizePage clamps caller-supplied pagination to sane values and
// returns the zero-based offset: (page-1) * limit.
func NormalizePage(page, limit int) (int, int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return page, limit, (page - 1) * limit
}
