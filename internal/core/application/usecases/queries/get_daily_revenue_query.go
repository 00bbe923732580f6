package queries

import (
	"errors"

	"serados/internal/pkg/guard"
)

var (
	ErrGetDailyRevenueQueryIsNotConstructed = errors.New(
		"GetDailyRevenueQuery must be created via NewGetDailyRevenueQuery constructor",
	)
)

// DefaultDailyRevenueLimit caps the per-day revenue rollup at the most
// recent 30 days.
const DefaultDailyRevenueLimit = 30

// GetDailyRevenueQuery retrieves per-day revenue rollups, newest day first.
type GetDailyRevenueQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetDailyRevenueQuery creates a daily revenue query. A non-positive
// limit falls back to DefaultDailyRevenueLimit.
func NewGetDailyRevenueQuery(limit int) GetDailyRevenueQuery {
	if limit <= 0 {
		limit = DefaultDailyRevenueLimit
	}

	return GetDailyRevenueQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetDailyRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyRevenueQueryIsNotConstructed)
}

// Limit returns the maximum number of days to return.
func (q GetDailyRevenueQuery) Limit() int {
	return q.limit
}
