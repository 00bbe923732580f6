package queries

import (
	"errors"

	"serados/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// DefaultListLimit caps the admin order listing, matching the "latest 50"
// behavior of the admin view.
const DefaultListLimit = 50

// ListOrdersQuery retrieves the most recent orders for the admin view,
// newest first.
type ListOrdersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query. A non-positive limit falls
// back to DefaultListLimit.
func NewListOrdersQuery(limit int) ListOrdersQuery {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	return ListOrdersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Limit returns the maximum number of orders to return.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}
