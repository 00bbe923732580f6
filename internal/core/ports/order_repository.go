package ports

import (
	"context"

	"serados/internal/core/domain/model/order"
)

// OrderStats is the aggregate rollup served to the admin dashboard.
// It is recomputed from the store on every call; there is no cached view.
type OrderStats struct {
	TotalOrders   int
	TotalRevenue  float64
	AvgOrderValue float64
	StatusCounts  map[string]int
	CityCounts    map[string]int
}

// DailyRevenue is one per-day rollup row, newest day first in result sets.
type DailyRevenue struct {
	// Day in "YYYY-MM-DD" form.
	Day     string
	Orders  int
	Revenue float64
}

// OrderRepository defines the persistence contract for order aggregates.
// Two implementations exist: a flat-file JSON store and a relational store.
// Callers depend only on this interface.
type OrderRepository interface {
	// Add persists a new order aggregate. The order's identifier must not
	// already exist in the store. On success the store-assigned numeric
	// sequence is set on the aggregate. The write is durable before Add
	// returns; any I/O failure surfaces as a StoreFailureError with no
	// partial write visible to subsequent reads.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate as an atomic
	// read-modify-write of that record. Returns an ObjectNotFoundError if
	// the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetByRef retrieves an order by reference: either the customer-facing
	// order identifier ("SER<digits>") or the numeric sequence, both
	// accepted in string form. Returns an ObjectNotFoundError if no order
	// matches.
	GetByRef(ctx context.Context, ref string) (*order.Order, error)

	// List retrieves up to limit orders, most recent first.
	List(ctx context.Context, limit int) ([]*order.Order, error)

	// Stats computes the aggregate order/revenue rollup over all orders.
	Stats(ctx context.Context) (OrderStats, error)

	// DailyRevenue computes per-day revenue rollups for up to limit most
	// recent days, newest first.
	DailyRevenue(ctx context.Context, limit int) ([]DailyRevenue, error)
}
