package queries

import (
	"context"

	"serados/internal/core/ports"
)

// GetOrderStatsQueryHandler computes aggregate statistics over all orders.
// The rollup is recomputed from the store on every call; there is no cached
// materialized view, so the result always reflects current store state.
type GetOrderStatsQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderStatsQueryHandler creates a handler for statistics queries.
func NewGetOrderStatsQueryHandler(orders ports.OrderRepository) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{orders: orders}
}

// Handle executes the aggregation.
func (h GetOrderStatsQueryHandler) Handle(ctx context.Context, query GetOrderStatsQuery) (ports.OrderStats, error) {
	if err := query.Validate(); err != nil {
		return ports.OrderStats{}, err
	}

	return h.orders.Stats(ctx)
}
