package queries

import (
	"context"

	"serados/internal/core/ports"
)

// GetDailyRevenueQueryHandler computes per-day revenue rollups.
type GetDailyRevenueQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetDailyRevenueQueryHandler creates a handler for daily revenue queries.
func NewGetDailyRevenueQueryHandler(orders ports.OrderRepository) GetDailyRevenueQueryHandler {
	return GetDailyRevenueQueryHandler{orders: orders}
}

// Handle executes the rollup, newest day first.
func (h GetDailyRevenueQueryHandler) Handle(
	ctx context.Context,
	query GetDailyRevenueQuery,
) ([]ports.DailyRevenue, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.DailyRevenue(ctx, query.Limit())
}
