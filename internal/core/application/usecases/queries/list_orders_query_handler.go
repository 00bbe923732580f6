package queries

import (
	"context"

	"serados/internal/core/domain/model/order"
	"serados/internal/core/ports"
)

// ListOrdersQueryHandler retrieves recent orders from the order store.
type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler for admin order listings.
func NewListOrdersQueryHandler(orders ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle executes the listing, most recent order first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.List(ctx, query.Limit())
}
