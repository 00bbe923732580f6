package queries

import (
	"context"

	"serados/internal/core/domain/model/order"
	"serados/internal/core/ports"
)

// GetOrderQueryHandler retrieves single orders from the order store.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle executes the lookup. Returns an ObjectNotFoundError when no order
// matches the reference.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.GetByRef(ctx, query.OrderRef())
}
