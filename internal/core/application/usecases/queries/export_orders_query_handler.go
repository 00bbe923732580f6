package queries

import (
	"context"

	"serados/internal/core/domain/model/order"
	"serados/internal/core/ports"
)

// ExportOrdersQueryHandler retrieves the full order book for export.
type ExportOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewExportOrdersQueryHandler creates a handler for order exports.
func NewExportOrdersQueryHandler(orders ports.OrderRepository) ExportOrdersQueryHandler {
	return ExportOrdersQueryHandler{orders: orders}
}

// Handle returns every order in the store, oldest first, matching the
// insertion order of the book.
func (h ExportOrdersQueryHandler) Handle(ctx context.Context, query ExportOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.orders.List(ctx, 0)
	if err != nil {
		return nil, err
	}

	// List returns newest first; the export reads chronologically.
	for i, j := 0, len(aggregates)-1; i < j; i, j = i+1, j-1 {
		aggregates[i], aggregates[j] = aggregates[j], aggregates[i]
	}

	return aggregates, nil
}
