package queries

import (
	"context"

	"serados/internal/core/ports"
)

// TrackOrderQueryHandler serves the customer tracking page's status lookup.
//
// Example:
//
//	handler := NewTrackOrderQueryHandler(orders)
//	query, _ := NewTrackOrderQuery("SER123")
//
//	summary, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err // 404 when the order does not exist
//	}
//	fmt.Println(summary.StatusText) // "Ready for pickup"
type TrackOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewTrackOrderQueryHandler creates a handler for status tracking lookups.
func NewTrackOrderQueryHandler(orders ports.OrderRepository) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{orders: orders}
}

// Handle executes the lookup and derives the fixed status text.
// Returns an ObjectNotFoundError when the order does not exist.
func (h TrackOrderQueryHandler) Handle(ctx context.Context, query TrackOrderQuery) (TrackOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderResponse{}, err
	}

	aggregate, err := h.orders.GetByRef(ctx, query.OrderID())
	if err != nil {
		return TrackOrderResponse{}, err
	}

	return TrackOrderResponse{
		OrderID:    aggregate.ID().String(),
		Status:     aggregate.Status().String(),
		StatusText: aggregate.Status().Text(),
		OrderDate:  aggregate.OrderDate(),
	}, nil
}
