package queries

import (
	"context"

	"serados/internal/core/ports"
)

// TrackOrderDetailsQueryHandler serves the customer tracking page's detailed
// view: the full order plus the derived four-stage timeline.
type TrackOrderDetailsQueryHandler struct {
	orders ports.OrderRepository
}

// NewTrackOrderDetailsQueryHandler creates a handler for detailed tracking
// lookups.
func NewTrackOrderDetailsQueryHandler(orders ports.OrderRepository) TrackOrderDetailsQueryHandler {
	return TrackOrderDetailsQueryHandler{orders: orders}
}

// Handle executes the lookup and derives the timeline from the order's
// status and transition history. Returns an ObjectNotFoundError when the
// order does not exist.
func (h TrackOrderDetailsQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderDetailsQuery,
) (TrackOrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderDetailsResponse{}, err
	}

	aggregate, err := h.orders.GetByRef(ctx, query.OrderID())
	if err != nil {
		return TrackOrderDetailsResponse{}, err
	}

	return TrackOrderDetailsResponse{
		Order:    aggregate,
		Timeline: aggregate.Timeline(),
	}, nil
}
