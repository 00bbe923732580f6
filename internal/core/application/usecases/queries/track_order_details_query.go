package queries

import (
	"errors"
	"strings"

	"serados/internal/core/domain/model/order"
	"serados/internal/pkg/errs"
	"serados/internal/pkg/guard"
)

var (
	ErrTrackOrderDetailsQueryIsNotConstructed = errors.New(
		"TrackOrderDetailsQuery must be created via NewTrackOrderDetailsQuery constructor",
	)
)

// TrackOrderDetailsQuery retrieves the full order plus its derived tracking
// timeline by order identifier.
type TrackOrderDetailsQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// TrackOrderDetailsResponse carries the full order together with the derived
// four-stage timeline.
type TrackOrderDetailsResponse struct {
	Order    *order.Order
	Timeline []order.TimelineStage
}

// NewTrackOrderDetailsQuery creates a detailed tracking query.
// Validates that the order identifier is not empty.
func NewTrackOrderDetailsQuery(orderID string) (TrackOrderDetailsQuery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return TrackOrderDetailsQuery{}, errs.NewValueIsRequiredError("orderId")
	}

	return TrackOrderDetailsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderDetailsQueryIsNotConstructed)
}

// OrderID returns the order identifier being tracked.
func (q TrackOrderDetailsQuery) OrderID() string {
	return q.orderID
}
