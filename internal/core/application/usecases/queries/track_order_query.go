package queries

import (
	"errors"
	"strings"
	"time"

	"serados/internal/pkg/errs"
	"serados/internal/pkg/guard"
)

var (
	ErrTrackOrderQueryIsNotConstructed = errors.New(
		"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
	)
)

// TrackOrderQuery retrieves the customer-facing status summary of an order
// by its order identifier.
type TrackOrderQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

// TrackOrderResponse is the customer-facing status summary: the current
// status, its fixed human-readable text, and the order date.
type TrackOrderResponse struct {
	OrderID    string
	Status     string
	StatusText string
	OrderDate  time.Time
}

// NewTrackOrderQuery creates a tracking query.
// Validates that the order identifier is not empty.
func NewTrackOrderQuery(orderID string) (TrackOrderQuery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return TrackOrderQuery{}, errs.NewValueIsRequiredError("orderId")
	}

	return TrackOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// OrderID returns the order identifier being tracked.
func (q TrackOrderQuery) OrderID() string {
	return q.orderID
}
