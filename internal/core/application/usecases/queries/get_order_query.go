package queries

import (
	"errors"
	"strings"

	"serados/internal/pkg/errs"
	"serados/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order by reference: either the
// customer-facing order identifier or the numeric sequence, in string form.
type GetOrderQuery struct {
	orderRef string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
// Validates that the reference is not empty.
func NewGetOrderQuery(orderRef string) (GetOrderQuery, error) {
	orderRef = strings.TrimSpace(orderRef)
	if orderRef == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("order reference")
	}

	return GetOrderQuery{
		orderRef: orderRef,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderRef returns the order reference.
func (q GetOrderQuery) OrderRef() string {
	return q.orderRef
}
