package commands

import (
	"errors"
	"strings"

	"serados/internal/core/domain/model/order"
	"serados/internal/pkg/errs"
	"serados/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents an admin's request to move an order to
// a new fulfillment status.
//
// The status value is checked against the enumerated set at construction, so
// a value like "flying" is rejected with an InvalidStatusError before any
// store access happens. The order reference accepts either the
// customer-facing identifier or the numeric sequence.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderRef string
	status   order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// Validates that the order reference is not empty and the status is one of
// received, preparing, ready, completed.
func NewUpdateOrderStatusCommand(orderRef, status string) (UpdateOrderStatusCommand, error) {
	orderRef = strings.TrimSpace(orderRef)
	if orderRef == "" {
		return UpdateOrderStatusCommand{}, errs.NewValueIsRequiredError("order reference")
	}

	parsed, err := order.StatusFromString(status)
	if err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderRef: orderRef,
		status:   parsed,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderStatusCommandIsNotConstructed if validation fails.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderRef returns the order reference (order identifier or numeric sequence).
func (c UpdateOrderStatusCommand) OrderRef() string {
	return c.orderRef
}

// Status returns the parsed target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}
