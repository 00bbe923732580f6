package kernel

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"serados/internal/pkg/errs"
)

// orderIDPrefix is the customer-facing prefix every order identifier carries.
const orderIDPrefix = "SER"

// ErrOrderIDIsNotConstructed indicates that an OrderID was not properly initialized
// through one of the constructor functions. This error is returned when validating
// a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString")

// orderIDSeq disambiguates identifiers generated within the same millisecond.
// Two concurrent submissions must never receive the same OrderID.
var orderIDSeq atomic.Uint64

// OrderID is a value object that represents the customer-facing order identifier.
// Identifiers have the form "SER<digits>": the prefix followed by the creation
// time in Unix milliseconds and a three-digit sequence that keeps concurrent
// generations distinct.
//
// The zero value of OrderID is invalid and must be constructed using one of the
// provided factory functions: NewOrderID or OrderIDFromString.
//
// OrderID is immutable and safe for concurrent use.
//
// Example usage:
//
//	// Generate a fresh identifier at submission time
//	id := kernel.NewOrderID(time.Now())
//
//	// Reconstruct from its string representation
//	id, err := kernel.OrderIDFromString("SER1700000000000042")
//	if err != nil {
//	    // handle error
//	}
type OrderID struct {
	value string
}

// NewOrderID generates a new order identifier for the given creation time.
// The identifier embeds the creation time in Unix milliseconds plus a
// process-wide sequence suffix, so identifiers generated concurrently are
// guaranteed to be distinct.
func NewOrderID(now time.Time) OrderID {
	seq := orderIDSeq.Add(1) % 1000
	return OrderID{
		value: fmt.Sprintf("%s%d%03d", orderIDPrefix, now.UnixMilli(), seq),
	}
}

// OrderIDFromString parses an order identifier from its string representation.
// The value must start with the "SER" prefix followed by at least one digit.
// This function is typically used when reconstructing orders from persistence
// or when resolving identifiers supplied by clients.
func OrderIDFromString(s string) (OrderID, error) {
	if s == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderId")
	}

	digits, ok := strings.CutPrefix(s, orderIDPrefix)
	if !ok || digits == "" {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%q does not have the %s<digits> form", s, orderIDPrefix))
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
				fmt.Errorf("%q does not have the %s<digits> form", s, orderIDPrefix))
		}
	}

	return OrderID{value: s}, nil
}

// Validate ensures the OrderID was created through a constructor.
// Returns ErrOrderIDIsNotConstructed for a zero-value OrderID.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// String returns the customer-facing representation, e.g. "SER1700000000000042".
// It implements the fmt.Stringer interface.
func (id OrderID) String() string {
	return id.value
}
