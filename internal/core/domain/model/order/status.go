package order

import (
	"fmt"

	"serados/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
// The four stages form a fixed sequence:
//
//	received ──> preparing ──> ready ──> completed
//
// The café staff drives transitions manually from the admin view. Any of the
// four enumerated values is accepted as a target state regardless of the
// current one; the enumeration is enforced but forward-only ordering is not,
// so staff can correct a mistaken advance. Values outside the set are
// rejected with an InvalidStatusError.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status assigned when an order is submitted.
	Received

	// Preparing indicates the kitchen has started working on the order.
	Preparing

	// Ready indicates the order is ready for pickup.
	Ready

	// Completed indicates the order was picked up. This is the terminal
	// stage of the sequence.
	Completed
)

// StageSequence returns the four fulfillment stages in their fixed order.
// The tracking timeline is derived from this sequence.
func StageSequence() []Status {
	return []Status{Received, Preparing, Ready, Completed}
}

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Received:  "received",
		Preparing: "preparing",
		Ready:     "ready",
		Completed: "completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:  "received",
		Preparing: "preparing",
		Ready:     "ready",
		Completed: "completed",
	}
}

// statusTexts is the fixed human-readable mapping shown to customers
// on the tracking page.
func statusTexts() map[Status]string {
	return map[Status]string{
		Received:  "Order received",
		Preparing: "Your order is being prepared",
		Ready:     "Ready for pickup",
		Completed: "Order completed",
	}
}

// StatusFromString parses a wire status value into a Status.
// Returns an InvalidStatusError for any value outside the enumerated set;
// the check is case-sensitive because the wire contract is lowercase.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewInvalidStatusError(s)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Received, Preparing, Ready, Completed.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewInvalidStatusErrorWithCause(s.String(),
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status: "received", "preparing",
// "ready" or "completed". Invalid values render as "unknown".
// It implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Text returns the fixed customer-facing description for the status,
// e.g. "Ready for pickup". Invalid values return an empty string.
func (s Status) Text() string {
	return statusTexts()[s]
}

// Index returns the position of the status within the fixed stage sequence,
// starting at 0 for Received. Invalid values return -1. The timeline uses
// this ordering to decide which stages are completed.
func (s Status) Index() int {
	for i, stage := range StageSequence() {
		if stage == s {
			return i
		}
	}
	return -1
}
