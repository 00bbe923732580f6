package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"serados/internal/pkg/errs"
	"serados/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
)

// SubmitOrderItem is one cart line as supplied by the client.
type SubmitOrderItem struct {
	ID       int
	Name     string
	Price    float64
	Quantity int
}

// SubmitOrderCommand represents a customer's order submission: the contact
// details, pickup time and cart from the ordering page.
//
// Construction validates every required field and returns a single
// ValidationError enumerating all missing or invalid fields, so the client
// can surface them together. No partial order ever reaches the store on a
// validation failure, because an invalid command cannot be constructed.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand("Ram", "9812345678", "Pokhara",
//	    "Main St", "15", items, 440)
//	if err != nil {
//	    return err // 400 with the failing fields
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	name       string
	phone      string
	city       string
	address    string
	pickupTime string
	items      []SubmitOrderItem
	total      float64

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a validated order submission command.
//
// Required: non-blank name, phone, city and address; a resolvable pickup
// time (a relative-minutes token such as "15", or any non-blank custom
// string); a non-empty items list where every line has a positive menu item
// id, a name, a non-negative price and a quantity of at least 1.
//
// The client-supplied total is carried for reference but the order total is
// recomputed from the items by the handler.
func NewSubmitOrderCommand(
	name, phone, city, address, pickupTime string,
	items []SubmitOrderItem,
	total float64,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		name:       strings.TrimSpace(name),
		phone:      strings.TrimSpace(phone),
		city:       strings.TrimSpace(city),
		address:    strings.TrimSpace(address),
		pickupTime: strings.TrimSpace(pickupTime),
		items:      append([]SubmitOrderItem(nil), items...),
		total:      total,
		guard:      guard.NewConstructorGuard(),
	}

	var fields []string
	if cmd.name == "" {
		fields = append(fields, "name")
	}
	if cmd.phone == "" {
		fields = append(fields, "phone")
	}
	if cmd.city == "" {
		fields = append(fields, "city")
	}
	if cmd.address == "" {
		fields = append(fields, "location")
	}
	if cmd.pickupTime == "" {
		fields = append(fields, "pickupTime")
	}
	if !validItems(cmd.items) {
		fields = append(fields, "items")
	}

	if len(fields) > 0 {
		return SubmitOrderCommand{}, errs.NewValidationError(fields...)
	}

	return cmd, nil
}

func validItems(items []SubmitOrderItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if item.ID < 1 || strings.TrimSpace(item.Name) == "" || item.Price < 0 || item.Quantity < 1 {
			return false
		}
	}
	return true
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// Name returns the customer name.
func (c SubmitOrderCommand) Name() string {
	return c.name
}

// Phone returns the contact phone number.
func (c SubmitOrderCommand) Phone() string {
	return c.phone
}

// City returns the customer's city.
func (c SubmitOrderCommand) City() string {
	return c.city
}

// Address returns the pickup/contact address.
func (c SubmitOrderCommand) Address() string {
	return c.address
}

// PickupTime returns the pickup time exactly as submitted.
func (c SubmitOrderCommand) PickupTime() string {
	return c.pickupTime
}

// ResolvedPickupTime returns the pickup time in its stored form: a bare
// relative-minutes token such as "15" resolves to "15 minutes", anything
// else passes through as a custom time string.
func (c SubmitOrderCommand) ResolvedPickupTime() string {
	if minutes, err := strconv.Atoi(c.pickupTime); err == nil && minutes > 0 {
		return fmt.Sprintf("%d minutes", minutes)
	}
	return c.pickupTime
}

// Items returns the submitted cart lines.
func (c SubmitOrderCommand) Items() []SubmitOrderItem {
	return append([]SubmitOrderItem(nil), c.items...)
}

// Total returns the client-supplied total. The stored amount is recomputed
// from the items; the handler logs when the two disagree.
func (c SubmitOrderCommand) Total() float64 {
	return c.total
}
