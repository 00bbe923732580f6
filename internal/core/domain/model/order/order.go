package order

import (
	"errors"
	"time"

	"serados/internal/core/domain/model/kernel"
	"serados/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// StatusChange is one entry of an order's transition history: the status that
// was entered and when. The history always starts with the Received entry
// written at creation time, so the tracking timeline can show real timestamps
// for every stage the order has actually passed through.
type StatusChange struct {
	Status    Status
	Timestamp time.Time
}

// Order represents a café order: the submitted cart plus fulfillment metadata
// and status. It is the aggregate root of the ordering domain.
//
// Order follows these invariants:
//   - Must have a valid OrderID, unique across the store
//   - Customer name, phone, city, address and pickup time must not be empty
//   - Must contain at least one item
//   - Total amount equals the sum of price times quantity over the items
//     and is never negative
//   - Status is always one of the four enumerated values, starting at Received
//   - Order date is set once at creation and never changes
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// seq is the store-assigned numeric identifier (1-based insertion
	// sequence). It is 0 until the order has been persisted.
	seq int

	// id is the customer-facing order identifier ("SER<digits>")
	id kernel.OrderID

	customerName string
	phone        string
	city         string
	address      string
	pickupTime   string

	// items is the ordered cart; never empty for a constructed order
	items []Item

	// totalAmount is recomputed from items at creation, not taken from
	// the client
	totalAmount float64

	// status is the current fulfillment state
	status Status

	// orderDate is set once at creation, immutable
	orderDate time.Time

	// history records every status the order has entered, in order
	history []StatusChange

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order from a validated submission. This is the only
// way to create an order that has not been persisted yet.
//
// The order starts in Received status with its order date set to orderDate
// and a single history entry recording the Received transition. The total
// amount is computed from the items; a client-supplied total is deliberately
// not trusted.
//
// Returns a validation error if any field is empty, the items list is empty,
// or any item was not built through NewItem.
func NewOrder(
	id kernel.OrderID,
	customerName, phone, city, address, pickupTime string,
	items []Item,
	orderDate time.Time,
) (*Order, error) {
	o := &Order{
		status:        Received,
		orderDate:     orderDate,
		history:       []StatusChange{{Status: Received, Timestamp: orderDate}},
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setPhone(phone),
		o.setCity(city),
		o.setAddress(address),
		o.setPickupTime(pickupTime),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.totalAmount = sumItems(o.items)
	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts the stored total amount and status history verbatim, since the
// store is the system of record for already-committed orders.
//
// Returns an error if the stored data violates a structural invariant, which
// would indicate a corrupted record.
func RestoreOrder(
	seq int,
	id kernel.OrderID,
	customerName, phone, city, address, pickupTime string,
	items []Item,
	totalAmount float64,
	status Status,
	orderDate time.Time,
	history []StatusChange,
) (*Order, error) {
	o := &Order{
		seq:           seq,
		orderDate:     orderDate,
		history:       append([]StatusChange(nil), history...),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setPhone(phone),
		o.setCity(city),
		o.setAddress(address),
		o.setPickupTime(pickupTime),
		o.setItems(items),
		o.setStatus(status),
		o.setTotalAmount(totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their order identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// Seq returns the store-assigned numeric identifier, or 0 if the order has
// not been persisted yet.
func (o *Order) Seq() int {
	return o.seq
}

// AssignSeq records the store-assigned numeric identifier. It may only be
// called once, by the store that persists the order.
func (o *Order) AssignSeq(seq int) error {
	if o.seq != 0 {
		return errs.NewValueIsInvalidError("order sequence already assigned")
	}
	if seq <= 0 {
		return errs.NewValueIsInvalidError("order sequence")
	}
	o.seq = seq
	return nil
}

// ID returns the customer-facing order identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerName returns the name supplied at submission.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Phone returns the contact phone number.
func (o *Order) Phone() string {
	return o.phone
}

// City returns the customer's city.
func (o *Order) City() string {
	return o.city
}

// Address returns the pickup/contact address.
func (o *Order) Address() string {
	return o.address
}

// PickupTime returns the requested pickup time, either a resolved relative
// offset such as "15 minutes" or a free-form custom string.
func (o *Order) PickupTime() string {
	return o.pickupTime
}

// Items returns a copy of the ordered cart lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// TotalAmount returns the order total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current fulfillment status.
func (o *Order) Status() Status {
	return o.status
}

// OrderDate returns the creation timestamp.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// History returns a copy of the status transition history, oldest first.
func (o *Order) History() []StatusChange {
	return append([]StatusChange(nil), o.history...)
}

// ChangeStatus moves the order to newStatus and records the transition in the
// history with the given timestamp.
//
// Any of the four enumerated statuses is accepted regardless of the current
// one; staff can move an order backwards to correct a mistaken advance.
// Values outside the enumerated set are rejected with an InvalidStatusError
// and leave the order unchanged. Setting the current status again is a no-op
// and does not grow the history, so repeating an update is idempotent.
func (o *Order) ChangeStatus(newStatus Status, at time.Time) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if newStatus == o.status {
		return nil
	}

	o.status = newStatus
	o.history = append(o.history, StatusChange{Status: newStatus, Timestamp: at})
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	o.phone = phone
	return nil
}

func (o *Order) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	o.city = city
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setPickupTime(pickupTime string) error {
	if pickupTime == "" {
		return errs.NewValueIsRequiredError("pickup time")
	}
	o.pickupTime = pickupTime
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append([]Item(nil), items...)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTotalAmount(totalAmount float64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidError("total amount")
	}
	o.totalAmount = totalAmount
	return nil
}

func sumItems(items []Item) float64 {
	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}
