package order

import (
	"errors"
	"fmt"

	"serados/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a value object representing one line of a submitted cart:
// a menu item reference with the price and quantity it was ordered at.
//
// Item follows these invariants:
//   - Name must not be empty
//   - Price must not be negative
//   - Quantity must be at least 1
type Item struct {
	menuItemID int
	name       string
	price      float64
	quantity   int

	isConstructed bool
}

// NewItem creates a validated order line.
//
// Parameters:
//   - menuItemID: identifier of the menu item the line refers to
//   - name: display name captured at order time
//   - price: unit price captured at order time (must not be negative)
//   - quantity: number of units (must be at least 1)
//
// Returns a validation error if any parameter is invalid.
func NewItem(menuItemID int, name string, price float64, quantity int) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// MenuItemID returns the identifier of the referenced menu item.
func (i Item) MenuItemID() int {
	return i.menuItemID
}

// Name returns the display name captured at order time.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price captured at order time.
func (i Item) Price() float64 {
	return i.price
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns price multiplied by quantity.
func (i Item) Subtotal() float64 {
	return i.price * float64(i.quantity)
}

func (i *Item) setMenuItemID(menuItemID int) error {
	if menuItemID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item id",
			fmt.Errorf("%d is not a positive identifier", menuItemID))
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item price",
			fmt.Errorf("%v is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	i.quantity = quantity
	return nil
}
