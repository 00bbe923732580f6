// Package order contains the order aggregate and its satellite value objects:
// the fulfillment Status enumeration, line Items, the status transition history,
// and the derived tracking Timeline.
//
// An Order is a customer's submitted cart plus fulfillment metadata. It is
// created through NewOrder at submission time, restored from persistence
// through RestoreOrder, and mutated only by ChangeStatus.
package order
