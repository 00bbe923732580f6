package commands

import (
	"context"
	"log/slog"
	"time"

	"serados/internal/core/domain/model/kernel"
	"serados/internal/core/domain/model/order"
)

// SubmitOrderCommandHandler handles the business logic for order submission.
// Generates the order identifier, creates the aggregate in Received status
// and persists it transactionally.
//
// Example:
//
//	handler := NewSubmitOrderCommandHandler(uowFactory)
//	cmd, _ := NewSubmitOrderCommand("Ram", "98...", "Pokhara", "Main St",
//	    "15", items, 440)
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order submission failed: %w", err)
//	}
//	fmt.Printf("Order %s received", orderID)
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewSubmitOrderCommandHandler creates a handler for order submissions.
// Requires an OrderUoWFactory for transactional persistence.
func NewSubmitOrderCommandHandler(uowFactory OrderUoWFactory) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the order submission command.
// Creates the order with a fresh identifier, Received status and the order
// date set to now, then persists it. Uses a transaction so the order is
// either durably committed or not visible at all.
//
// Returns the generated order identifier on success.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (kernel.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.OrderID{}, err
	}

	orderDate := h.now()
	orderID := kernel.NewOrderID(orderDate)

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, line := range cmd.Items() {
		item, err := order.NewItem(line.ID, line.Name, line.Price, line.Quantity)
		if err != nil {
			return kernel.OrderID{}, err
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(
		orderID,
		cmd.Name(), cmd.Phone(), cmd.City(), cmd.Address(),
		cmd.ResolvedPickupTime(),
		items,
		orderDate,
	)
	if err != nil {
		return kernel.OrderID{}, err
	}

	// The stored amount is always the recomputed one; a disagreeing client
	// total is worth a trace when reconciling orders.
	if cmd.Total() != newOrder.TotalAmount() {
		slog.WarnContext(ctx, "Client-supplied total does not match computed total",
			"order_id", orderID.String(),
			"client_total", cmd.Total(),
			"computed_total", newOrder.TotalAmount(),
		)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return kernel.OrderID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.OrderID{}, err
	}

	return orderID, nil
}
