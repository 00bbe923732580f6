package commands

import (
	"context"
	"time"

	"serados/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler handles the business logic for status
// updates. The read-modify-write runs inside a single unit of work so
// concurrent updates to the same order are not lost.
//
// Example:
//
//	handler := NewUpdateOrderStatusCommandHandler(uowFactory)
//	cmd, _ := NewUpdateOrderStatusCommand("SER123", "preparing")
//
//	updated, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // 404 when unknown, 400 when status invalid
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewUpdateOrderStatusCommandHandler creates a handler for status update
// operations. Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the status update command.
// Loads the order, applies the status change with the transition recorded in
// the order's history, and persists the result in the same transaction.
// Returns the updated order.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.GetByRef(ctx, cmd.OrderRef())
	if err != nil {
		return nil, err
	}

	if err = aggregate.ChangeStatus(cmd.Status(), h.now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
