// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: validation, transaction
// management, and persistence. Validation failures are raised here, at the
// engine boundary, and never reach the store.
package commands

import (
	"context"

	"serados/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles store transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions over the order store.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)

// NewOrderUoWFactory adapts a store-level unit of work factory to the
// command-side factory interface. Any ports.UnitOfWork satisfies OrderUoW.
func NewOrderUoWFactory(inner ports.UnitOfWorkFactory) OrderUoWFactory {
	return portsUoWFactory{inner: inner}
}

type portsUoWFactory struct {
	inner ports.UnitOfWorkFactory
}

func (f portsUoWFactory) Create() OrderUoW {
	return f.inner.Create()
}
