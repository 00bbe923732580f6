package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the order store.
// It provides transaction control; client code must explicitly manage the
// transaction lifecycle. For the relational store this maps to a database
// transaction; for the flat-file store it maps to a single-writer critical
// section with an atomic whole-file rewrite on commit.
type UnitOfWork interface {
	// Begin starts a new store transaction.
	Begin(ctx context.Context) error

	// Commit durably commits the current transaction.
	// Returns error if no active transaction or the commit fails.
	Commit(ctx context.Context) error

	// Rollback discards the current transaction, leaving the store in its
	// prior consistent state.
	// Returns error if no active transaction or the rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction. Repository operations use the transaction started by
	// Begin().
	OrderRepository() OrderRepository
}
