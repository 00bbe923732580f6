package jsonfile

import (
	"context"
	"errors"

	"serados/internal/core/ports"
	"serados/internal/pkg/errs"
)

var (
	errNoActiveTx      = errors.New("no active transaction")
	errTxAlreadyActive = errors.New("transaction already active")
)

// UnitOfWork implements ports.UnitOfWork over the flat-file store.
//
// Begin takes the store mutex and loads the order book; repository operations
// stage changes against that in-memory copy; Commit rewrites the file
// atomically and releases the mutex. Rollback discards the staged copy. The
// mutex is held from Begin until Commit or Rollback, which makes the whole
// transaction one single-writer critical section.
type UnitOfWork struct {
	store   *Store
	records []orderRecord
	active  bool
}

// NewUnitOfWork creates a file-backed unit of work.
func NewUnitOfWork(store *Store) (*UnitOfWork, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}
	return &UnitOfWork{store: store}, nil
}

// Begin locks the store and loads the current order book as the transaction's
// working copy.
func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return errs.NewStoreFailureError("begin transaction", errTxAlreadyActive)
	}

	u.store.mu.Lock()
	records, err := u.store.load()
	if err != nil {
		u.store.mu.Unlock()
		return err
	}

	u.records = records
	u.active = true
	return nil
}

// Commit atomically rewrites the order book with the staged changes and
// releases the store.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return errs.NewStoreFailureError("commit transaction", errNoActiveTx)
	}

	err := u.store.save(u.records)
	u.records = nil
	u.active = false
	u.store.mu.Unlock()
	return err
}

// Rollback discards the staged changes and releases the store. Calling
// Rollback after Commit (the usual deferred cleanup) is a no-op.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return nil
	}

	u.records = nil
	u.active = false
	u.store.mu.Unlock()
	return nil
}

// OrderRepository returns a repository bound to this transaction.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{store: u.store, uow: u}
}

// UnitOfWorkFactory creates file-backed units of work, one per command.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the store.
func NewUnitOfWorkFactory(store *Store) (*UnitOfWorkFactory, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}
	return &UnitOfWorkFactory{store: store}, nil
}

// Create returns a fresh unit of work over the store.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}
