package queries

import (
	"errors"

	"serados/internal/pkg/guard"
)

var (
	ErrExportOrdersQueryIsNotConstructed = errors.New(
		"ExportOrdersQuery must be created via NewExportOrdersQuery constructor",
	)
)

// ExportOrdersQuery retrieves the complete order book for export, oldest
// order first. Unlike the admin listing it is not capped.
type ExportOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewExportOrdersQuery creates an export query.
func NewExportOrdersQuery() ExportOrdersQuery {
	return ExportOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ExportOrdersQuery) Validate() error {
	return q.guard.Validate(ErrExportOrdersQueryIsNotConstructed)
}
