package ports

import (
	"context"

	"serados/internal/core/domain/model/menu"
)

// MenuCatalog provides read-only access to the café menu. The ordering core
// treats the catalog as a trusted reference; it never mutates it.
type MenuCatalog interface {
	// Menu returns the current catalog.
	Menu(ctx context.Context) (menu.Menu, error)
}
