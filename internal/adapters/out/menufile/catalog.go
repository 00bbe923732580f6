// Package menufile serves the café menu from a JSON file on disk. The file is
// seeded with the standing menu on first use and can be edited by hand; every
// read reloads it, so edits show up without a restart.
package menufile

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"serados/internal/core/domain/model/menu"
	"serados/internal/pkg/errs"
)

// Catalog implements ports.MenuCatalog over a JSON file.
type Catalog struct {
	path string
}

// NewCatalog creates a catalog over the given file path. If the file does not
// exist it is created with the default menu, so a fresh deployment serves the
// standing menu without manual setup.
func NewCatalog(path string) (*Catalog, error) {
	if path == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errs.NewStoreFailureError("create menu directory", err)
		}
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = seed(path); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, errs.NewStoreFailureError("stat menu file", err)
	}

	return &Catalog{path: path}, nil
}

// Menu reads the catalog from disk.
func (c *Catalog) Menu(_ context.Context) (menu.Menu, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return menu.Menu{}, errs.NewStoreFailureError("read menu file", err)
	}

	var m menu.Menu
	if err = json.Unmarshal(data, &m); err != nil {
		return menu.Menu{}, errs.NewStoreFailureError("decode menu file", err)
	}

	return m, nil
}

func seed(path string) error {
	data, err := json.MarshalIndent(menu.Default(), "", "  ")
	if err != nil {
		return errs.NewStoreFailureError("encode default menu", err)
	}

	if err = os.WriteFile(path, data, 0o644); err != nil {
		return errs.NewStoreFailureError("write default menu", err)
	}

	return nil
}
