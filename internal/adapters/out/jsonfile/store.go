// Package jsonfile implements the order store on a single flat JSON file.
// The whole order book is loaded and rewritten as a unit; a store-wide mutex
// serializes writers and commits replace the file atomically via a temp file
// and rename, so readers never observe a partially written order book.
package jsonfile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"serados/internal/pkg/errs"
)

// Store owns the order book file. All access to the file goes through a
// Store; the mutex in it is the single-writer critical section the file-backed
// unit of work is built on.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a Store over the given file path. The parent directory is
// created if needed; the file itself is created lazily with an empty order
// book on first load.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errs.NewStoreFailureError("create store directory", err)
		}
	}

	return &Store{path: path}, nil
}

// load reads the full order book. A missing file is an empty order book, not
// an error. The caller must hold the store mutex.
func (s *Store) load() ([]orderRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []orderRecord{}, nil
		}
		return nil, errs.NewStoreFailureError("read order book", err)
	}

	if len(data) == 0 {
		return []orderRecord{}, nil
	}

	var records []orderRecord
	if err = json.Unmarshal(data, &records); err != nil {
		return nil, errs.NewStoreFailureError("decode order book", err)
	}

	return records, nil
}

// save rewrites the full order book atomically: the records are written to a
// temp file in the same directory and renamed over the store file, so a crash
// mid-write leaves the previous order book intact. The caller must hold the
// store mutex.
func (s *Store) save(records []orderRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return errs.NewStoreFailureError("encode order book", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errs.NewStoreFailureError("create temp order book", err)
	}

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return errs.NewStoreFailureError("write temp order book", err)
	}

	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return errs.NewStoreFailureError("close temp order book", err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return errs.NewStoreFailureError("replace order book", err)
	}

	return nil
}
