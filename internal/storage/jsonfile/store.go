// Package jsonfile persists collections as flat JSON array files, one file
// per collection, under a single data directory.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"bazaardirectory/internal/domain"
)

// Store implements domain.CollectionStore over the local filesystem.
// Each save rewrites the whole file through a temp file followed by a
// rename, so readers never observe a partially written collection.
type Store struct {
	dir string
}

// New creates the data directory if needed and returns a Store rooted there.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", domain.ErrStorage, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Load decodes the collection file into dest. A missing or empty file reads
// as an empty sequence.
func (s *Store) Load(ctx context.Context, collection string, dest any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := os.ReadFile(s.path(collection))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		data = []byte("[]")
	case err != nil:
		return fmt.Errorf("%w: read %s: %v", domain.ErrStorage, collection, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("[]")
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: decode %s: %v", domain.ErrCorrupt, collection, err)
	}
	return nil
}

// Save replaces the collection file with the encoded records.
func (s *Store) Save(ctx context.Context, collection string, records any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrStorage, collection, err)
	}
	tmp, err := os.CreateTemp(s.dir, collection+"-*.json.tmp")
	if err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorage, collection, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorage, collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorage, collection, err)
	}
	if err := os.Rename(tmp.Name(), s.path(collection)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: replace %s: %v", domain.ErrStorage, collection, err)
	}
	return nil
}
