// Package uploads persists multipart file uploads under a single uploads
// root and hands back the stored names that records reference.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"bazaardirectory/internal/domain"
)

// Store implements domain.UploadStore on the local filesystem. Stored names
// are the generator's next id joined with the original filename, which
// prevents collisions while keeping the human-readable extension.
type Store struct {
	dir string
	ids domain.IDGenerator
}

// New creates the uploads directory if needed and returns a Store.
func New(dir string, ids domain.IDGenerator) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create uploads dir: %v", domain.ErrStorage, err)
	}
	return &Store{dir: dir, ids: ids}, nil
}

// Dir returns the uploads root, for static serving.
func (s *Store) Dir() string {
	return s.dir
}

// Attach stores one file and returns its stored name.
func (s *Store) Attach(file *multipart.FileHeader) (string, error) {
	// Base strips any path the client smuggled into the filename.
	name := s.ids.Next() + "-" + filepath.Base(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%w: open upload %s: %v", domain.ErrStorage, file.Filename, err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("%w: store upload %s: %v", domain.ErrStorage, name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("%w: store upload %s: %v", domain.ErrStorage, name, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("%w: store upload %s: %v", domain.ErrStorage, name, err)
	}
	return name, nil
}

// AttachUpTo stores at most max files in receipt order and returns their
// stored names. Files beyond the cap are dropped.
func (s *Store) AttachUpTo(files []*multipart.FileHeader, max int) ([]string, error) {
	if len(files) > max {
		files = files[:max]
	}
	names := make([]string, 0, len(files))
	for _, file := range files {
		name, err := s.Attach(file)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}
