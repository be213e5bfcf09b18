package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type FileStoreInterface interface {
	Save(dir, filename string, r io.Reader) (string, error)
}

// FileStore writes uploads under a public root served as static files.
type FileStore struct {
	root string
}

func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}
	return &FileStore{root: root}, nil
}

// Save streams the reader to <root>/<dir>/<filename> and returns the path
// relative to the public root. The filename is flattened so a crafted name
// cannot escape the root.
func (s *FileStore) Save(dir, filename string, r io.Reader) (string, error) {
	dir = filepath.Base(dir)
	filename = filepath.Base(filename)

	target := filepath.Join(s.root, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	f, err := os.Create(filepath.Join(target, filename))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return "/" + dir + "/" + filename, nil
}
