package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskStore writes blobs as flat files under a root directory. The storage
// key is the filename; an existing file with the same key is overwritten.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage root %s: %w", root, err)
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Put(_ context.Context, key string, content io.Reader) error {
	dst, err := os.Create(filepath.Join(s.root, key))
	if err != nil {
		return fmt.Errorf("creating %s: %w", key, err)
	}

	if _, err := io.Copy(dst, content); err != nil {
		dst.Close()
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return dst.Close()
}
