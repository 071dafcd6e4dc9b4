package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore writes reports to a directory on disk
type LocalStore struct {
	dir string
}

// NewLocalStore creates the report directory if needed and returns a store
func NewLocalStore(dir string) (*LocalStore, error) {
	if dir == "" {
		dir = "downloads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report directory %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

// SaveReport writes the Markdown document into the report directory and
// returns its path. Any directory component in objectName is dropped so a
// crafted name cannot escape the report directory.
func (s *LocalStore) SaveReport(_ context.Context, objectName, markdown string) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(objectName))
	if err := os.WriteFile(path, []byte(markdown), 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
