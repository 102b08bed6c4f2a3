package geocache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps the cache snapshot in a single JSON text file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the snapshot file. A missing file is an empty snapshot,
// not an error.
func (s *FileStore) Load(_ context.Context) ([]Entry, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache snapshot: %w", err)
	}

	var entries []Entry
	if err = json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode cache snapshot: %w", err)
	}

	return entries, nil
}

// Save replaces the snapshot file with the given entries.
func (s *FileStore) Save(_ context.Context, entries []Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode cache snapshot: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err = os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	if err = os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write cache snapshot: %w", err)
	}

	return nil
}
