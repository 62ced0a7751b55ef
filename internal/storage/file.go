package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File is a Store backed by one file per key under a data directory. It is
// the local stand-in for the browser's storage backend.
type File struct {
	dir string
}

// NewFile creates a file-backed store rooted at dir, creating it if needed.
func NewFile(dir string) (*File, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}
	return &File{dir: dir}, nil
}

// Get reads the value for key, or (nil, nil) when the key is absent.
func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &PersistenceError{Op: "get", Key: key, Cause: err}
	}
	return data, nil
}

// Set writes value under key.
func (f *File) Set(_ context.Context, key string, value []byte) error {
	if err := os.WriteFile(f.path(key), value, 0o644); err != nil {
		return &PersistenceError{Op: "set", Key: key, Cause: err}
	}
	return nil
}

// Remove deletes key. Removing an absent key is a no-op.
func (f *File) Remove(_ context.Context, key string) error {
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return &PersistenceError{Op: "remove", Key: key, Cause: err}
	}
	return nil
}

func (f *File) path(key string) string {
	// Keys are fixed constants, but sanitize anyway so a bad key cannot
	// escape the data directory.
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, key)
	return filepath.Join(f.dir, safe+".json")
}
