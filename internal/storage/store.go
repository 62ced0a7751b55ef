// Package storage provides the key-value persistence capability and a JSON
// adapter that isolates callers from storage failures.
package storage

import (
	"context"
	"fmt"
)

// Storage keys. Each key is independent; there is no transactional
// grouping across keys. The jobs key is global per install, not per user.
const (
	KeyJobs      = "titanhire-jobs"
	KeyUser      = "titanhire-user"
	KeyAuthToken = "titanhire-auth-token"
)

// Store is the key-value byte-string capability. Get returns (nil, nil)
// when the key is absent.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// PersistenceError wraps a storage failure with the operation and key.
type PersistenceError struct {
	Op    string
	Key   string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage %s %q failed: %v", e.Op, e.Key, e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}
