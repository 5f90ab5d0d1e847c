package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	ErrNotFound       = errors.New("storage: not found")
	ErrUnknownBackend = errors.New("storage: unknown backend")
	ErrEmptyKey       = errors.New("storage: empty key")
)

// Slot is a string key-value store. Get returns ErrNotFound for a key that
// was never written. Set replaces any prior value.
type Slot interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendDiskv  Backend = "diskv"
	BackendMemory Backend = "memory"
)

func (b Backend) IsValid() bool {
	switch b {
	case BackendFile, BackendSQLite, BackendDiskv, BackendMemory:
		return true
	default:
		return false
	}
}

// Open returns the slot for backend, rooted at dir.
func Open(backend Backend, dir string) (Slot, error) {
	switch Backend(strings.ToLower(string(backend))) {
	case BackendFile:
		return NewFileSlot(dir)
	case BackendSQLite:
		return OpenSQLite(filepath.Join(dir, "todo.db"))
	case BackendDiskv:
		return NewDiskvSlot(filepath.Join(dir, "kv"))
	case BackendMemory:
		return NewMemorySlot(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

func checkKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrEmptyKey
	}
	return nil
}
