// ABOUTME: Durable client-side session storage with SQLite, bbolt, and in-memory backends.
// ABOUTME: Open selects a backend by name; every backend reports a missing key as ErrNotFound.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/2389-research/gifbox/core"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("session key not found")

// ErrUnknownBackend is returned by Open for an unrecognized backend name.
var ErrUnknownBackend = errors.New("unknown session backend")

// Backend names accepted by Open.
const (
	BackendSqlite = "sqlite"
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

// Store is a closable core.SessionStore.
type Store interface {
	core.SessionStore
	Close() error
}

// Open opens the named backend with its database file under dir. The memory
// backend ignores dir.
func Open(backend, dir string) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendSqlite, BackendBolt:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	if backend == BackendBolt {
		return OpenBolt(filepath.Join(dir, "session.bolt"))
	}
	return OpenSqlite(filepath.Join(dir, "session.db"))
}
