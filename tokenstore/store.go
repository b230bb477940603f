// Package tokenstore persists the session token between process runs.
//
// Exactly one key is ever written: Key. Its presence or absence is the only
// state a Store holds.
package tokenstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Key is the fixed name the session token is stored under.
const Key = "auth_token"

// Kinds accepted by Open.
const (
	KindFile   = "file"
	KindSQLite = "sqlite"
	KindMemory = "memory"
)

// Store is a durable client-side store for the session token.
//
// Remove on a store without a token is not an error.
type Store interface {
	Load() (token string, ok bool, err error)
	Save(token string) error
	Remove() error
}

// Open returns a store of the given kind rooted at path. path is ignored for
// the memory store.
func Open(kind, path string) (Store, error) {
	switch kind {
	case KindMemory:
		return NewMemory(), nil
	case KindFile:
		return NewFile(path)
	case KindSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unsupported token store: %q", kind)
	}
}

// DefaultPath returns the default location for a store of the given kind
// under ~/.helpinghands (or $HELPINGHANDS_HOME when set).
func DefaultPath(kind string) (string, error) {
	dir, err := dataDir()
	if err != nil {
		return "", err
	}
	switch kind {
	case KindSQLite:
		return filepath.Join(dir, "session.db"), nil
	default:
		return filepath.Join(dir, "session.json"), nil
	}
}

const (
	envHome = "HELPINGHANDS_HOME" // override for tests
	dirName = ".helpinghands"
)

func dataDir() (string, error) {
	if custom := os.Getenv(envHome); custom != "" {
		return custom, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user home: %w", err)
	}
	return filepath.Join(home, dirName), nil
}

// Memory keeps the token in process memory only.
type Memory struct {
	mu    sync.Mutex
	token string
	ok    bool
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory { return &Memory{} }

// Load implements Store.
func (m *Memory) Load() (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.ok, nil
}

// Save implements Store.
func (m *Memory) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.ok = token, true
	return nil
}

// Remove implements Store.
func (m *Memory) Remove() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.ok = "", false
	return nil
}
