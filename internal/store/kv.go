package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/easelart/easel/internal/logging"
)

// KV is a small string key-value store with one file per key.
// Reads that fail for any reason report the key as absent; writes are
// atomic to prevent corruption on crash.
type KV struct {
	dir string
	mu  sync.Mutex
}

// NewKV returns a KV store rooted at dir. The directory must exist.
func NewKV(dir string) *KV {
	return &KV{dir: dir}
}

// Get returns the stored value for key and whether it was present.
func (s *KV) Get(key string) (string, bool) {
	path, err := s.path(key)
	if err != nil {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Set stores value under key, replacing any previous value.
func (s *KV) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.path(key)
	if err != nil {
		return err
	}

	// Write to temporary file first (atomic write)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, []byte(value), 0600); err != nil {
		return fmt.Errorf("failed to write temporary state file: %w", err)
	}

	// Atomic rename (this is atomic on all platforms)
	if err := os.Rename(tmpPath, path); err != nil {
		// Clean up temp file on error
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save state file: %w", err)
	}

	logging.LogStoreWrite(key, len(value))
	return nil
}

// path resolves key to a file path, rejecting keys that would escape the
// store directory.
func (s *KV) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid state key: %q", key)
	}
	return filepath.Join(s.dir, key), nil
}

// Value binds the store to a single key, giving callers a load/save pair
// scoped to that key.
type Value struct {
	kv  *KV
	key string
}

// Value returns a handle bound to key.
func (s *KV) Value(key string) *Value {
	return &Value{kv: s, key: key}
}

// Load returns the current value and whether one was present.
func (v *Value) Load() (string, bool) {
	return v.kv.Get(v.key)
}

// Save replaces the current value.
func (v *Value) Save(val string) error {
	return v.kv.Set(v.key, val)
}
