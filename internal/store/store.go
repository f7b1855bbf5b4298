// Package store provides implementations of the shared key/value store
// the module publishes cross-module data into.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/go-logr/logr"
)

// MemStore is an in-process key/value store.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]any
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		data: make(map[string]any),
	}
}

// Put stores a value under the given key.
func (s *MemStore) Put(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Get returns the value stored under key.
func (s *MemStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// Len returns the number of stored keys.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// FileStore is a key/value store backed by a JSON file, so other
// processes of the installer can read what the module published. Writes
// are atomic (temp file plus rename). Write failures are logged, not
// surfaced: the store is a best-effort side channel.
type FileStore struct {
	path   string
	logger logr.Logger

	mu   sync.Mutex
	data map[string]any
}

// NewFileStore opens (or creates) a file-backed store at path.
func NewFileStore(path string, logger logr.Logger) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		logger: logger,
		data:   make(map[string]any),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read store file %s: %w", path, err)
		}
		return s, nil
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("failed to parse store file %s: %w", path, err)
	}
	return s, nil
}

// Put stores a value and persists the store.
func (s *FileStore) Put(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	if err := s.saveLocked(); err != nil {
		s.logger.Error(err, "failed to persist key/value store", "key", key)
	}
}

// Get returns the value stored under key.
func (s *FileStore) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

// saveLocked writes the store atomically. Caller holds s.mu.
func (s *FileStore) saveLocked() error {
	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store data: %w", err)
	}

	// Write to temporary file first for atomic operation
	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary store file: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tempPath, s.path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename store file: %w", err)
	}

	return nil
}
