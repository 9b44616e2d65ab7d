package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemStore is an in-memory DocumentStore used by tests and available as a
// throwaway backend. Documents are kept as encoded JSON so load/save
// round-trips exercise the same (de)serialization paths as the real
// backends.
type MemStore struct {
	mu   sync.RWMutex
	docs map[string]json.RawMessage
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string]json.RawMessage)}
}

// Load decodes the stored document into out, reporting found=false when the
// key has never been saved.
func (s *MemStore) Load(_ context.Context, key string, out any) (bool, error) {
	s.mu.RLock()
	data, ok := s.docs[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode document %s: %w", key, err)
	}
	return true, nil
}

// Save encodes v and replaces the document at key.
func (s *MemStore) Save(_ context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode document %s: %w", key, err)
	}
	s.mu.Lock()
	s.docs[key] = data
	s.mu.Unlock()
	return nil
}
