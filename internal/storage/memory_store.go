package storage

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is a map-backed Store used in tests. Values round-trip through
// JSON so serialization behaves exactly like the persistent backends.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Get(collection string, into interface{}) error {
	s.mu.RLock()
	raw, ok := s.data[collection]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("decoding collection %s: %w", collection, err)
	}
	return nil
}

func (s *MemoryStore) Put(collection string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", collection, err)
	}
	s.mu.Lock()
	s.data[collection] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Close() error { return nil }
