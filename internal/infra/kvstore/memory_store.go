package kvstore

import (
	"context"
	"encoding/json"
	"sync"
)

// memoryStore is an in-process Store used by tests and as a last-resort
// fallback. Values are kept JSON-encoded so decoding behaves exactly like
// the durable backends.
type memoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() Store {
	return &memoryStore{blobs: make(map[string][]byte)}
}

func (s *memoryStore) Get(_ context.Context, key string, dest any) bool {
	s.mu.RLock()
	data, ok := s.blobs[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}

	return json.Unmarshal(data, dest) == nil
}

func (s *memoryStore) Set(_ context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.blobs[key] = data
	s.mu.Unlock()
}
