// Package memory implements store.KV in process memory.
package memory

import (
	"context"
	"slices"
	"sync"

	"workstudy/internal/store"
)

// Store is a map-backed KV. Nothing survives the process.
type Store struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{records: make(map[string][]byte)}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.records[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return slices.Clone(v), nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[key] = slices.Clone(value)
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)
	return nil
}
