// Package cache provides ports.ResultCache implementations.
package cache

import (
	"context"
	"sync"
)

// MemoryStore keeps results in process memory.
type MemoryStore struct {
	mu      sync.RWMutex
	results map[int]uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{results: make(map[int]uint64)}
}

func (s *MemoryStore) Get(_ context.Context, digits int) (uint64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.results[digits]
	return p, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, digits int, prime uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[digits] = prime
	return nil
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, int) (uint64, bool, error) { return 0, false, nil }
func (Nop) Set(context.Context, int, uint64) error         { return nil }
