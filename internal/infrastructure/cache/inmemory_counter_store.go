package cache

import (
	"context"
	"sync"

	"github.com/washpos/backend/internal/domain/sequence"
)

// InMemoryCounterStore implements sequence.CounterStore on a mutex-guarded
// map. Counters reset on restart, so it only suits tests and local runs
// where gaps or restarts from 1 are acceptable.
type InMemoryCounterStore struct {
	mu     sync.Mutex
	values map[string]int64
}

var _ sequence.CounterStore = (*InMemoryCounterStore)(nil)

func NewInMemoryCounterStore() *InMemoryCounterStore {
	return &InMemoryCounterStore{values: make(map[string]int64)}
}

// Next increments the counter for prefix and returns the new value
func (s *InMemoryCounterStore) Next(_ context.Context, prefix string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[prefix]++
	return s.values[prefix], nil
}

func (s *InMemoryCounterStore) Close() error { return nil }
