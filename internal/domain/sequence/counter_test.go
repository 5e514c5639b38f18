package sequence

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCounterStore struct {
	mu     sync.Mutex
	values map[string]int64
}

func newMemoryCounterStore() *memoryCounterStore {
	return &memoryCounterStore{values: make(map[string]int64)}
}

func (s *memoryCounterStore) Next(_ context.Context, prefix string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[prefix]++
	return s.values[prefix], nil
}

func (s *memoryCounterStore) Close() error { return nil }

func TestFormat(t *testing.T) {
	t.Run("customer numbers use five digits", func(t *testing.T) {
		assert.Equal(t, "C00042", Format(PrefixCustomer, 42, Width(PrefixCustomer)))
	})

	t.Run("order numbers use six digits", func(t *testing.T) {
		assert.Equal(t, "TRX000001", Format(PrefixOrder, 1, Width(PrefixOrder)))
	})

	t.Run("values past the width widen", func(t *testing.T) {
		assert.Equal(t, "C1000000", Format(PrefixCustomer, 1000000, Width(PrefixCustomer)))
	})
}

func TestGenerator_Generate(t *testing.T) {
	t.Run("strictly increasing per prefix", func(t *testing.T) {
		gen := NewGenerator(newMemoryCounterStore())

		first, err := gen.Generate(context.Background(), PrefixOrder, 6)
		require.NoError(t, err)
		second, err := gen.Generate(context.Background(), PrefixOrder, 6)
		require.NoError(t, err)

		assert.Equal(t, "TRX000001", first)
		assert.Equal(t, "TRX000002", second)
	})

	t.Run("prefixes are independent", func(t *testing.T) {
		gen := NewGenerator(newMemoryCounterStore())

		order, err := gen.Generate(context.Background(), PrefixOrder, 6)
		require.NoError(t, err)
		customer, err := gen.Generate(context.Background(), PrefixCustomer, 5)
		require.NoError(t, err)

		assert.Equal(t, "TRX000001", order)
		assert.Equal(t, "C00001", customer)
	})

	t.Run("caller width overrides the default", func(t *testing.T) {
		gen := NewGenerator(newMemoryCounterStore())
		number, err := gen.Generate(context.Background(), PrefixOrder, 8)
		require.NoError(t, err)
		assert.Equal(t, "TRX00000001", number)
	})

	t.Run("non-positive width falls back to the prefix table", func(t *testing.T) {
		gen := NewGenerator(newMemoryCounterStore())
		number, err := gen.Generate(context.Background(), PrefixCustomer, 0)
		require.NoError(t, err)
		assert.Equal(t, "C00001", number)
	})

	t.Run("rejects empty prefix", func(t *testing.T) {
		gen := NewGenerator(newMemoryCounterStore())
		_, err := gen.Generate(context.Background(), "  ", 6)
		assert.Error(t, err)
	})

	t.Run("no duplicates under concurrency", func(t *testing.T) {
		gen := NewGenerator(newMemoryCounterStore())

		const workers = 50
		results := make(chan string, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				number, err := gen.Generate(context.Background(), PrefixReturn, 6)
				require.NoError(t, err)
				results <- number
			}()
		}
		wg.Wait()
		close(results)

		seen := make(map[string]bool)
		for number := range results {
			assert.False(t, seen[number], "duplicate number %s", number)
			seen[number] = true
		}
		assert.Len(t, seen, workers)
	})
}
