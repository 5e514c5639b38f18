package cache

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryCounterStore_Next(t *testing.T) {
	store := NewInMemoryCounterStore()
	ctx := context.Background()

	t.Run("increments from one", func(t *testing.T) {
		n, err := store.Next(ctx, "TRX")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = store.Next(ctx, "TRX")
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("prefixes count independently", func(t *testing.T) {
		n, err := store.Next(ctx, "C")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}

func TestInMemoryCounterStore_Concurrent(t *testing.T) {
	store := NewInMemoryCounterStore()
	ctx := context.Background()

	const workers = 50
	seen := make(chan int64, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := store.Next(ctx, "R")
			assert.NoError(t, err)
			seen <- n
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[int64]bool)
	for n := range seen {
		assert.False(t, unique[n], "duplicate counter value %d", n)
		unique[n] = true
	}
	assert.Len(t, unique, workers)
}
