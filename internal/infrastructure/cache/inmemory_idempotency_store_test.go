package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryIdempotencyStore(t *testing.T) {
	ctx := context.Background()

	t.Run("first mark wins", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		fresh, err := store.MarkProcessed(ctx, "key-1", time.Hour)
		require.NoError(t, err)
		assert.True(t, fresh)

		fresh, err = store.MarkProcessed(ctx, "key-1", time.Hour)
		require.NoError(t, err)
		assert.False(t, fresh)
	})

	t.Run("expired keys can be claimed again", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		_, err := store.MarkProcessed(ctx, "key-2", time.Millisecond)
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)

		fresh, err := store.MarkProcessed(ctx, "key-2", time.Hour)
		require.NoError(t, err)
		assert.True(t, fresh)
	})

	t.Run("IsProcessed reflects state", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		processed, err := store.IsProcessed(ctx, "key-3")
		require.NoError(t, err)
		assert.False(t, processed)

		_, err = store.MarkProcessed(ctx, "key-3", time.Hour)
		require.NoError(t, err)

		processed, err = store.IsProcessed(ctx, "key-3")
		require.NoError(t, err)
		assert.True(t, processed)
	})

	t.Run("only one concurrent claimer wins", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		defer store.Close()

		const workers = 20
		wins := make(chan bool, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				fresh, err := store.MarkProcessed(ctx, "contended", time.Hour)
				require.NoError(t, err)
				wins <- fresh
			}()
		}
		wg.Wait()
		close(wins)

		winners := 0
		for fresh := range wins {
			if fresh {
				winners++
			}
		}
		assert.Equal(t, 1, winners)
	})

	t.Run("close is safe to call twice", func(t *testing.T) {
		store := NewInMemoryIdempotencyStore()
		assert.NoError(t, store.Close())
		assert.NoError(t, store.Close())
	})
}
