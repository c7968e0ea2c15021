package idempotency_test

import (
	"sync"
	"testing"
	"time"

	"orders/internal/adapters/out/memory/idempotency"
	"orders/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newStore() (*idempotency.InMemoryStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	return idempotency.NewInMemoryStore(time.Hour, idempotency.WithClock(clock.Now)), clock
}

func TestInMemoryStore_Claim(t *testing.T) {
	t.Run("first claim wins", func(t *testing.T) {
		store, _ := newStore()
		first, second := kernel.NewUUID(), kernel.NewUUID()

		bound, claimed, err := store.Claim(t.Context(), "k", first)
		require.NoError(t, err)
		assert.True(t, claimed)
		assert.True(t, bound.IsEqual(first))

		bound, claimed, err = store.Claim(t.Context(), "k", second)
		require.NoError(t, err)
		assert.False(t, claimed)
		assert.True(t, bound.IsEqual(first))
	})

	t.Run("keys are independent", func(t *testing.T) {
		store, _ := newStore()

		_, claimedA, _ := store.Claim(t.Context(), "a", kernel.NewUUID())
		_, claimedB, _ := store.Claim(t.Context(), "b", kernel.NewUUID())

		assert.True(t, claimedA)
		assert.True(t, claimedB)
	})

	t.Run("expired binding can be claimed again", func(t *testing.T) {
		store, clock := newStore()
		_, _, _ = store.Claim(t.Context(), "k", kernel.NewUUID())
		clock.Advance(time.Hour)
		next := kernel.NewUUID()

		bound, claimed, err := store.Claim(t.Context(), "k", next)

		require.NoError(t, err)
		assert.True(t, claimed)
		assert.True(t, bound.IsEqual(next))
	})

	t.Run("concurrent claims bind one id", func(t *testing.T) {
		store, _ := newStore()
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			winners int
			bounds  = map[string]struct{}{}
		)
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				bound, claimed, err := store.Claim(t.Context(), "k", kernel.NewUUID())
				assert.NoError(t, err)
				mu.Lock()
				defer mu.Unlock()
				if claimed {
					winners++
				}
				bounds[bound.String()] = struct{}{}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, winners)
		assert.Len(t, bounds, 1)
	})
}

func TestInMemoryStore_Release(t *testing.T) {
	t.Run("releases own binding", func(t *testing.T) {
		store, _ := newStore()
		id := kernel.NewUUID()
		_, _, _ = store.Claim(t.Context(), "k", id)

		require.NoError(t, store.Release(t.Context(), "k", id))

		_, claimed, _ := store.Claim(t.Context(), "k", kernel.NewUUID())
		assert.True(t, claimed)
	})

	t.Run("keeps binding of another id", func(t *testing.T) {
		store, _ := newStore()
		id := kernel.NewUUID()
		_, _, _ = store.Claim(t.Context(), "k", id)

		require.NoError(t, store.Release(t.Context(), "k", kernel.NewUUID()))

		bound, claimed, _ := store.Claim(t.Context(), "k", kernel.NewUUID())
		assert.False(t, claimed)
		assert.True(t, bound.IsEqual(id))
	})
}

func TestInMemoryStore_PurgeExpired(t *testing.T) {
	store, clock := newStore()
	_, _, _ = store.Claim(t.Context(), "old", kernel.NewUUID())
	clock.Advance(30 * time.Minute)
	_, _, _ = store.Claim(t.Context(), "new", kernel.NewUUID())
	clock.Advance(30 * time.Minute)

	purged, err := store.PurgeExpired(t.Context())

	require.NoError(t, err)
	assert.Equal(t, 1, purged)
	assert.Equal(t, 1, store.Len())
}
