package statestore

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutAndTake(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	entry := Entry{RedirectURI: "http://localhost:3000/auth/callback", CreatedAt: time.Now()}
	require.NoError(t, store.Put(ctx, "state-1", entry, time.Minute))

	got, ok, err := store.Take(ctx, "state-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entry.RedirectURI, got.RedirectURI)
}

func TestMemoryStore_TakeIsSingleUse(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "state-1", Entry{}, time.Minute))

	_, ok, err := store.Take(ctx, "state-1")
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = store.Take(ctx, "state-1")
	require.NoError(t, err)
	assert.False(t, ok, "second take must not succeed")
}

func TestMemoryStore_UnknownState(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	_, ok, err := store.Take(context.Background(), "never-issued")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "state-1", Entry{}, 20*time.Millisecond))
	time.Sleep(50 * time.Millisecond)

	_, ok, err := store.Take(ctx, "state-1")
	require.NoError(t, err)
	assert.False(t, ok, "expired state must not be takeable")
}

func TestMemoryStore_ConcurrentTakeHasOneWinner(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "state-1", Entry{}, time.Minute))

	const attempts = 20
	var wins int64
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, ok, err := store.Take(ctx, "state-1")
			assert.NoError(t, err)
			if ok {
				atomic.AddInt64(&wins, 1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int64(1), wins, "exactly one concurrent take must win")
}
