package statestore

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore is a per-process store for development and tests. It does not
// work across multiple service instances; use Redis for that.
type MemoryStore struct {
	mu    sync.Mutex
	cache *gocache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(DefaultTTL, time.Minute),
	}
}

func (s *MemoryStore) Put(ctx context.Context, state string, entry Entry, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Set(state, entry, ttl)
	return nil
}

func (s *MemoryStore) Take(ctx context.Context, state string) (Entry, bool, error) {
	// go-cache's Get and Delete are individually safe but not atomic as a
	// pair; the mutex makes take-and-delete single-winner.
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.cache.Get(state)
	if !ok {
		return Entry{}, false, nil
	}
	s.cache.Delete(state)
	return v.(Entry), true, nil
}

func (s *MemoryStore) Close() error {
	s.cache.Flush()
	return nil
}
