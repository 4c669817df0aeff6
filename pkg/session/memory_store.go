package session

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"recipe-search-be/pkg/store"
)

// MemoryStore is the in-process fallback used when Redis is not
// configured, and by unit tests. Same sliding-expiration contract as
// the Redis store, minus cross-process durability.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithTTL(TTL)
}

// NewMemoryStoreWithTTL exists so tests can exercise expiration
// without waiting a day.
func NewMemoryStoreWithTTL(ttl time.Duration) *MemoryStore {
	purge := 10 * time.Minute
	if ttl < purge {
		purge = ttl
	}
	return &MemoryStore{
		cache: cache.New(ttl, purge),
	}
}

func (m *MemoryStore) Get(_ context.Context, sessionID string) (*store.Session, bool, error) {
	x, found := m.cache.Get(sessionID)
	if !found {
		return nil, false, nil
	}
	s, ok := x.(*store.Session)
	if !ok {
		return nil, false, nil
	}
	return s, true, nil
}

func (m *MemoryStore) Put(_ context.Context, sessionID string, s *store.Session) error {
	m.cache.Set(sessionID, s, cache.DefaultExpiration)
	return nil
}
