package session

import (
	"context"
	"time"

	"recipe-search-be/pkg/store"
)

// TTL is the sliding inactivity window. Every Put rewrites the full
// session value and restarts this window; a session idle for longer
// may be evicted and a later request starts over as a first turn.
const TTL = 24 * time.Hour

// Store persists conversation sessions behind an opaque id.
//
// Get returns found=false both when no entry exists and when the
// stored payload cannot be deserialized; a broken payload is logged
// and treated as a miss so a conversation can always restart.
// Put replaces the whole value, never parts of it. No locking is
// provided: concurrent writers to the same id race last-write-wins,
// acceptable because one session models one user's serial
// conversation.
type Store interface {
	Get(ctx context.Context, sessionID string) (*store.Session, bool, error)
	Put(ctx context.Context, sessionID string, s *store.Session) error
}
