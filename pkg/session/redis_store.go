package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"recipe-search-be/internal/pkg/logger"
	"recipe-search-be/pkg/store"
)

const keyPrefix = "session:"

// RedisStore keeps sessions in Redis as JSON values with a sliding
// 24h expiration, matching the one-conversation-per-key model.
type RedisStore struct {
	rdb *redis.Client
	log logger.ILogger
}

func NewRedisStore(rdb *redis.Client, log logger.ILogger) *RedisStore {
	return &RedisStore{
		rdb: rdb,
		log: log,
	}
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*store.Session, bool, error) {
	raw, err := r.rdb.Get(ctx, keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	s, ok := decodeSession(raw)
	if !ok {
		// Malformed payload self-heals into a fresh conversation.
		r.log.Warn("session", "Failed to decode stored session, treating as miss", map[string]interface{}{
			"session_id": sessionID,
		})
		return nil, false, nil
	}
	return s, true, nil
}

func (r *RedisStore) Put(ctx context.Context, sessionID string, s *store.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, keyPrefix+sessionID, raw, TTL).Err()
}

// decodeSession is the single place a stored payload is interpreted.
// Any decode failure means "no usable session".
func decodeSession(raw []byte) (*store.Session, bool) {
	var s store.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false
	}
	if s.History == nil {
		s.History = []store.Interaction{}
	}
	return &s, true
}
