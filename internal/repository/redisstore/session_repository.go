package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"yatta-helin-be/internal/repository/contract"
	"yatta-helin-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "helin:session:"

// SessionRepository keeps live session contexts in Redis so multiple
// instances can serve the same conversation.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) contract.SessionContextRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionRepository{client: client, ttl: ttl}
}

func (r *SessionRepository) Get(ctx context.Context, sessionKey string) (store.SessionContext, bool, error) {
	raw, err := r.client.Get(ctx, keyPrefix+sessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return store.SessionContext{}, false, nil
		}
		return store.SessionContext{}, false, fmt.Errorf("redis session get: %w", err)
	}

	var session store.SessionContext
	if err := json.Unmarshal(raw, &session); err != nil {
		// corrupt payload: treat as absent so the caller rebuilds the session
		return store.SessionContext{}, false, nil
	}
	return session, true, nil
}

func (r *SessionRepository) Save(ctx context.Context, sessionKey string, session store.SessionContext) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis session marshal: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+sessionKey, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis session set: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionKey string) error {
	if err := r.client.Del(ctx, keyPrefix+sessionKey).Err(); err != nil {
		return fmt.Errorf("redis session del: %w", err)
	}
	return nil
}
