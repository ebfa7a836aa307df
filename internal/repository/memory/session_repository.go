package memory

import (
	"context"
	"time"

	"yatta-helin-be/internal/repository/contract"
	"yatta-helin-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewSessionRepository builds the in-process session store. Expired
// contexts are purged every ten minutes; a session that outlives the TTL
// simply starts over from the persisted snapshot or from scratch.
func NewSessionRepository(ttl time.Duration) contract.SessionContextRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionRepository{
		cache: cache.New(ttl, 10*time.Minute),
		ttl:   ttl,
	}
}

func (r *SessionRepository) Get(_ context.Context, sessionKey string) (store.SessionContext, bool, error) {
	if x, found := r.cache.Get(sessionKey); found {
		return x.(store.SessionContext), true, nil
	}
	return store.SessionContext{}, false, nil
}

func (r *SessionRepository) Save(_ context.Context, sessionKey string, session store.SessionContext) error {
	r.cache.Set(sessionKey, session, cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, sessionKey string) error {
	r.cache.Delete(sessionKey)
	return nil
}
