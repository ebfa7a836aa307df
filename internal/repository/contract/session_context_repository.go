package contract

import (
	"context"

	"yatta-helin-be/pkg/store"
)

// SessionContextRepository is the live session store consulted on every
// chat turn. Backed by an in-process cache or Redis depending on config.
type SessionContextRepository interface {
	Get(ctx context.Context, sessionKey string) (store.SessionContext, bool, error)
	Save(ctx context.Context, sessionKey string, session store.SessionContext) error
	Delete(ctx context.Context, sessionKey string) error
}
