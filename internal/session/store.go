package session

import (
	"context"
	"time"
)

// TTL is the lifetime of a session from creation.
const TTL = 24 * time.Hour

// Session is the server-side state behind a bearer token. The token is the
// primary lookup key; one identity may hold any number of live sessions.
type Session struct {
	ID         string    `json:"id"`
	IdentityID string    `json:"identity_id"`
	Token      string    `json:"token"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Store defines how sessions are stored and retrieved.
//
// Get must never return a session whose ExpiresAt has passed: an expired
// record is evicted on read, not merely skipped. Delete is idempotent and
// reports whether a record was actually removed.
type Store interface {
	Create(ctx context.Context, identityID, token string) (Session, error)
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) (bool, error)
}
