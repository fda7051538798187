package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is the reference session table: a process-local map keyed by
// token. Expiry is lazy, enforced at read time under the same lock as the
// lookup so a concurrent Get on an expired token cannot resurrect it.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]Session

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

func (m *MemoryStore) Create(ctx context.Context, identityID, token string) (Session, error) {
	now := m.now()
	s := Session{
		ID:         uuid.NewString(),
		IdentityID: identityID,
		Token:      token,
		CreatedAt:  now,
		ExpiresAt:  now.Add(TTL),
	}

	m.mu.Lock()
	m.sessions[token] = s
	m.mu.Unlock()

	return s, nil
}

func (m *MemoryStore) Get(ctx context.Context, token string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return nil, nil
	}

	if !m.now().Before(s.ExpiresAt) {
		delete(m.sessions, token)
		return nil, nil
	}

	return &s, nil
}

func (m *MemoryStore) Delete(ctx context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, existed := m.sessions[token]
	delete(m.sessions, token)
	return existed, nil
}
