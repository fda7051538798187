package identity

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken = errors.New("identity: email already registered")
	ErrNotFound   = errors.New("identity: not found")
)

// Store is the in-memory account table. It is constructed once at startup
// and shared by every handler; all access goes through the mutex so
// concurrent registration of the same email cannot produce duplicates.
type Store struct {
	mu      sync.RWMutex
	byEmail map[string]*Identity
	byID    map[string]*Identity
}

func NewStore() *Store {
	return &Store{
		byEmail: make(map[string]*Identity),
		byID:    make(map[string]*Identity),
	}
}

// Create inserts a new identity. Email uniqueness is case-insensitive; the
// stored email is the lower-cased form.
func (s *Store) Create(email, credentialHash, gameID string) (*Identity, error) {
	key := strings.ToLower(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[key]; exists {
		return nil, ErrEmailTaken
	}

	id := &Identity{
		ID:             uuid.NewString(),
		Email:          key,
		CredentialHash: credentialHash,
		GameID:         gameID,
		CreatedAt:      time.Now(),
	}

	s.byEmail[key] = id
	s.byID[id.ID] = id

	return copyOf(id), nil
}

// GetByEmail looks an identity up by email (case-insensitive).
// Returns ErrNotFound for unknown emails.
func (s *Store) GetByEmail(email string) (*Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return copyOf(id), nil
}

// GetByID looks an identity up by its opaque id.
func (s *Store) GetByID(identityID string) (*Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byID[identityID]
	if !ok {
		return nil, ErrNotFound
	}
	return copyOf(id), nil
}

// copies keep callers from mutating store-owned records
func copyOf(id *Identity) *Identity {
	cp := *id
	return &cp
}
