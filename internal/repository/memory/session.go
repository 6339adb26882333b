package memory

import (
	"context"
	"sync"

	"github.com/trustmed/trustmed/internal/domain/user"
)

// SessionStore is an in-memory session slot. It satisfies the same
// contract as the sqlite store but loses the session on restart, so it
// is only suitable for tests.
type SessionStore struct {
	mu      sync.Mutex
	current *user.User
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Save writes the user record to the slot.
func (s *SessionStore) Save(ctx context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.current = &cp
	return nil
}

// Load reads the slot; (nil, nil) when empty.
func (s *SessionStore) Load(ctx context.Context) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, nil
	}
	cp := *s.current
	return &cp, nil
}

// Clear empties the slot.
func (s *SessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	return nil
}
