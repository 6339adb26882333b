package memory

import (
	"context"
	"sync"

	"github.com/trustmed/trustmed/internal/domain/user"
	"github.com/trustmed/trustmed/internal/pkg/errors"
)

// UserRegistry is the process-local account registry. Sign-ups append to
// it at runtime; a restart keeps only the seeded demo accounts.
type UserRegistry struct {
	mu      sync.RWMutex
	byID    map[string]*user.User
	byEmail map[string]*user.User
	order   []string
}

// NewUserRegistry creates an empty registry.
func NewUserRegistry() *UserRegistry {
	return &UserRegistry{
		byID:    make(map[string]*user.User),
		byEmail: make(map[string]*user.User),
	}
}

// NewSeededUserRegistry creates a registry holding the demo accounts.
func NewSeededUserRegistry() *UserRegistry {
	r := NewUserRegistry()
	for _, u := range seedUsers() {
		r.byID[u.ID] = u
		r.byEmail[u.Email] = u
		r.order = append(r.order, u.ID)
	}
	return r
}

// GetByEmail retrieves a user by exact, case-sensitive email match.
func (r *UserRegistry) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, errors.NotFound("user")
	}
	cp := *u
	return &cp, nil
}

// GetByID retrieves a user by ID.
func (r *UserRegistry) GetByID(ctx context.Context, id string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, errors.NotFound("user")
	}
	cp := *u
	return &cp, nil
}

// Add appends a new user, failing on a duplicate email.
func (r *UserRegistry) Add(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[u.Email]; ok {
		return errors.UserAlreadyExists()
	}

	cp := *u
	r.byID[cp.ID] = &cp
	r.byEmail[cp.Email] = &cp
	r.order = append(r.order, cp.ID)
	return nil
}

// Count returns the number of registered users.
func (r *UserRegistry) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order), nil
}

func seedUsers() []*user.User {
	return []*user.User{
		{
			ID:                "1",
			Email:             "patient@example.com",
			Role:              user.RolePatient,
			FirstName:         "John",
			LastName:          "Doe",
			Phone:             "+1-555-0123",
			Country:           "United States",
			PreferredLanguage: "en",
			Languages:         []string{"English"},
			Verified:          true,
		},
		{
			ID:                "2",
			Email:             "provider@example.com",
			Role:              user.RoleProvider,
			FirstName:         "Dr. Maria",
			LastName:          "Rodriguez",
			Phone:             "+52-55-1234-5678",
			Country:           "Mexico",
			PreferredLanguage: "es",
			Languages:         []string{"English", "Spanish"},
			Verified:          true,
		},
		{
			ID:                "3",
			Email:             "admin@example.com",
			Role:              user.RoleAdmin,
			FirstName:         "Admin",
			LastName:          "User",
			Phone:             "+1-555-0199",
			Country:           "United States",
			PreferredLanguage: "en",
			Languages:         []string{"English"},
			Verified:          true,
		},
	}
}
