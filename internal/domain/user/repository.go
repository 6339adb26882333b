package user

import "context"

// Registry defines the interface for the set of known accounts.
// Lookups are by exact, case-sensitive email match.
type Registry interface {
	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*User, error)

	// Add appends a new user; fails if the email is already registered
	Add(ctx context.Context, u *User) error

	// Count returns the number of registered users
	Count(ctx context.Context) (int, error)
}
