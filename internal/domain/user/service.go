package user

import "context"

// SignUpData carries the fields a new account is created from.
type SignUpData struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      Role
}

// AuthResult is the outcome of a sign-in or sign-up: the authenticated
// user and where the client should land next.
type AuthResult struct {
	User    *User
	Landing string
}

// AuthService defines the session lifecycle backed by the registry.
// Failures (bad credentials, duplicate registration) come back as error
// values; none are fatal.
type AuthService interface {
	// SignIn authenticates by email and the shared demo secret and
	// persists the session on success
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)

	// SignUp registers a new account and persists its session
	SignUp(ctx context.Context, data SignUpData) (*AuthResult, error)

	// SignOut clears the persisted session; the registry is untouched
	SignOut(ctx context.Context) error

	// CurrentUser returns the cached session, rehydrating from durable
	// storage when the cache is cold; nil when signed out
	CurrentUser(ctx context.Context) (*User, error)
}
