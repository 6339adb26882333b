package session

import (
	"context"

	"github.com/trustmed/trustmed/internal/domain/user"
)

// Store persists at most one signed-in user per client, in a single
// named slot of durable storage. No expiry or integrity protection is
// applied by the store itself.
type Store interface {
	// Save writes the user record to the slot, replacing any previous one
	Save(ctx context.Context, u *user.User) error

	// Load reads the slot; returns (nil, nil) when no session is stored
	Load(ctx context.Context) (*user.User, error)

	// Clear empties the slot
	Clear(ctx context.Context) error
}
