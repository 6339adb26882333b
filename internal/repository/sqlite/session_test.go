package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/trustmed/trustmed/internal/domain/user"
)

func newTestStore(t *testing.T) *SessionStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testUser() *user.User {
	return &user.User{
		ID:                "1",
		Email:             "patient@example.com",
		Role:              user.RolePatient,
		FirstName:         "John",
		LastName:          "Doe",
		PreferredLanguage: "en",
		Languages:         []string{"English"},
		Verified:          true,
	}
}

func TestSessionStore_SaveAndLoad(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testUser()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got == nil {
		t.Fatal("Load() = nil, want stored user")
	}
	if got.Email != "patient@example.com" || got.Role != user.RolePatient {
		t.Errorf("Load() = %+v, want stored user", got)
	}
	if !got.Verified {
		t.Error("Load() dropped Verified flag")
	}
}

func TestSessionStore_LoadEmpty(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != nil {
		t.Errorf("Load() on empty store = %+v, want nil", got)
	}
}

func TestSessionStore_SaveReplaces(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testUser()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	second := testUser()
	second.ID = "2"
	second.Email = "provider@example.com"
	second.Role = user.RoleProvider
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Email != "provider@example.com" {
		t.Errorf("Load() = %v, want last writer provider@example.com", got.Email)
	}
}

func TestSessionStore_Clear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testUser()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != nil {
		t.Errorf("Load() after Clear = %+v, want nil", got)
	}

	// Clearing an already empty slot is a no-op.
	if err := store.Clear(ctx); err != nil {
		t.Errorf("Clear() on empty store error = %v", err)
	}
}

func TestSessionStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := store.Save(ctx, testUser()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open() after close error = %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got == nil || got.ID != "1" {
		t.Errorf("Load() after reopen = %+v, want user 1", got)
	}
}

func TestSessionStore_Sweep(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testUser()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Zero TTL disables sweeping.
	n, err := store.Sweep(ctx, 0)
	if err != nil {
		t.Fatalf("Sweep(0) error = %v", err)
	}
	if n != 0 {
		t.Errorf("Sweep(0) cleared %d slots, want 0", n)
	}

	// A generous TTL keeps a fresh session.
	n, err = store.Sweep(ctx, time.Hour)
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if n != 0 {
		t.Errorf("Sweep() cleared %d fresh slots, want 0", n)
	}

	// Backdate the slot past the TTL and sweep again.
	if _, err := store.db.Exec(
		`UPDATE sessions SET saved_at = ?`, time.Now().Add(-2*time.Hour).Unix()); err != nil {
		t.Fatalf("backdate error = %v", err)
	}
	n, err = store.Sweep(ctx, time.Hour)
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if n != 1 {
		t.Errorf("Sweep() cleared %d slots, want 1", n)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != nil {
		t.Errorf("Load() after sweep = %+v, want nil", got)
	}
}
