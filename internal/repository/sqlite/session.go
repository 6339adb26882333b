package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	_ "modernc.org/sqlite"

	"github.com/trustmed/trustmed/internal/domain/user"
	apperrors "github.com/trustmed/trustmed/internal/pkg/errors"
)

// slotName is the single key the session record lives under, the
// durable-storage equivalent of the browser's localStorage key.
const slotName = "currentUser"

// SessionStore persists the session slot in a sqlite file so it
// survives process restarts.
type SessionStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the session database at path.
func Open(path string) (*SessionStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	s := &SessionStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *SessionStore) Close() error { return s.db.Close() }

// Ping verifies the database file is reachable.
func (s *SessionStore) Ping(ctx context.Context) error { return s.db.PingContext(ctx) }

func (s *SessionStore) migrate() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS sessions (
    slot TEXT PRIMARY KEY,
    payload TEXT NOT NULL,
    saved_at INTEGER NOT NULL
);
`)
	return err
}

// Save writes the user record to the slot, replacing any previous one.
func (s *SessionStore) Save(ctx context.Context, u *user.User) error {
	payload, err := json.Marshal(u)
	if err != nil {
		return apperrors.Storage("failed to serialize session", err)
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO sessions (slot, payload, saved_at) VALUES (?, ?, ?)
ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at;
`, slotName, string(payload), time.Now().Unix())
	if err != nil {
		return apperrors.Storage("failed to persist session", err)
	}
	return nil
}

// Load reads the slot; returns (nil, nil) when no session is stored.
func (s *SessionStore) Load(ctx context.Context) (*user.User, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM sessions WHERE slot = ?`, slotName).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Storage("failed to read session", err)
	}

	var u user.User
	if err := json.Unmarshal([]byte(payload), &u); err != nil {
		return nil, apperrors.Storage("failed to decode session", err)
	}
	return &u, nil
}

// Clear empties the slot.
func (s *SessionStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE slot = ?`, slotName); err != nil {
		return apperrors.Storage("failed to clear session", err)
	}
	return nil
}

// Sweep clears slots that were saved longer than ttl ago. A ttl of zero
// disables sweeping. Returns the number of cleared slots.
func (s *SessionStore) Sweep(ctx context.Context, ttl time.Duration) (int64, error) {
	if ttl <= 0 {
		return 0, nil
	}
	cutoff := time.Now().Add(-ttl).Unix()
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE saved_at < ?`, cutoff)
	if err != nil {
		return 0, apperrors.Storage("failed to sweep sessions", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
