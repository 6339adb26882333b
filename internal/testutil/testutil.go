// Package testutil holds shared fakes and helpers for service and handler
// tests.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/trustmed/trustmed/internal/domain/user"
	"github.com/trustmed/trustmed/internal/pkg/logger"
)

// NewTestLogger returns a logger that only emits at error level, keeping
// test output quiet.
func NewTestLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Format: "json"})
}

// InstantSleeper skips simulated latency and records how long it was asked
// to wait.
type InstantSleeper struct {
	mu    sync.Mutex
	Calls []time.Duration
}

func (s *InstantSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, d)
	return ctx.Err()
}

// FailingStore is a session store whose operations fail with configured
// errors. Zero-value operations succeed against an in-memory slot.
type FailingStore struct {
	SaveError  error
	LoadError  error
	ClearError error

	mu   sync.Mutex
	slot *user.User
}

func (s *FailingStore) Save(ctx context.Context, u *user.User) error {
	if s.SaveError != nil {
		return s.SaveError
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.slot = &cp
	return nil
}

func (s *FailingStore) Load(ctx context.Context) (*user.User, error) {
	if s.LoadError != nil {
		return nil, s.LoadError
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.slot == nil {
		return nil, nil
	}
	cp := *s.slot
	return &cp, nil
}

func (s *FailingStore) Clear(ctx context.Context) error {
	if s.ClearError != nil {
		return s.ClearError
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slot = nil
	return nil
}
