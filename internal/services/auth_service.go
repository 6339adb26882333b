package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/trustmed/trustmed/internal/domain/session"
	"github.com/trustmed/trustmed/internal/domain/user"
	"github.com/trustmed/trustmed/internal/pkg/errors"
	"github.com/trustmed/trustmed/internal/pkg/logger"
	"github.com/trustmed/trustmed/internal/pkg/metrics"
)

// Sleeper abstracts the simulated backend round-trip so tests can skip it.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// RealSleeper waits on the wall clock, honoring context cancellation.
type RealSleeper struct{}

func (RealSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// AuthConfig carries the knobs the auth service needs.
type AuthConfig struct {
	// DemoPassword is the shared credential every account signs in with
	DemoPassword string
	// SimulatedLatency is applied to sign-in and sign-up calls
	SimulatedLatency time.Duration
	BCryptCost       int
}

// AuthService implements user.AuthService. At most one session exists per
// service; sign-in, sign-up and sign-out serialize on an internal mutex so
// overlapping calls resolve to a last-writer-wins session.
type AuthService struct {
	registry user.Registry
	store    session.Store
	logger   *logger.Logger
	sleeper  Sleeper

	secretHash []byte
	latency    time.Duration

	mu      sync.Mutex
	current *user.User
	loaded  bool
}

// NewAuthService hashes the demo credential once and returns a service over
// the given registry and session store.
func NewAuthService(registry user.Registry, store session.Store, cfg AuthConfig, log *logger.Logger, sleeper Sleeper) (user.AuthService, error) {
	cost := cfg.BCryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.DemoPassword), cost)
	if err != nil {
		return nil, errors.Internal("failed to hash demo credential", err)
	}
	if sleeper == nil {
		sleeper = RealSleeper{}
	}
	return &AuthService{
		registry:   registry,
		store:      store,
		logger:     log,
		sleeper:    sleeper,
		secretHash: hash,
		latency:    cfg.SimulatedLatency,
	}, nil
}

// SignIn authenticates by email and the shared demo credential. Unknown
// email and wrong password both come back as the same invalid-credentials
// error so the response never reveals which accounts exist.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*user.AuthResult, error) {
	if err := s.sleeper.Sleep(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.registry.GetByEmail(ctx, email)
	if err != nil && !errors.IsCode(err, errors.ErrCodeNotFound) {
		s.logger.ErrorWithErr(err, "Registry lookup failed during sign-in")
		return nil, err
	}

	if u == nil || bcrypt.CompareHashAndPassword(s.secretHash, []byte(password)) != nil {
		metrics.RecordAuthAttempt("sign_in", "failure")
		return nil, errors.InvalidCredentials()
	}

	if err := s.store.Save(ctx, u); err != nil {
		s.logger.ErrorWithErr(err, "Failed to persist session")
		return nil, err
	}
	s.current = u
	s.loaded = true

	metrics.RecordAuthAttempt("sign_in", "success")
	s.logger.WithFields(map[string]interface{}{
		"user_id": u.ID,
		"role":    u.Role,
	}).Info("User signed in")

	return &user.AuthResult{User: u, Landing: user.SignInLanding(u.Role)}, nil
}

// SignUp registers a new account and signs it in. New accounts default to
// English, start unverified, and get a fresh unique ID.
func (s *AuthService) SignUp(ctx context.Context, data user.SignUpData) (*user.AuthResult, error) {
	if err := s.sleeper.Sleep(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := &user.User{
		ID:                uuid.NewString(),
		Email:             data.Email,
		Role:              data.Role,
		FirstName:         data.FirstName,
		LastName:          data.LastName,
		PreferredLanguage: "en",
		Languages:         []string{"English"},
		Verified:          false,
	}

	if err := s.registry.Add(ctx, u); err != nil {
		if errors.IsCode(err, errors.ErrCodeUserAlreadyExists) {
			metrics.RecordAuthAttempt("sign_up", "duplicate")
			return nil, err
		}
		s.logger.ErrorWithErr(err, "Failed to register user")
		return nil, err
	}

	if err := s.store.Save(ctx, u); err != nil {
		s.logger.ErrorWithErr(err, "Failed to persist session")
		return nil, err
	}
	s.current = u
	s.loaded = true

	metrics.RecordAuthAttempt("sign_up", "success")
	s.logger.WithFields(map[string]interface{}{
		"user_id": u.ID,
		"role":    u.Role,
	}).Info("User registered")

	return &user.AuthResult{User: u, Landing: user.SignUpLanding(u.Role)}, nil
}

// SignOut clears the session. The registry keeps the account, so signing
// back in with the same email works.
func (s *AuthService) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		s.logger.ErrorWithErr(err, "Failed to clear session")
		return err
	}
	s.current = nil
	s.loaded = true

	metrics.RecordAuthAttempt("sign_out", "success")
	s.logger.Info("User signed out")
	return nil
}

// CurrentUser returns the signed-in user, rehydrating the cache from the
// session store the first time it is asked. Nil means signed out.
func (s *AuthService) CurrentUser(ctx context.Context) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.current, nil
	}

	u, err := s.store.Load(ctx)
	if err != nil {
		s.logger.ErrorWithErr(err, "Failed to load session")
		return nil, err
	}
	s.current = u
	s.loaded = true
	return u, nil
}
