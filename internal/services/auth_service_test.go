package services

import (
	"context"
	"testing"
	"time"

	"github.com/trustmed/trustmed/internal/domain/user"
	"github.com/trustmed/trustmed/internal/pkg/errors"
	"github.com/trustmed/trustmed/internal/repository/memory"
	"github.com/trustmed/trustmed/internal/testutil"
)

func newTestAuthService(t *testing.T, store *memory.SessionStore) user.AuthService {
	t.Helper()
	if store == nil {
		store = memory.NewSessionStore()
	}
	svc, err := NewAuthService(
		memory.NewSeededUserRegistry(),
		store,
		AuthConfig{DemoPassword: "password123", SimulatedLatency: time.Second, BCryptCost: 4},
		testutil.NewTestLogger(),
		&testutil.InstantSleeper{},
	)
	if err != nil {
		t.Fatalf("NewAuthService() error = %v", err)
	}
	return svc
}

func TestAuthService_SignIn(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		wantErr     bool
		wantCode    string
		wantLanding string
	}{
		{
			name:        "patient signs in",
			email:       "patient@example.com",
			password:    "password123",
			wantLanding: "/dashboard",
		},
		{
			name:        "provider signs in",
			email:       "provider@example.com",
			password:    "password123",
			wantLanding: "/provider/dashboard",
		},
		{
			name:        "admin signs in",
			email:       "admin@example.com",
			password:    "password123",
			wantLanding: "/admin",
		},
		{
			name:     "wrong password",
			email:    "patient@example.com",
			password: "letmein",
			wantErr:  true,
			wantCode: errors.ErrCodeInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "password123",
			wantErr:  true,
			wantCode: errors.ErrCodeInvalidCredentials,
		},
		{
			name:     "email match is case sensitive",
			email:    "Patient@Example.com",
			password: "password123",
			wantErr:  true,
			wantCode: errors.ErrCodeInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(t, nil)
			ctx := context.Background()

			result, err := svc.SignIn(ctx, tt.email, tt.password)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SignIn() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.IsCode(err, tt.wantCode) {
					t.Errorf("SignIn() error code = %v, want %v", err, tt.wantCode)
				}
				return
			}
			if result.User.Email != tt.email {
				t.Errorf("SignIn() email = %v, want %v", result.User.Email, tt.email)
			}
			if result.Landing != tt.wantLanding {
				t.Errorf("SignIn() landing = %v, want %v", result.Landing, tt.wantLanding)
			}

			current, err := svc.CurrentUser(ctx)
			if err != nil {
				t.Fatalf("CurrentUser() error = %v", err)
			}
			if current == nil || current.Email != tt.email {
				t.Errorf("CurrentUser() = %v, want %v", current, tt.email)
			}
		})
	}
}

func TestAuthService_SignInFailureRevealsNothing(t *testing.T) {
	svc := newTestAuthService(t, nil)
	ctx := context.Background()

	_, errUnknown := svc.SignIn(ctx, "nobody@example.com", "password123")
	_, errWrongPw := svc.SignIn(ctx, "patient@example.com", "wrong")

	if errUnknown == nil || errWrongPw == nil {
		t.Fatal("expected both sign-ins to fail")
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Errorf("failure messages differ: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestAuthService_SignUp(t *testing.T) {
	tests := []struct {
		name        string
		data        user.SignUpData
		wantErr     bool
		wantCode    string
		wantLanding string
	}{
		{
			name: "patient registers",
			data: user.SignUpData{
				Email:     "new@example.com",
				Password:  "whatever",
				FirstName: "New",
				LastName:  "Patient",
				Role:      user.RolePatient,
			},
			wantLanding: "/dashboard",
		},
		{
			name: "provider goes to onboarding",
			data: user.SignUpData{
				Email:     "clinic@example.com",
				Password:  "whatever",
				FirstName: "Dr. Ana",
				LastName:  "Silva",
				Role:      user.RoleProvider,
			},
			wantLanding: "/provider/onboarding",
		},
		{
			name: "duplicate email rejected",
			data: user.SignUpData{
				Email: "patient@example.com",
				Role:  user.RolePatient,
			},
			wantErr:  true,
			wantCode: errors.ErrCodeUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestAuthService(t, nil)
			ctx := context.Background()

			result, err := svc.SignUp(ctx, tt.data)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SignUp() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.IsCode(err, tt.wantCode) {
					t.Errorf("SignUp() error code = %v, want %v", err, tt.wantCode)
				}
				return
			}
			if result.User.ID == "" {
				t.Error("SignUp() assigned empty ID")
			}
			if result.User.Verified {
				t.Error("SignUp() user starts verified, want unverified")
			}
			if result.User.PreferredLanguage != "en" {
				t.Errorf("SignUp() preferredLanguage = %v, want en", result.User.PreferredLanguage)
			}
			if result.Landing != tt.wantLanding {
				t.Errorf("SignUp() landing = %v, want %v", result.Landing, tt.wantLanding)
			}
		})
	}
}

func TestAuthService_SignUpThenSignInSameSession(t *testing.T) {
	svc := newTestAuthService(t, nil)
	ctx := context.Background()

	result, err := svc.SignUp(ctx, user.SignUpData{
		Email:     "fresh@example.com",
		Password:  "irrelevant",
		FirstName: "Fresh",
		LastName:  "Account",
		Role:      user.RolePatient,
	})
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	if err := svc.SignOut(ctx); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}

	// Registration survives sign-out; the shared credential works for the
	// new account too.
	signedIn, err := svc.SignIn(ctx, "fresh@example.com", "password123")
	if err != nil {
		t.Fatalf("SignIn() after SignOut error = %v", err)
	}
	if signedIn.User.ID != result.User.ID {
		t.Errorf("SignIn() user ID = %v, want %v", signedIn.User.ID, result.User.ID)
	}
}

func TestAuthService_SignOut(t *testing.T) {
	store := memory.NewSessionStore()
	svc := newTestAuthService(t, store)
	ctx := context.Background()

	if _, err := svc.SignIn(ctx, "patient@example.com", "password123"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if err := svc.SignOut(ctx); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}

	current, err := svc.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if current != nil {
		t.Errorf("CurrentUser() after SignOut = %v, want nil", current)
	}

	stored, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("store.Load() error = %v", err)
	}
	if stored != nil {
		t.Errorf("store still holds %v after SignOut", stored)
	}
}

func TestAuthService_CurrentUserRehydrates(t *testing.T) {
	store := memory.NewSessionStore()

	first := newTestAuthService(t, store)
	ctx := context.Background()
	if _, err := first.SignIn(ctx, "provider@example.com", "password123"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}

	// A fresh service over the same store starts with a cold cache and
	// must rehydrate from durable storage.
	second := newTestAuthService(t, store)
	current, err := second.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if current == nil || current.Email != "provider@example.com" {
		t.Errorf("CurrentUser() = %v, want provider@example.com", current)
	}
}

func TestAuthService_CurrentUserColdAndEmpty(t *testing.T) {
	svc := newTestAuthService(t, nil)

	current, err := svc.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if current != nil {
		t.Errorf("CurrentUser() on empty store = %v, want nil", current)
	}
}

func TestAuthService_SignInHonorsCancelledContext(t *testing.T) {
	svc, err := NewAuthService(
		memory.NewSeededUserRegistry(),
		memory.NewSessionStore(),
		AuthConfig{DemoPassword: "password123", SimulatedLatency: time.Second, BCryptCost: 4},
		testutil.NewTestLogger(),
		RealSleeper{},
	)
	if err != nil {
		t.Fatalf("NewAuthService() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.SignIn(ctx, "patient@example.com", "password123"); err == nil {
		t.Error("SignIn() with cancelled context succeeded, want error")
	}
}

func TestAuthService_SessionStoreFailureSurfaces(t *testing.T) {
	store := &testutil.FailingStore{SaveError: errors.Storage("disk full", nil)}
	svc, err := NewAuthService(
		memory.NewSeededUserRegistry(),
		store,
		AuthConfig{DemoPassword: "password123", BCryptCost: 4},
		testutil.NewTestLogger(),
		&testutil.InstantSleeper{},
	)
	if err != nil {
		t.Fatalf("NewAuthService() error = %v", err)
	}

	_, err = svc.SignIn(context.Background(), "patient@example.com", "password123")
	if !errors.IsCode(err, errors.ErrCodeStorage) {
		t.Errorf("SignIn() error = %v, want storage error", err)
	}
}
