package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustmed/trustmed/internal/domain/user"
	"github.com/trustmed/trustmed/internal/pkg/validator"
	"github.com/trustmed/trustmed/internal/repository/memory"
	"github.com/trustmed/trustmed/internal/services"
	"github.com/trustmed/trustmed/internal/testutil"
)

func newAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	svc, err := services.NewAuthService(
		memory.NewSeededUserRegistry(),
		memory.NewSessionStore(),
		services.AuthConfig{DemoPassword: "password123", BCryptCost: 4},
		testutil.NewTestLogger(),
		&testutil.InstantSleeper{},
	)
	require.NoError(t, err)

	return NewAuthHandler(svc, AuthTokenConfig{
		JWTSecret:   "test-secret",
		TokenExpiry: time.Hour,
		CallTimeout: 5 * time.Second,
	}, testutil.NewTestLogger(), validator.New())
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestAuthHandler_SignIn(t *testing.T) {
	tests := []struct {
		name         string
		body         map[string]string
		wantStatus   int
		wantRedirect string
	}{
		{
			name:         "patient lands on dashboard",
			body:         map[string]string{"email": "patient@example.com", "password": "password123"},
			wantStatus:   http.StatusOK,
			wantRedirect: "/dashboard",
		},
		{
			name:         "admin lands on admin console",
			body:         map[string]string{"email": "admin@example.com", "password": "password123"},
			wantStatus:   http.StatusOK,
			wantRedirect: "/admin",
		},
		{
			name:       "wrong password is unauthorized",
			body:       map[string]string{"email": "patient@example.com", "password": "nope"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown email gets the same status",
			body:       map[string]string{"email": "ghost@example.com", "password": "password123"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed email fails validation",
			body:       map[string]string{"email": "not-an-email", "password": "password123"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing password fails validation",
			body:       map[string]string{"email": "patient@example.com"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newAuthHandler(t)
			rr := postJSON(t, handler.SignIn, "/api/v1/auth/signin", tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp struct {
				Success bool `json:"success"`
				Data    struct {
					AccessToken string     `json:"accessToken"`
					Redirect    string     `json:"redirect"`
					User        *user.User `json:"user"`
				} `json:"data"`
			}
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.True(t, resp.Success)
			assert.NotEmpty(t, resp.Data.AccessToken)
			assert.Equal(t, tt.wantRedirect, resp.Data.Redirect)
			assert.Equal(t, tt.body["email"], resp.Data.User.Email)

			cookies := rr.Result().Cookies()
			require.NotEmpty(t, cookies)
			assert.Equal(t, "accessToken", cookies[0].Name)
			assert.True(t, cookies[0].HttpOnly)
		})
	}
}

func TestAuthHandler_SignUp(t *testing.T) {
	handler := newAuthHandler(t)

	rr := postJSON(t, handler.SignUp, "/api/v1/auth/signup", map[string]string{
		"email":     "nurse@example.com",
		"password":  "whatever6",
		"firstName": "Nina",
		"lastName":  "Gomez",
		"role":      "nurse",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp struct {
		Data struct {
			Redirect string     `json:"redirect"`
			User     *user.User `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "/dashboard", resp.Data.Redirect)
	assert.Equal(t, user.RoleNurse, resp.Data.User.Role)
	assert.False(t, resp.Data.User.Verified)

	// The same email cannot register twice.
	rr = postJSON(t, handler.SignUp, "/api/v1/auth/signup", map[string]string{
		"email":     "nurse@example.com",
		"password":  "whatever6",
		"firstName": "Nina",
		"lastName":  "Gomez",
		"role":      "nurse",
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestAuthHandler_SignUpRejectsUnknownRole(t *testing.T) {
	handler := newAuthHandler(t)

	rr := postJSON(t, handler.SignUp, "/api/v1/auth/signup", map[string]string{
		"email":     "x@example.com",
		"password":  "whatever6",
		"firstName": "X",
		"lastName":  "Y",
		"role":      "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAuthHandler_SignOutAndMe(t *testing.T) {
	handler := newAuthHandler(t)

	rr := postJSON(t, handler.SignIn, "/api/v1/auth/signin", map[string]string{
		"email": "patient@example.com", "password": "password123",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	// Session visible through /me.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rr = httptest.NewRecorder()
	handler.Me(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var me struct {
		Data struct {
			Authenticated bool       `json:"authenticated"`
			User          *user.User `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&me))
	assert.True(t, me.Data.Authenticated)
	assert.Equal(t, "patient@example.com", me.Data.User.Email)

	// Sign out clears the session and expires the cookie.
	rr = postJSON(t, handler.SignOut, "/api/v1/auth/signout", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	cookies := rr.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, -1, cookies[0].MaxAge)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rr = httptest.NewRecorder()
	handler.Me(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	me.Data.User = nil
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&me))
	assert.False(t, me.Data.Authenticated)
	assert.Nil(t, me.Data.User)
}
