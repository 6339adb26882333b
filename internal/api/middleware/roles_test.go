package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/trustmed/trustmed/internal/auth"
	"github.com/trustmed/trustmed/internal/domain/user"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func requestWithRole(role user.Role) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	ctx := context.WithValue(req.Context(), UserRoleKey, role)
	return req.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name         string
		allowed      []user.Role
		role         user.Role
		wantStatus   int
		wantRedirect string
	}{
		{
			name:       "matching role passes through",
			allowed:    []user.Role{user.RoleAdmin},
			role:       user.RoleAdmin,
			wantStatus: http.StatusOK,
		},
		{
			name:         "patient hitting admin is redirected home",
			allowed:      []user.Role{user.RoleAdmin},
			role:         user.RolePatient,
			wantStatus:   http.StatusSeeOther,
			wantRedirect: "/dashboard",
		},
		{
			name:         "provider hitting admin is redirected to their dashboard",
			allowed:      []user.Role{user.RoleAdmin},
			role:         user.RoleProvider,
			wantStatus:   http.StatusSeeOther,
			wantRedirect: "/provider/dashboard",
		},
		{
			name:         "admin hitting patient dashboard is redirected to the console",
			allowed:      []user.Role{user.RolePatient, user.RoleNurse, user.RolePartner},
			role:         user.RoleAdmin,
			wantStatus:   http.StatusSeeOther,
			wantRedirect: "/admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			RequireRole(tt.allowed...)(okHandler()).ServeHTTP(rr, requestWithRole(tt.role))

			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if tt.wantRedirect == "" {
				return
			}

			var resp struct {
				Success  bool   `json:"success"`
				Redirect string `json:"redirect"`
			}
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Success {
				t.Error("redirect envelope claims success")
			}
			if resp.Redirect != tt.wantRedirect {
				t.Errorf("redirect = %q, want %q", resp.Redirect, tt.wantRedirect)
			}
		})
	}
}

func TestRequireRoleWithoutAuth(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)

	RequireRole(user.RoleAdmin)(okHandler()).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddleware(t *testing.T) {
	const secret = "test-secret"
	demo := &user.User{ID: "1", Email: "patient@example.com", Role: user.RolePatient}

	token, err := auth.MintToken(demo, secret, time.Hour)
	if err != nil {
		t.Fatalf("MintToken() error = %v", err)
	}

	var gotRole user.Role
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRole, _ = GetUserRole(r)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("bearer token accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		AuthMiddleware(secret)(next).ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rr.Code)
		}
		if gotRole != user.RolePatient {
			t.Errorf("role = %v, want patient", gotRole)
		}
	})

	t.Run("cookie accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
		rr := httptest.NewRecorder()

		AuthMiddleware(secret)(next).ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rr.Code)
		}
	})

	t.Run("missing token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		AuthMiddleware(secret)(next).ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rr.Code)
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		AuthMiddleware("other-secret")(next).ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rr.Code)
		}
	})
}
