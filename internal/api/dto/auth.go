package dto

import "github.com/trustmed/trustmed/internal/domain/user"

// SignInRequest represents a sign-in request
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUpRequest represents a registration request
type SignUpRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Role      string `json:"role" validate:"required,oneof=patient provider nurse partner admin"`
}

// AuthResponse carries the signed-in user, their token, and where the
// client should navigate next.
type AuthResponse struct {
	AccessToken string     `json:"accessToken"`
	Redirect    string     `json:"redirect"`
	User        *user.User `json:"user"`
}

// SessionResponse represents the current session
type SessionResponse struct {
	Authenticated bool       `json:"authenticated"`
	User          *user.User `json:"user,omitempty"`
}
