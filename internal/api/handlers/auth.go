package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/trustmed/trustmed/internal/api/dto"
	"github.com/trustmed/trustmed/internal/auth"
	"github.com/trustmed/trustmed/internal/domain/user"
	"github.com/trustmed/trustmed/internal/pkg/errors"
	"github.com/trustmed/trustmed/internal/pkg/logger"
	"github.com/trustmed/trustmed/internal/pkg/utils"
	"github.com/trustmed/trustmed/internal/pkg/validator"
)

// AuthTokenConfig carries what the auth handler needs to mint tokens.
type AuthTokenConfig struct {
	JWTSecret   string
	TokenExpiry time.Duration
	// Secure marks session cookies HTTPS-only
	Secure bool
	// CallTimeout bounds a sign-in/sign-up call, simulated latency included
	CallTimeout time.Duration
}

// AuthHandler handles the session lifecycle endpoints
type AuthHandler struct {
	service   user.AuthService
	cfg       AuthTokenConfig
	logger    *logger.Logger
	validator *validator.Validator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service user.AuthService, cfg AuthTokenConfig, log *logger.Logger, val *validator.Validator) *AuthHandler {
	return &AuthHandler{
		service:   service,
		cfg:       cfg,
		logger:    log,
		validator: val,
	}
}

// SignIn handles user sign-in
// @Summary Sign in
// @Description Authenticate with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignInRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse "Signed in"
// @Failure 400 {object} utils.ErrorResponse "Invalid request"
// @Failure 401 {object} utils.ErrorResponse "Invalid credentials"
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req dto.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	ctx, cancel := h.callContext(r)
	defer cancel()

	result, err := h.service.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		h.writeAuthError(w, err)
		return
	}

	h.completeSession(w, result, http.StatusOK)
}

// SignUp handles user registration
// @Summary Register
// @Description Register a new account and sign it in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignUpRequest true "Registration details"
// @Success 201 {object} dto.AuthResponse "Registered"
// @Failure 400 {object} utils.ErrorResponse "Invalid request or validation error"
// @Failure 409 {object} utils.ErrorResponse "Email already registered"
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req dto.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	ctx, cancel := h.callContext(r)
	defer cancel()

	result, err := h.service.SignUp(ctx, user.SignUpData{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      user.Role(req.Role),
	})
	if err != nil {
		h.writeAuthError(w, err)
		return
	}

	h.completeSession(w, result, http.StatusCreated)
}

// SignOut handles user sign-out
// @Summary Sign out
// @Description Clear the current session
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.SuccessResponse "Signed out"
// @Router /auth/signout [post]
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.service.SignOut(r.Context()); err != nil {
		h.writeAuthError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    "",
		HttpOnly: true,
		Secure:   h.cfg.Secure,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   -1,
	})

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Signed out", nil)
}

// Me returns the current session
// @Summary Current session
// @Description Return the signed-in user, or an unauthenticated marker
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.SessionResponse "Session state"
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	current, err := h.service.CurrentUser(r.Context())
	if err != nil {
		h.writeAuthError(w, err)
		return
	}

	utils.WriteSuccess(w, http.StatusOK, dto.SessionResponse{
		Authenticated: current != nil,
		User:          current,
	})
}

// callContext bounds an auth call. The timeout covers the simulated
// round-trip, so a hung store surfaces as an error instead of a stall.
func (h *AuthHandler) callContext(r *http.Request) (context.Context, context.CancelFunc) {
	if h.cfg.CallTimeout <= 0 {
		return r.Context(), func() {}
	}
	return context.WithTimeout(r.Context(), h.cfg.CallTimeout)
}

func (h *AuthHandler) completeSession(w http.ResponseWriter, result *user.AuthResult, status int) {
	token, err := auth.MintToken(result.User, h.cfg.JWTSecret, h.cfg.TokenExpiry)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to mint token")
		utils.WriteError(w, errors.Internal("Failed to mint token", err))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "accessToken",
		Value:    token,
		HttpOnly: true,
		Secure:   h.cfg.Secure,
		SameSite: http.SameSiteStrictMode,
		Path:     "/",
		MaxAge:   int(h.cfg.TokenExpiry.Seconds()),
	})

	h.logger.WithFields(map[string]interface{}{
		"user_id":  result.User.ID,
		"role":     result.User.Role,
		"redirect": result.Landing,
	}).Info("Session established")

	utils.WriteSuccess(w, status, dto.AuthResponse{
		AccessToken: token,
		Redirect:    result.Landing,
		User:        result.User,
	})
}

func (h *AuthHandler) writeAuthError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		utils.WriteError(w, appErr)
		return
	}
	utils.WriteError(w, errors.Internal("Authentication failed", err))
}
