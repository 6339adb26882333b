package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/trustmed/trustmed/internal/api/handlers"
	"github.com/trustmed/trustmed/internal/api/middleware"
	"github.com/trustmed/trustmed/internal/config"
	"github.com/trustmed/trustmed/internal/domain/user"
	"github.com/trustmed/trustmed/internal/pkg/logger"
	"github.com/trustmed/trustmed/internal/pkg/metrics"
)

type Handlers struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Provider    *handlers.ProviderHandler
	Destination *handlers.DestinationHandler
	Dashboard   *handlers.DashboardHandler
	Admin       *handlers.AdminHandler
	I18n        *handlers.I18nHandler
}

func New(cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(metrics.Middleware)
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	r.Use(middleware.RateLimit(100, 200)) // 100 req/sec, burst of 200

	// Public routes
	r.Group(func(r chi.Router) {
		// Swagger documentation
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		// Prometheus metrics
		r.Handle("/metrics", metrics.Handler())

		// Health checks
		r.Get("/health", h.Health.Healthz)
		r.Get("/healthz", h.Health.Healthz)
		r.Get("/readyz", h.Health.Readyz)

		// Session lifecycle
		r.Post("/api/v1/auth/signup", h.Auth.SignUp)
		r.Post("/api/v1/auth/signin", h.Auth.SignIn)
		r.Post("/api/v1/auth/signout", h.Auth.SignOut)
		r.Get("/api/v1/auth/me", h.Auth.Me)

		// Catalog and search
		r.Route("/api/v1/providers", func(r chi.Router) {
			r.Get("/", h.Provider.List)
			r.Get("/search", h.Provider.Search)
			r.Get("/featured", h.Provider.Featured)
			r.Get("/{id}", h.Provider.Get)
		})

		// Reference data
		r.Get("/api/v1/destinations", h.Destination.List)

		// Translations
		r.Route("/api/v1/i18n", func(r chi.Router) {
			r.Get("/", h.I18n.Locales)
			r.Get("/{locale}", h.I18n.Catalog)
			r.Get("/{locale}/resolve", h.I18n.Resolve)
		})
	})

	// Role-gated routes. Wrong-role access redirects to the caller's own
	// landing path instead of returning an error.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))
		r.Use(middleware.RequireRole(user.RolePatient, user.RoleNurse, user.RolePartner))

		r.Route("/api/v1/dashboard", func(r chi.Router) {
			r.Get("/", h.Dashboard.Overview)
			r.Get("/appointments", h.Dashboard.Appointments)
			r.Get("/messages", h.Dashboard.Messages)
			r.Get("/history", h.Dashboard.History)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))
		r.Use(middleware.RequireRole(user.RoleAdmin))

		r.Route("/api/v1/admin", func(r chi.Router) {
			r.Get("/stats", h.Admin.Stats)
			r.Get("/verifications", h.Admin.Verifications)
			r.Get("/activity", h.Admin.Activity)
		})
	})

	return r
}
