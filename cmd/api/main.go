package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/trustmed/trustmed/internal/api/handlers"
	"github.com/trustmed/trustmed/internal/api/router"
	"github.com/trustmed/trustmed/internal/config"
	"github.com/trustmed/trustmed/internal/i18n"
	"github.com/trustmed/trustmed/internal/pkg/logger"
	"github.com/trustmed/trustmed/internal/pkg/validator"
	"github.com/trustmed/trustmed/internal/repository/memory"
	"github.com/trustmed/trustmed/internal/repository/sqlite"
	"github.com/trustmed/trustmed/internal/search"
	"github.com/trustmed/trustmed/internal/services"
)

// @title TrustMed API
// @version 1.0
// @description Medical travel marketplace backend: provider catalog search, mock authentication and role-gated dashboards.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	log.Info("Starting TrustMed API server")

	store, err := sqlite.Open(cfg.Session.Path)
	if err != nil {
		log.WithError(err).Fatal("Failed to open session store")
	}
	defer store.Close()

	sweeper := startSessionSweeper(cfg, store, log)
	if sweeper != nil {
		defer sweeper.Stop()
	}

	// Seeded catalogs backing the demo marketplace
	registry := memory.NewSeededUserRegistry()
	providerCatalog := memory.NewProviderCatalog()
	destinations := memory.NewDestinationList()
	dashboardData := memory.NewDashboardData()
	adminData := memory.NewAdminData()

	resolver, err := i18n.NewResolver()
	if err != nil {
		log.WithError(err).Fatal("Failed to load translation catalogs")
	}

	authService, err := services.NewAuthService(registry, store, services.AuthConfig{
		DemoPassword:     cfg.Auth.DemoPassword,
		SimulatedLatency: cfg.Auth.SimulatedLatency,
		BCryptCost:       cfg.Auth.BCryptCost,
	}, log, nil)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize auth service")
	}
	providerService := services.NewProviderService(providerCatalog, search.New(), log)
	dashboardService := services.NewDashboardService(dashboardData, log)
	adminService := services.NewAdminService(adminData, registry, log)

	val := validator.New()
	h := &router.Handlers{
		Health: handlers.NewHealthHandler(store, log),
		Auth: handlers.NewAuthHandler(authService, handlers.AuthTokenConfig{
			JWTSecret:   cfg.Auth.JWTSecret,
			TokenExpiry: cfg.Auth.AccessTokenExpiry,
			Secure:      cfg.Server.Environment == "production",
			CallTimeout: cfg.Auth.CallTimeout,
		}, log, val),
		Provider:    handlers.NewProviderHandler(providerService, log, val),
		Destination: handlers.NewDestinationHandler(destinations, log),
		Dashboard:   handlers.NewDashboardHandler(dashboardService, log),
		Admin:       handlers.NewAdminHandler(adminService, log),
		I18n:        handlers.NewI18nHandler(resolver),
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server failed")
		}
	case <-ctx.Done():
		log.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("Graceful shutdown failed")
		}
	}
	log.Info("Server stopped")
}

// startSessionSweeper schedules periodic expiry of the persisted session.
// Returns nil when the TTL is zero and sweeping is disabled.
func startSessionSweeper(cfg *config.Config, store *sqlite.SessionStore, log *logger.Logger) *cron.Cron {
	if cfg.Session.TTL <= 0 {
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(cfg.Session.SweepSchedule, func() {
		swept, err := store.Sweep(context.Background(), cfg.Session.TTL)
		if err != nil {
			log.WithError(err).Error("Session sweep failed")
			return
		}
		if swept > 0 {
			log.Infof("Cleared %d expired session(s)", swept)
		}
	})
	if err != nil {
		log.WithError(err).Fatal("Invalid session sweep schedule")
	}
	c.Start()
	return c
}
