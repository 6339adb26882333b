package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Session SessionConfig
	Auth    AuthConfig
	Logging LoggingConfig
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	FrontendURL     string
	Environment     string
}

// SessionConfig contains durable session storage configuration
type SessionConfig struct {
	// Path of the sqlite file backing the session slot
	Path string
	// TTL after which the sweeper clears a stale session; 0 disables
	TTL time.Duration
	// Cron spec for the expiry sweeper
	SweepSchedule string
}

// AuthConfig contains authentication configuration
type AuthConfig struct {
	JWTSecret         string
	AccessTokenExpiry time.Duration
	// Simulated backend round-trip applied to sign-in/sign-up
	SimulatedLatency time.Duration
	// Upper bound on a sign-in/sign-up call including the simulated latency
	CallTimeout time.Duration
	BCryptCost  int
	// Shared demo credential every seeded account signs in with
	DemoPassword string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string // json or console
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors as it's optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:3000"),
			Environment:     getEnv("ENVIRONMENT", "development"),
		},
		Session: SessionConfig{
			Path:          getEnv("SESSION_DB_PATH", "./session.db"),
			TTL:           getEnvAsDuration("SESSION_TTL", 0),
			SweepSchedule: getEnv("SESSION_SWEEP_SCHEDULE", "@every 10m"),
		},
		Auth: AuthConfig{
			JWTSecret:         getEnv("JWT_SECRET", "trustmed-demo-secret"),
			AccessTokenExpiry: getEnvAsDuration("JWT_ACCESS_EXPIRY", 24*time.Hour),
			SimulatedLatency:  getEnvAsDuration("AUTH_SIMULATED_LATENCY", time.Second),
			CallTimeout:       getEnvAsDuration("AUTH_CALL_TIMEOUT", 5*time.Second),
			BCryptCost:        getEnvAsInt("BCRYPT_COST", 10),
			DemoPassword:      getEnv("AUTH_DEMO_PASSWORD", "password123"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Auth.CallTimeout <= c.Auth.SimulatedLatency {
		return fmt.Errorf("auth call timeout (%s) must exceed simulated latency (%s)",
			c.Auth.CallTimeout, c.Auth.SimulatedLatency)
	}

	if c.Session.Path == "" {
		return fmt.Errorf("session storage path must be set")
	}

	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
