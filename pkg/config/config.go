package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Config holds all configuration for the application
type Config struct {
	// HTTP server
	HTTPAddr            string        `conf:"default::8080,env:HTTP_ADDR"`
	ReadTimeout         time.Duration `conf:"default:15s,env:HTTP_READ_TIMEOUT"`
	WriteTimeout        time.Duration `conf:"default:15s,env:HTTP_WRITE_TIMEOUT"`
	IdleTimeout         time.Duration `conf:"default:60s,env:HTTP_IDLE_TIMEOUT"`
	HandlerTimeout      time.Duration `conf:"default:30s,env:HTTP_HANDLER_TIMEOUT"`
	ShutdownTimeout     time.Duration `conf:"default:30s,env:HTTP_SHUTDOWN_TIMEOUT"`
	RequestBodyMaxBytes int64         `conf:"default:1048576,env:HTTP_BODY_MAX_BYTES"`
	RateLimitPerMinute  int           `conf:"default:600,env:RATE_LIMIT_PER_MINUTE"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	LogFormat   string `conf:"default:json,enum:json|text,env:LOG_FORMAT"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// CORS: comma-separated list of allowed origins; use * to allow all (dev only)
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Observability
	ServiceName    string `conf:"default:auctionhouse,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// ValidateForProduction enforces security requirements when ENVIRONMENT=production.
// Returns an error if any critical settings are missing or unsafe.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if strings.TrimSpace(cfg.CORSAllowedOrigins) == "*" {
		errs = append(errs, "CORS_ALLOWED_ORIGINS must list explicit origins in production (got '*')")
	}

	if cfg.RateLimitPerMinute <= 0 {
		errs = append(errs, fmt.Sprintf("RATE_LIMIT_PER_MINUTE must be positive (got %d)", cfg.RateLimitPerMinute))
	}

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
