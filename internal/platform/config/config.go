// Package config loads process-wide configuration from the environment.
// It is resolved once at startup; there is no runtime reconfiguration.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the account backend.
type Config struct {
	// Port is the HTTP listen port.
	Port string `env:"PORT" envDefault:"8080"`

	// DatabaseURL is the full PostgreSQL DSN. When empty, the fixed local
	// fallback below is used (docker compose development setup).
	DatabaseURL string `env:"DATABASE_URL"`

	DBHost     string `env:"DB_HOST" envDefault:"db"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME" envDefault:"postgres"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`

	// RunMigrations gates schema auto-migration on startup.
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"false"`

	// CORS policy. The development default allows every origin; production
	// deployments override these instead of editing code.
	CORSAllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
	CORSAllowedMethods   []string `env:"CORS_ALLOWED_METHODS" envDefault:"GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS"`
	CORSAllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS" envDefault:"Origin,Content-Type,Accept,Authorization"`
	CORSAllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" envDefault:"true"`

	// DNSTimeout bounds each MX lookup; DBTimeout bounds each repository call.
	DNSTimeout time.Duration `env:"DNS_TIMEOUT" envDefault:"5s"`
	DBTimeout  time.Duration `env:"DB_TIMEOUT" envDefault:"5s"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	return cfg, nil
}

// DSN returns the PostgreSQL connection string: DATABASE_URL when set,
// otherwise the fixed local fallback.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}
