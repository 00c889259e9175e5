// Copyright (c) 2026 Agrosan Makina
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DataDir    string `env:"AGROSAN_DATA_DIR" envDefault:"./data"`
	UploadsDir string `env:"AGROSAN_UPLOADS_DIR" envDefault:"./uploads"`
	ServerHost string `env:"AGROSAN_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"AGROSAN_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"AGROSAN_ENV" envDefault:"development"`
	LogLevel   string `env:"AGROSAN_LOG_LEVEL" envDefault:"info"`

	// SiteURL is the canonical origin used in hreflang/canonical tags and
	// the sitemap, e.g. https://www.agrosan.example
	SiteURL string `env:"AGROSAN_SITE_URL" envDefault:"http://localhost:8080"`

	// SessionSecret keys the CSRF token generation and must be long enough
	// to resist brute force.
	SessionSecret string `env:"AGROSAN_SESSION_SECRET,required"`

	// AdminPassword seeds the first admin account when users.json is absent.
	AdminPassword string `env:"AGROSAN_ADMIN_PASSWORD"`

	// TemplatesDir overrides the embedded templates with a directory on
	// disk, for editing markup without rebuilding.
	TemplatesDir string `env:"AGROSAN_TEMPLATES_DIR"`

	// Cache configuration
	RedisURL    string `env:"AGROSAN_REDIS_URL"`                       // Optional Redis URL for the shared cache
	CachePrefix string `env:"AGROSAN_CACHE_PREFIX" envDefault:"agro:"` // Redis key prefix
	CacheTTL    int    `env:"AGROSAN_CACHE_TTL" envDefault:"3600"`     // Default cache TTL in seconds
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("AGROSAN_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	cfg.SiteURL = strings.TrimSuffix(cfg.SiteURL, "/")

	return cfg, nil
}
