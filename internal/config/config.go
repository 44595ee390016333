// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the full application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Storage   StorageConfig   `koanf:"storage"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Assistant AssistantConfig `koanf:"assistant"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// StorageConfig selects the key-value backend holding the two persisted
// documents.
type StorageConfig struct {
	// Type is "badger" or "memory". Memory loses everything on restart.
	Type string `koanf:"type"`
	// Path is the badger data directory.
	Path string `koanf:"path"`
	// GCInterval is how often the badger value log is compacted.
	GCInterval time.Duration `koanf:"gc_interval"`
	// GCRatio is the discard ratio passed to badger's value log GC.
	GCRatio float64 `koanf:"gc_ratio"`
}

// CatalogConfig controls the catalog store.
type CatalogConfig struct {
	ContentKey string `koanf:"content_key"`
	UserKey    string `koanf:"user_key"`
	// StrictPersistence makes mutations return an error when the write to
	// storage fails instead of only logging it.
	StrictPersistence bool `koanf:"strict_persistence"`
}

// AssistantConfig configures the chat assistant. The assistant is disabled
// when APIKey is empty.
type AssistantConfig struct {
	APIKey          string        `koanf:"api_key"`
	BaseURL         string        `koanf:"base_url"`
	Model           string        `koanf:"model"`
	Timeout         time.Duration `koanf:"timeout"`
	RateLimit       float64       `koanf:"rate_limit"`
	Burst           int           `koanf:"burst"`
	BreakerFailures uint32        `koanf:"breaker_failures"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`
}

// Enabled reports whether an API key is configured.
func (a *AssistantConfig) Enabled() bool {
	return a.APIKey != ""
}

// SecurityConfig holds the admin credential pair and HTTP hardening knobs.
type SecurityConfig struct {
	AdminIdentifier string        `koanf:"admin_identifier"`
	AdminSecret     string        `koanf:"admin_secret"`
	LoginRateLimit  int           `koanf:"login_rate_limit"`
	LoginRateWindow time.Duration `koanf:"login_rate_window"`
	CORSOrigins     []string      `koanf:"cors_origins"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Addr returns host:port for the HTTP listener.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether the server runs with ENVIRONMENT=production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// UsesDefaultAdminCredentials reports whether the built-in admin pair is
// still active. main logs a warning for it in production.
func (c *Config) UsesDefaultAdminCredentials() bool {
	return c.Security.AdminIdentifier == DefaultAdminIdentifier &&
		c.Security.AdminSecret == DefaultAdminSecret
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
