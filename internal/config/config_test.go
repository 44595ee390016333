// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig_Validates(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Catalog.ContentKey != "abiflix_content" || cfg.Catalog.UserKey != "abiflix_user" {
		t.Errorf("unexpected default keys: %+v", cfg.Catalog)
	}
	if !cfg.UsesDefaultAdminCredentials() {
		t.Error("defaults should use the built-in admin pair")
	}
	if cfg.Assistant.Enabled() {
		t.Error("assistant should be disabled without an API key")
	}
	if got := cfg.Server.Addr(); got != "0.0.0.0:3857" {
		t.Errorf("Addr() = %q", got)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, "HTTP_TIMEOUT"},
		{"unknown storage", func(c *Config) { c.Storage.Type = "redis" }, "STORAGE_TYPE"},
		{"badger without path", func(c *Config) { c.Storage.Path = "" }, "STORAGE_PATH"},
		{"gc ratio out of range", func(c *Config) { c.Storage.GCRatio = 1 }, "GC_RATIO"},
		{"gc interval too small", func(c *Config) { c.Storage.GCInterval = time.Millisecond }, "GC_INTERVAL"},
		{"memory ignores gc", func(c *Config) { c.Storage.Type = "memory"; c.Storage.GCRatio = 0 }, ""},
		{"memory without path", func(c *Config) { c.Storage.Type = "memory"; c.Storage.Path = "" }, ""},
		{"same keys", func(c *Config) { c.Catalog.UserKey = c.Catalog.ContentKey }, "must differ"},
		{"empty key", func(c *Config) { c.Catalog.ContentKey = "" }, "CONTENT_KEY"},
		{"assistant bad url", func(c *Config) {
			c.Assistant.APIKey = "k"
			c.Assistant.BaseURL = "ftp://example.com"
		}, "ASSISTANT_BASE_URL"},
		{"assistant no model", func(c *Config) {
			c.Assistant.APIKey = "k"
			c.Assistant.Model = ""
		}, "ASSISTANT_MODEL"},
		{"assistant zero burst", func(c *Config) {
			c.Assistant.APIKey = "k"
			c.Assistant.Burst = 0
		}, "ASSISTANT_BURST"},
		{"assistant disabled ignores url", func(c *Config) { c.Assistant.BaseURL = "nope" }, ""},
		{"empty admin secret", func(c *Config) { c.Security.AdminSecret = "" }, "ADMIN_SECRET"},
		{"login window too small", func(c *Config) { c.Security.LoginRateWindow = time.Millisecond }, "LOGIN_RATE_WINDOW"},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"HTTP_PORT":          "server.port",
		"API_KEY":            "assistant.api_key",
		"STORAGE_TYPE":       "storage.type",
		"GC_RATIO":           "storage.gc_ratio",
		"STRICT_PERSISTENCE": "catalog.strict_persistence",
		"ADMIN_SECRET":       "security.admin_secret",
		"CORS_ORIGINS":       "security.cors_origins",
		"LOG_LEVEL":          "logging.level",
		"HOME":               "",
		"PATH":               "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLoadWithKoanf_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlBody := `
server:
  port: 9000
storage:
  type: memory
catalog:
  content_key: test_content
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yamlBody), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("API_KEY", "secret-key")
	t.Setenv("ASSISTANT_TIMEOUT", "5s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("env should override file port, got %d", cfg.Server.Port)
	}
	if cfg.Storage.Type != "memory" {
		t.Errorf("Storage.Type = %q, want memory from file", cfg.Storage.Type)
	}
	if cfg.Catalog.ContentKey != "test_content" || cfg.Catalog.UserKey != DefaultUserKey {
		t.Errorf("unexpected catalog keys: %+v", cfg.Catalog)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
	if !cfg.Assistant.Enabled() || cfg.Assistant.Timeout != 5*time.Second {
		t.Errorf("assistant not loaded from env: %+v", cfg.Assistant)
	}
	if cfg.Assistant.Model != DefaultAssistantModel {
		t.Errorf("Model = %q, want default", cfg.Assistant.Model)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != want[0] || cfg.Security.CORSOrigins[1] != want[1] {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
}

func TestLoadWithKoanf_InvalidEnv(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("STORAGE_TYPE", "sqlite")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "STORAGE_TYPE") {
		t.Fatalf("expected STORAGE_TYPE validation error, got %v", err)
	}
}
