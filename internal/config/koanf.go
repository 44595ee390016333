// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are tried in order when CONFIG_PATH is not set.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/abiflix/config.yaml",
	"/etc/abiflix/config.yml",
}

// ConfigPathEnvVar names the environment variable that points at a config file.
const ConfigPathEnvVar = "CONFIG_PATH"

// Built-in defaults that other packages and tests refer to.
const (
	DefaultContentKey      = "abiflix_content"
	DefaultUserKey         = "abiflix_user"
	DefaultAdminIdentifier = "abew"
	DefaultAdminSecret     = "488055"
	DefaultAssistantURL    = "https://generativelanguage.googleapis.com/v1beta/openai/"
	DefaultAssistantModel  = "gemini-2.5-flash"
)

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3857,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Storage: StorageConfig{
			Type: "badger",
			Path:       "/data/abiflix",
			GCInterval: 10 * time.Minute,
			GCRatio:    0.5,
		},
		Catalog: CatalogConfig{
			ContentKey:        DefaultContentKey,
			UserKey:           DefaultUserKey,
			StrictPersistence: false,
		},
		Assistant: AssistantConfig{
			APIKey:          "",
			BaseURL:         DefaultAssistantURL,
			Model:           DefaultAssistantModel,
			Timeout:         30 * time.Second,
			RateLimit:       1,
			Burst:           3,
			BreakerFailures: 5,
			BreakerTimeout:  30 * time.Second,
		},
		Security: SecurityConfig{
			AdminIdentifier: DefaultAdminIdentifier,
			AdminSecret:     DefaultAdminSecret,
			LoginRateLimit:  10,
			LoginRateWindow: time.Minute,
			CORSOrigins:     []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf layers defaults, the config file and the environment.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths may arrive as comma-separated strings from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envTransformFunc maps environment variable names to koanf paths. Unmapped
// variables return "" and are skipped.
//
//   - HTTP_PORT -> server.port
//   - API_KEY -> assistant.api_key
//   - STORAGE_PATH -> storage.path
func envTransformFunc(key string) string {
	envMappings := map[string]string{
		"http_port":        "server.port",
		"http_host":        "server.host",
		"http_timeout":     "server.timeout",
		"shutdown_timeout": "server.shutdown_timeout",
		"environment":      "server.environment",

		"storage_type": "storage.type",
		"storage_path": "storage.path",
		"gc_interval":  "storage.gc_interval",
		"gc_ratio":     "storage.gc_ratio",

		"content_key":        "catalog.content_key",
		"user_key":           "catalog.user_key",
		"strict_persistence": "catalog.strict_persistence",

		"api_key":                    "assistant.api_key",
		"assistant_base_url":         "assistant.base_url",
		"assistant_model":            "assistant.model",
		"assistant_timeout":          "assistant.timeout",
		"assistant_rate_limit":       "assistant.rate_limit",
		"assistant_burst":            "assistant.burst",
		"assistant_breaker_failures": "assistant.breaker_failures",
		"assistant_breaker_timeout":  "assistant.breaker_timeout",

		"admin_identifier":  "security.admin_identifier",
		"admin_secret":      "security.admin_secret",
		"login_rate_limit":  "security.login_rate_limit",
		"login_rate_window": "security.login_rate_window",
		"cors_origins":      "security.cors_origins",

		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}

	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
