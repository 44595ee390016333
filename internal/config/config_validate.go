// Abiflix - Streaming Catalog and Watchlist Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/abiflix

package config

import (
	"fmt"
	"net/url"
	"time"
)

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

var validLogFormats = map[string]bool{
	"json": true, "console": true,
}

var validStorageTypes = map[string]bool{
	"badger": true, "memory": true,
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateStorage(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateAssistant(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateStorage() error {
	if !validStorageTypes[c.Storage.Type] {
		return fmt.Errorf("STORAGE_TYPE must be badger or memory, got: %q", c.Storage.Type)
	}
	if c.Storage.Type == "badger" && c.Storage.Path == "" {
		return fmt.Errorf("STORAGE_PATH is required when STORAGE_TYPE=badger")
	}
	if c.Storage.Type == "badger" {
		if c.Storage.GCInterval < time.Second {
			return fmt.Errorf("GC_INTERVAL must be at least 1s")
		}
		if c.Storage.GCRatio <= 0 || c.Storage.GCRatio >= 1 {
			return fmt.Errorf("GC_RATIO must be between 0 and 1 exclusive, got: %v", c.Storage.GCRatio)
		}
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.ContentKey == "" || c.Catalog.UserKey == "" {
		return fmt.Errorf("CONTENT_KEY and USER_KEY must not be empty")
	}
	if c.Catalog.ContentKey == c.Catalog.UserKey {
		return fmt.Errorf("CONTENT_KEY and USER_KEY must differ, both are %q", c.Catalog.ContentKey)
	}
	return nil
}

// validateAssistant only checks settings when an API key is present; the
// assistant is optional.
func (c *Config) validateAssistant() error {
	if !c.Assistant.Enabled() {
		return nil
	}
	if err := validateHTTPURL(c.Assistant.BaseURL, "ASSISTANT_BASE_URL"); err != nil {
		return err
	}
	if c.Assistant.Model == "" {
		return fmt.Errorf("ASSISTANT_MODEL is required when API_KEY is set")
	}
	if c.Assistant.RateLimit <= 0 {
		return fmt.Errorf("ASSISTANT_RATE_LIMIT must be positive")
	}
	if c.Assistant.Burst < 1 {
		return fmt.Errorf("ASSISTANT_BURST must be at least 1")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.AdminIdentifier == "" || c.Security.AdminSecret == "" {
		return fmt.Errorf("ADMIN_IDENTIFIER and ADMIN_SECRET must not be empty")
	}
	if c.Security.LoginRateLimit < 1 || c.Security.LoginRateLimit > 10000 {
		return fmt.Errorf("LOGIN_RATE_LIMIT must be between 1 and 10000")
	}
	if c.Security.LoginRateWindow < time.Second {
		return fmt.Errorf("LOGIN_RATE_WINDOW must be at least 1s")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got: %q", c.Logging.Level)
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be json or console, got: %q", c.Logging.Format)
	}
	return nil
}

// validateHTTPURL accepts absolute http(s) URLs. A path is allowed because
// OpenAI-compatible endpoints are usually mounted below one.
func validateHTTPURL(rawURL, fieldName string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %q", fieldName, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}
	if parsed.RawQuery != "" {
		return fmt.Errorf("%s should not contain query parameters", fieldName)
	}
	return nil
}
