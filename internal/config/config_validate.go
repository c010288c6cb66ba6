// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateGemini(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateAnalysis(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateGemini requires a credential. Model must be non-empty.
func (c *Config) validateGemini() error {
	if strings.TrimSpace(c.Gemini.Credential()) == "" {
		return ErrMissingCredential
	}
	if strings.TrimSpace(c.Gemini.Model) == "" {
		return fmt.Errorf("GEMINI_MODEL must not be empty")
	}
	if c.Gemini.RateLimitRPM < 0 {
		return fmt.Errorf("GEMINI_RATE_LIMIT_RPM must be >= 0")
	}
	return nil
}

// validateDatabase validates MongoDB configuration
func (c *Config) validateDatabase() error {
	if c.Database.URI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if err := validateMongoURI(c.Database.URI); err != nil {
		return fmt.Errorf("MONGO_URI is invalid: %w", err)
	}
	if c.Database.Name == "" {
		return fmt.Errorf("MONGO_DBNAME is required")
	}
	if c.Database.ConnectTimeout < time.Second {
		return fmt.Errorf("MONGO_CONNECT_TIMEOUT must be at least 1s")
	}
	return nil
}

// validateAnalysis validates summary cache settings
func (c *Config) validateAnalysis() error {
	if c.Analysis.CacheTTLSeconds < 0 {
		return fmt.Errorf("ANALYSIS_CACHE_TTL must be >= 0 seconds")
	}
	switch c.Analysis.CacheKey {
	case CacheKeyGlobal, CacheKeyParams:
		return nil
	default:
		return fmt.Errorf("ANALYSIS_CACHE_KEY must be one of: %s, %s", CacheKeyGlobal, CacheKeyParams)
	}
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.SummaryTimeout < 0 {
		return fmt.Errorf("HTTP_SUMMARY_TIMEOUT must be >= 0")
	}
	return nil
}

// validateSecurity validates CORS origins and rate limiting
func (c *Config) validateSecurity() error {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			// Credentials are allowed; browsers reject a wildcard origin with credentials.
			return fmt.Errorf("CORS_ORIGINS must not contain a wildcard when credentials are allowed")
		}
		if err := validateHTTPURL(origin, "CORS_ORIGINS"); err != nil {
			return err
		}
	}

	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if err := c.validateLogLevel(); err != nil {
		return err
	}
	return c.validateLogFormat()
}

// validateLogLevel validates the log level configuration
func (c *Config) validateLogLevel() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	return nil
}

// validateLogFormat validates the log format configuration
func (c *Config) validateLogFormat() error {
	if c.Logging.Format == "" {
		return nil
	}
	if !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
