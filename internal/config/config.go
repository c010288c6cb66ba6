// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package config

import (
	"errors"
	"net"
	"strconv"
	"time"
)

// ErrMissingCredential is returned by Load when neither GEMINI_API_KEY nor
// GOOGLE_API_KEY is set. The server refuses to start without a credential.
var ErrMissingCredential = errors.New("GEMINI_API_KEY or GOOGLE_API_KEY is not set")

// Config holds all application configuration loaded from environment variables and config files.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Data Source:
//     - Database: MongoDB connection (URI, database name)
//
//  2. Generative Analysis:
//     - Gemini: API credential, model identifier, circuit breaker
//     - Analysis: Summary cache TTL and cache key mode
//
//  3. Server & Security:
//     - Server: HTTP server configuration (port, host, timeout)
//     - Security: CORS allow-list and rate limiting
//
//  4. Observability:
//     - Logging: Log levels and output formats
//
// Example - Load configuration from environment:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	// cfg.Database.URI, cfg.Gemini.Model, etc. are now populated
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access from multiple goroutines.
type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Gemini   GeminiConfig   `koanf:"gemini"`
	Analysis AnalysisConfig `koanf:"analysis"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatabaseConfig holds MongoDB connection settings.
//
// Environment Variables:
//   - MONGO_URI: Connection string (default: mongodb://localhost:27017/iot_lab)
//   - MONGO_DBNAME: Database holding the events and items collections (default: iot_lab)
//   - MONGO_CONNECT_TIMEOUT: Initial connection timeout (default: 10s)
//   - MONGO_MONITOR_INTERVAL: Background health ping interval (default: 30s)
type DatabaseConfig struct {
	URI             string        `koanf:"uri"`
	Name            string        `koanf:"name"`
	ConnectTimeout  time.Duration `koanf:"connect_timeout"`
	MonitorInterval time.Duration `koanf:"monitor_interval"`
}

// GeminiConfig holds Google Gemini (GenAI) settings.
//
// Environment Variables:
//   - GEMINI_API_KEY: API key (preferred)
//   - GOOGLE_API_KEY: API key (used when GEMINI_API_KEY is unset)
//   - GEMINI_MODEL: Model identifier (default: gemini-2.5-flash)
//   - GEMINI_BREAKER_ENABLED: Wrap calls in a circuit breaker (default: true)
//   - GEMINI_RATE_LIMIT_RPM: Outbound calls allowed per minute, 0 for no limit (default: 0)
type GeminiConfig struct {
	APIKey         string `koanf:"api_key"`
	GoogleAPIKey   string `koanf:"google_api_key"`
	Model          string `koanf:"model"`
	BreakerEnabled bool   `koanf:"breaker_enabled"`
	RateLimitRPM   int    `koanf:"rate_limit_rpm"`
}

// Credential returns the effective API key. GEMINI_API_KEY wins over GOOGLE_API_KEY.
func (g GeminiConfig) Credential() string {
	if g.APIKey != "" {
		return g.APIKey
	}
	return g.GoogleAPIKey
}

// Cache key modes for the summary cache.
const (
	// CacheKeyGlobal serves one cached summary regardless of request parameters.
	CacheKeyGlobal = "global"
	// CacheKeyParams caches per (days, top_n, low_stock_threshold).
	CacheKeyParams = "params"
)

// AnalysisConfig holds summary computation settings.
//
// Environment Variables:
//   - ANALYSIS_CACHE_TTL: Summary cache TTL in seconds (default: 600)
//   - ANALYSIS_CACHE_KEY: global or params (default: global)
type AnalysisConfig struct {
	CacheTTLSeconds int    `koanf:"cache_ttl_seconds"`
	CacheKey        string `koanf:"cache_key"`
}

// CacheTTL returns the cache TTL as a duration.
func (a AnalysisConfig) CacheTTL() time.Duration {
	return time.Duration(a.CacheTTLSeconds) * time.Second
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - HTTP_TIMEOUT: Read and write timeout for every route (default: 60s)
//   - HTTP_SUMMARY_TIMEOUT: Write deadline of POST /analysis/gemini-summary,
//     which waits on Gemini; 0 keeps HTTP_TIMEOUT (default: 120s)
type ServerConfig struct {
	Port           int           `koanf:"port"`
	Host           string        `koanf:"host"`
	Timeout        time.Duration `koanf:"timeout"`
	SummaryTimeout time.Duration `koanf:"summary_timeout"`
	Environment    string        `koanf:"environment"` // development, staging, production
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes file:line in log output.
	Caller bool `koanf:"caller"`
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "" || c.Server.Environment == "development"
}

// Load reads configuration from defaults, an optional config file, and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
