// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv empties the process environment for the duration of a test.
func clearEnv(t *testing.T) {
	t.Helper()
	saved := os.Environ()
	os.Clearenv()
	t.Cleanup(func() {
		os.Clearenv()
		for _, kv := range saved {
			if k, v, ok := strings.Cut(kv, "="); ok {
				os.Setenv(k, v)
			}
		}
	})
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	// Database defaults
	if cfg.Database.URI != "mongodb://localhost:27017/iot_lab" {
		t.Errorf("Database.URI = %q, want mongodb://localhost:27017/iot_lab", cfg.Database.URI)
	}
	if cfg.Database.Name != "iot_lab" {
		t.Errorf("Database.Name = %q, want iot_lab", cfg.Database.Name)
	}
	if cfg.Database.ConnectTimeout != 10*time.Second {
		t.Errorf("Database.ConnectTimeout = %v, want 10s", cfg.Database.ConnectTimeout)
	}
	if cfg.Database.MonitorInterval != 30*time.Second {
		t.Errorf("Database.MonitorInterval = %v, want 30s", cfg.Database.MonitorInterval)
	}

	// Gemini defaults (credential empty - required)
	if cfg.Gemini.Credential() != "" {
		t.Errorf("Gemini credential should be empty by default")
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Gemini.Model = %q, want gemini-2.5-flash", cfg.Gemini.Model)
	}
	if !cfg.Gemini.BreakerEnabled {
		t.Errorf("Gemini.BreakerEnabled should be true by default")
	}

	// Analysis defaults
	if cfg.Analysis.CacheTTL() != 10*time.Minute {
		t.Errorf("Analysis.CacheTTL() = %v, want 10m", cfg.Analysis.CacheTTL())
	}
	if cfg.Analysis.CacheKey != CacheKeyGlobal {
		t.Errorf("Analysis.CacheKey = %q, want global", cfg.Analysis.CacheKey)
	}

	// Server defaults
	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.SummaryTimeout != 2*time.Minute {
		t.Errorf("Server.SummaryTimeout = %v, want 2m", cfg.Server.SummaryTimeout)
	}

	// Security defaults
	if len(cfg.Security.CORSOrigins) != 4 {
		t.Errorf("len(Security.CORSOrigins) = %d, want 4", len(cfg.Security.CORSOrigins))
	}
	if cfg.Security.RateLimitReqs != 120 {
		t.Errorf("Security.RateLimitReqs = %d, want 120", cfg.Security.RateLimitReqs)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}
}

// TestEnvTransformFunc verifies environment variable name transformation
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"MONGO_URI", "database.uri"},
		{"MONGO_DBNAME", "database.name"},
		{"MONGO_MONITOR_INTERVAL", "database.monitor_interval"},
		{"GEMINI_API_KEY", "gemini.api_key"},
		{"GOOGLE_API_KEY", "gemini.google_api_key"},
		{"GEMINI_MODEL", "gemini.model"},
		{"ANALYSIS_CACHE_TTL", "analysis.cache_ttl_seconds"},
		{"HTTP_PORT", "server.port"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := envTransformFunc(tt.input)
			if result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	t.Run("no config file exists", func(t *testing.T) {
		os.Unsetenv(ConfigPathEnvVar)
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(configPath, []byte("test: true"), 0644); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove(configPath)

		os.Unsetenv(ConfigPathEnvVar)
		if result := findConfigFile(); result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "custom_config.yaml")
		if err := os.WriteFile(customPath, []byte("test: true"), 0644); err != nil {
			t.Fatalf("Failed to create custom config file: %v", err)
		}
		t.Setenv(ConfigPathEnvVar, customPath)

		if result := findConfigFile(); result != customPath {
			t.Errorf("findConfigFile() = %q, want %q", result, customPath)
		}
	})

	t.Run("CONFIG_PATH env var with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

// TestLoadWithKoanfEnvVars tests loading configuration from environment variables
func TestLoadWithKoanfEnvVars(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	os.Setenv("GEMINI_API_KEY", "test-key")
	os.Setenv("HTTP_PORT", "9000")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("ANALYSIS_CACHE_TTL", "30")
	os.Setenv("CORS_ORIGINS", "http://a.local:5173, http://b.local")
	os.Setenv("MONGO_DBNAME", "lab_test")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Analysis.CacheTTL() != 30*time.Second {
		t.Errorf("Analysis.CacheTTL() = %v, want 30s", cfg.Analysis.CacheTTL())
	}
	if cfg.Database.Name != "lab_test" {
		t.Errorf("Database.Name = %q, want lab_test", cfg.Database.Name)
	}
	want := []string{"http://a.local:5173", "http://b.local"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Security.CORSOrigins[i] != want[i] {
			t.Errorf("Security.CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want[i])
		}
	}

	// Defaults still applied for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Gemini.Model = %q, want gemini-2.5-flash (default)", cfg.Gemini.Model)
	}
}

// TestLoadWithKoanfConfigFile tests loading configuration from a YAML file
func TestLoadWithKoanfConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configContent := `
gemini:
  api_key: "file-key"
  model: "gemini-2.0-flash"

server:
  port: 8888
  host: "127.0.0.1"

analysis:
  cache_key: "params"

logging:
  level: "warn"
`
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	clearEnv(t)
	os.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Gemini.Credential() != "file-key" {
		t.Errorf("Gemini.Credential() = %q, want file-key", cfg.Gemini.Credential())
	}
	if cfg.Gemini.Model != "gemini-2.0-flash" {
		t.Errorf("Gemini.Model = %q, want gemini-2.0-flash", cfg.Gemini.Model)
	}
	if cfg.Server.Port != 8888 {
		t.Errorf("Server.Port = %d, want 8888", cfg.Server.Port)
	}
	if cfg.Analysis.CacheKey != CacheKeyParams {
		t.Errorf("Analysis.CacheKey = %q, want params", cfg.Analysis.CacheKey)
	}
	if cfg.Database.URI != "mongodb://localhost:27017/iot_lab" {
		t.Errorf("Database.URI = %q, want default", cfg.Database.URI)
	}
}

// TestLoadWithKoanfEnvOverridesFile tests that env vars override config file
func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	configContent := `
gemini:
  api_key: "file-key"

server:
  port: 8888

logging:
  level: "warn"
`
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	clearEnv(t)
	os.Setenv(ConfigPathEnvVar, configPath)
	os.Setenv("HTTP_PORT", "9999")
	os.Setenv("LOG_LEVEL", "error")
	os.Setenv("MONGO_URI", "mongodb://db.internal:27017")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Gemini.APIKey != "file-key" {
		t.Errorf("Gemini.APIKey = %q, want file-key (from file)", cfg.Gemini.APIKey)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 (env override)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error (env override)", cfg.Logging.Level)
	}
	if cfg.Database.URI != "mongodb://db.internal:27017" {
		t.Errorf("Database.URI = %q, want env override", cfg.Database.URI)
	}
}
