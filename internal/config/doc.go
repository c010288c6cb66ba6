// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

/*
Package config provides centralized configuration management for Labstock.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. The result is validated once and is
immutable afterwards.

# Configuration Sources

  - Defaults from defaultConfig()
  - YAML file at CONFIG_PATH, ./config.yaml, or /etc/labstock/config.yaml
  - Environment variables (highest priority)

# Environment Variables

Database (DatabaseConfig):
  - MONGO_URI: Connection string (default: mongodb://localhost:27017/iot_lab)
  - MONGO_DBNAME: Database name (default: iot_lab)
  - MONGO_CONNECT_TIMEOUT: Connect timeout (default: 10s)

Gemini (GeminiConfig):
  - GEMINI_API_KEY: API key (required unless GOOGLE_API_KEY is set)
  - GOOGLE_API_KEY: Fallback API key
  - GEMINI_MODEL: Model identifier (default: gemini-2.5-flash)
  - GEMINI_BREAKER_ENABLED: Circuit breaker around LLM calls (default: true)

Analysis (AnalysisConfig):
  - ANALYSIS_CACHE_TTL: Summary cache TTL in seconds (default: 600, 0 disables)
  - ANALYSIS_CACHE_KEY: global or params (default: global)

HTTP Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8000)
  - HTTP_TIMEOUT: Read/write timeout (default: 60s)
  - HTTP_SUMMARY_TIMEOUT: Write deadline of the Gemini summary route (default: 120s)
  - ENVIRONMENT: development, staging, production

Security (SecurityConfig):
  - CORS_ORIGINS: Comma-separated allow-list (default: local Vite and CRA dev servers)
  - RATE_LIMIT_REQUESTS: Requests per window per IP (default: 120)
  - RATE_LIMIT_WINDOW: Window length (default: 1m)
  - DISABLE_RATE_LIMIT: Disable rate limiting (default: false)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

# Usage

	cfg, err := config.Load()
	if errors.Is(err, config.ErrMissingCredential) {
	    // refuse to start
	}

# Thread Safety

The returned *Config is never mutated after Load and may be shared freely.
*/
package config
