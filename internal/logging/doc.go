// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

// Package logging provides the zerolog-based global logger for Labstock.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Msg("Server starting")
//	logging.Err(err).Msg("Operation failed")
//
//	// Request-scoped, includes request_id
//	logging.Ctx(r.Context()).Warn().Msg("LLM unavailable")
//
// # Configuration
//
// Environment Variables (read by the config package):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// # slog Bridge
//
// NewSlogLogger exposes the global logger as *slog.Logger for libraries that
// only speak slog, such as the suture supervisor event hook.
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging
