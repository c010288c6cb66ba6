// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

// Package middleware provides HTTP middleware shared by the Labstock router.
//
//   - RequestID: assigns X-Request-ID and threads it into logging.Ctx
//   - AccessLog: one zerolog line per request
//   - PrometheusMetrics: request count, latency, and in-flight gauge
//
// All middleware uses the func(http.Handler) http.Handler shape so it can be
// passed directly to chi's Use.
package middleware
