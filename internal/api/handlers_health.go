// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/labstock/internal/cache"
)

// pingTimeout bounds the database check in health probes.
const pingTimeout = 2 * time.Second

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status            string      `json:"status"` // healthy, degraded
	Version           string      `json:"version"`
	DatabaseConnected bool        `json:"database_connected"`
	Uptime            float64     `json:"uptime"` // seconds
	Timestamp         time.Time   `json:"timestamp"`
	SummaryCache      cache.Stats `json:"summary_cache"`
}

// dbConnected pings the database with a short timeout.
func (h *Handler) dbConnected(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return h.db.Ping(ctx) == nil
}

// Health handles health check requests.
// It always returns 200; status is "degraded" when MongoDB is unreachable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	connected := h.dbConnected(r.Context())

	status := "healthy"
	if !connected {
		status = "degraded"
	}

	writeJSON(w, r, http.StatusOK, HealthStatus{
		Status:            status,
		Version:           h.version,
		DatabaseConnected: connected,
		Uptime:            time.Since(h.startTime).Seconds(),
		Timestamp:         time.Now().UTC(),
		SummaryCache:      h.service.CacheStats(),
	})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if MongoDB answers a ping, 503 otherwise.
// The LLM is not part of readiness: summaries degrade to fallback without it.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if !h.dbConnected(r.Context()) {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Database is not reachable", nil)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"ready":    true,
		"database": "connected",
	})
}
