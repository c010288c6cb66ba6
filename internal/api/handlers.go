// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package api

import (
	"context"
	"time"

	"github.com/tomtom215/labstock/internal/analysis"
	"github.com/tomtom215/labstock/internal/cache"
	"github.com/tomtom215/labstock/internal/models"
)

// AnalysisService is the domain side of the handlers. *analysis.Service satisfies it.
type AnalysisService interface {
	Summary(ctx context.Context, p analysis.SummaryParams) (*models.SummaryResponse, error)
	Usage(ctx context.Context, days int) ([]models.UsagePoint, error)
	TopBorrowed(ctx context.Context, days, limit int) ([]models.TopBorrowedRow, error)
	LowStock(ctx context.Context, threshold int) ([]models.LowStockRow, error)
	CacheStats() cache.Stats
}

// Pinger reports database connectivity. *database.Store satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: body decoding, query parsing, validation
//   - handlers_analysis.go: /analysis endpoints
//   - handlers_health.go: health and readiness probes
type Handler struct {
	service   AnalysisService
	db        Pinger
	startTime time.Time
	version   string

	// summaryTimeout replaces the server write deadline on the summary route.
	summaryTimeout time.Duration
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithVersion sets the version reported by /health.
func WithVersion(v string) HandlerOption {
	return func(h *Handler) { h.version = v }
}

// WithSummaryTimeout gives POST /analysis/gemini-summary its own write
// deadline, measured from when the handler starts. Zero keeps the server's.
func WithSummaryTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) { h.summaryTimeout = d }
}

// NewHandler creates a Handler. db may be nil, in which case readiness fails.
//
// Example:
//
//	handler := api.NewHandler(service, store, api.WithVersion(version))
//	router := api.NewRouter(handler, mw)
func NewHandler(service AnalysisService, db Pinger, opts ...HandlerOption) *Handler {
	h := &Handler{
		service:   service,
		db:        db,
		startTime: time.Now(),
		version:   "dev",
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
