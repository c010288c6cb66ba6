// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/labstock/internal/logging"
	"github.com/tomtom215/labstock/internal/models"
)

// GeminiSummary handles POST /analysis/gemini-summary.
//
// The response is the cached or freshly computed AnalysisResult plus a cached
// flag. LLM failures never fail the request; database failures return 500.
func (h *Handler) GeminiSummary(w http.ResponseWriter, r *http.Request) {
	h.extendWriteDeadline(w, r)

	req := defaultSummaryRequest()
	if err := decodeJSONBody(w, r, &req); err != nil && !errors.Is(err, ErrEmptyBody) {
		logging.Ctx(r.Context()).Debug().Str("error", sanitizeLogValue(err.Error())).Msg("Rejected summary body")
		respondBadRequest(w, r, "Invalid JSON request body")
		return
	}
	if verr := validateRequest(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	resp, err := h.service.Summary(r.Context(), req.Params())
	if err != nil {
		respondDatabaseError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, resp)
}

// extendWriteDeadline moves the connection write deadline to summaryTimeout
// from now, so a slow Gemini call is not cut off by the server WriteTimeout.
func (h *Handler) extendWriteDeadline(w http.ResponseWriter, r *http.Request) {
	if h.summaryTimeout <= 0 {
		return
	}
	err := http.NewResponseController(w).SetWriteDeadline(time.Now().Add(h.summaryTimeout))
	if err != nil && !errors.Is(err, http.ErrNotSupported) {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to set summary write deadline")
	}
}

// Usage handles GET /analysis/usage?days=N.
func (h *Handler) Usage(w http.ResponseWriter, r *http.Request) {
	days, err := parseIntQuery(r, "days", DefaultUsageDays)
	if err != nil {
		respondBadRequest(w, r, "Invalid 'days' parameter")
		return
	}
	req := UsageRequest{Days: days}
	if verr := validateRequest(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	series, err := h.service.Usage(r.Context(), req.Days)
	if err != nil {
		respondDatabaseError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, models.DataResponse[models.UsagePoint]{Data: series})
}

// TopBorrowed handles GET /analysis/top-borrowed?days=N&limit=M.
func (h *Handler) TopBorrowed(w http.ResponseWriter, r *http.Request) {
	days, err := parseIntQuery(r, "days", DefaultSummaryDays)
	if err != nil {
		respondBadRequest(w, r, err.Error())
		return
	}
	limit, err := parseIntQuery(r, "limit", DefaultTopBorrowedLimit)
	if err != nil {
		respondBadRequest(w, r, err.Error())
		return
	}
	req := TopBorrowedRequest{Days: days, Limit: limit}
	if verr := validateRequest(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	rows, err := h.service.TopBorrowed(r.Context(), req.Days, req.Limit)
	if err != nil {
		respondDatabaseError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, models.DataResponse[models.TopBorrowedRow]{Data: rows})
}

// LowStock handles GET /analysis/low-stock?threshold=N.
func (h *Handler) LowStock(w http.ResponseWriter, r *http.Request) {
	threshold, err := parseIntQuery(r, "threshold", DefaultLowStockThreshold)
	if err != nil {
		respondBadRequest(w, r, err.Error())
		return
	}
	req := LowStockRequest{Threshold: threshold}
	if verr := validateRequest(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	rows, err := h.service.LowStock(r.Context(), req.Threshold)
	if err != nil {
		respondDatabaseError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, models.DataResponse[models.LowStockRow]{Data: rows})
}
