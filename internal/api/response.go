// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/labstock/internal/logging"
	"github.com/tomtom215/labstock/internal/validation"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	// Detail is the human-readable message at the top level
	Detail string `json:"detail"`

	// Error contains the structured error
	Error *APIError `json:"error"`
}

// APIError represents an error response.
type APIError struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains additional error details (optional)
	Details interface{} `json:"details,omitempty"`

	// RequestID is the request ID for tracing
	RequestID string `json:"request_id,omitempty"`
}

// Error codes for API responses
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeValidationError    = validation.CodeValidationError
	ErrCodeDatabaseError      = "DATABASE_ERROR"
)

// writeJSON writes a JSON response with proper headers.
func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError writes the error envelope.
func respondError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string, details interface{}) {
	writeJSON(w, r, statusCode, ErrorResponse{
		Detail: message,
		Error: &APIError{
			Code:      code,
			Message:   message,
			Details:   details,
			RequestID: logging.RequestIDFromContext(r.Context()),
		},
	})
}

// respondBadRequest writes a 400 Bad Request error.
func respondBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, message, nil)
}

// respondValidationError writes a 400 error with per-field details.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
}

// respondDatabaseError logs err and writes a 500 without leaking driver detail.
func respondDatabaseError(w http.ResponseWriter, r *http.Request, err error) {
	logging.Ctx(r.Context()).Error().Str("error", sanitizeLogValue(err.Error())).Str("path", r.URL.Path).Msg("Database error")
	respondError(w, r, http.StatusInternalServerError, ErrCodeDatabaseError, "A database error occurred", nil)
}

// NotFound handles unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Not Found", nil)
}

// MethodNotAllowed handles known routes with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method Not Allowed", nil)
}

// TooManyRequests is the rate limiter's limit handler.
func TooManyRequests(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusTooManyRequests, ErrCodeTooManyRequests, "Too many requests, please try again later", nil)
}
