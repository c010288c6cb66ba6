// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/labstock/internal/validation"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
// This includes newlines, carriage returns, tabs, and other control characters that could
// allow attackers to forge log entries or corrupt log files.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// decodeJSONBody decodes a single JSON object from the body into dst.
// dst keeps its prior values for fields the body omits. An empty body
// returns ErrEmptyBody and leaves dst untouched.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return ErrEmptyBody
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return nil
}

// parseIntQuery reads an integer query parameter, defaulting when absent.
// A present but non-integer value is an error.
func parseIntQuery(r *http.Request, key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid '%s' parameter", key)
	}
	return n, nil
}

// validateRequest validates a struct using go-playground/validator.
//
// Example:
//
//	req := UsageRequest{Days: days}
//	if verr := validateRequest(&req); verr != nil {
//	    respondValidationError(w, r, verr)
//	    return
//	}
func validateRequest(v interface{}) *validation.RequestValidationError {
	return validation.ValidateStruct(v)
}
