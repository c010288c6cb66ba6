// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package api

import "errors"

// Common API errors
var (
	// ErrEmptyBody indicates a request without a body; callers fall back to defaults.
	ErrEmptyBody = errors.New("request body is empty")

	// ErrInvalidBody indicates a body that is not a single JSON object.
	ErrInvalidBody = errors.New("invalid JSON request body")
)
