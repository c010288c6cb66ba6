// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

// Package validation wraps go-playground/validator v10 behind a singleton and
// translates failures into the API's VALIDATION_ERROR body.
//
//	type UsageRequest struct {
//	    Days int `query:"days" validate:"min=1,max=365"`
//	}
//
// Error messages use wire names, so a rejected Days reads
// "days must be at most 365".
package validation
