// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package api

import "github.com/tomtom215/labstock/internal/analysis"

// Request defaults
const (
	DefaultSummaryDays       = 30
	DefaultSummaryTopN       = 8
	DefaultLowStockThreshold = 5
	DefaultUsageDays         = 30
	DefaultTopBorrowedLimit  = 10
)

// SummaryRequest is the body of POST /analysis/gemini-summary.
// Omitted fields keep their defaults.
//
// Fields:
//   - Days: Lookback window for top borrowed items (>= 1, default 30)
//   - TopN: Number of top borrowed items (>= 1, default 8)
//   - LowStockThreshold: Availability at or below which an item is low (>= 0, default 5)
//   - ForceRefresh: Skip the cache read
type SummaryRequest struct {
	Days              int  `json:"days" validate:"min=1"`
	TopN              int  `json:"top_n" validate:"min=1"`
	LowStockThreshold int  `json:"low_stock_threshold" validate:"min=0"`
	ForceRefresh      bool `json:"force_refresh"`
}

// defaultSummaryRequest returns a SummaryRequest with every default applied.
func defaultSummaryRequest() SummaryRequest {
	return SummaryRequest{
		Days:              DefaultSummaryDays,
		TopN:              DefaultSummaryTopN,
		LowStockThreshold: DefaultLowStockThreshold,
	}
}

// Params converts the request into service parameters.
func (s SummaryRequest) Params() analysis.SummaryParams {
	return analysis.SummaryParams{
		Days:              s.Days,
		TopN:              s.TopN,
		LowStockThreshold: s.LowStockThreshold,
		ForceRefresh:      s.ForceRefresh,
	}
}

// UsageRequest represents the validated query parameters for /analysis/usage.
type UsageRequest struct {
	Days int `query:"days" validate:"min=1,max=365"`
}

// TopBorrowedRequest represents the validated query parameters for /analysis/top-borrowed.
type TopBorrowedRequest struct {
	Days  int `query:"days" validate:"min=1,max=365"`
	Limit int `query:"limit" validate:"min=1,max=200"`
}

// LowStockRequest represents the validated query parameters for /analysis/low-stock.
type LowStockRequest struct {
	Threshold int `query:"threshold" validate:"min=0"`
}
