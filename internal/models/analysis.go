// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TopBorrowedRow is an item's borrowed total over a lookback window joined
// with its current stock. Joined fields are nil when the item is missing.
type TopBorrowedRow struct {
	ItemID            *primitive.ObjectID `bson:"_id" json:"_id"`
	SKU               *string             `bson:"sku" json:"sku"`
	Name              *string             `bson:"name" json:"name"`
	TotalQty          *int                `bson:"totalQty" json:"totalQty"`
	AvailableQuantity *int                `bson:"available_quantity" json:"available_quantity"`
	TotalQuantity     *int                `bson:"total_quantity" json:"total_quantity"`
}

// LowStockRow is an item whose availability is at or below a threshold.
type LowStockRow struct {
	ItemID            primitive.ObjectID `bson:"_id" json:"_id"`
	SKU               *string            `bson:"sku" json:"sku"`
	Name              *string            `bson:"name" json:"name"`
	AvailableQuantity *int               `bson:"available_quantity" json:"available_quantity"`
	TotalQuantity     *int               `bson:"total_quantity" json:"total_quantity"`
}

// UsagePoint is the borrowed quantity for one UTC calendar day.
type UsagePoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Total int    `json:"total"`
}

// Recommendation is a heuristic reorder suggestion for one borrowed item.
type Recommendation struct {
	SKU                *string `json:"sku"`
	Name               *string `json:"name"`
	BorrowedQty        int     `json:"borrowed_qty"`
	Available          int     `json:"available"`
	TotalOwned         int     `json:"total_owned"`
	RecommendedReorder int     `json:"recommended_reorder"`
	Reason             string  `json:"reason"`
}

// LowAlert is a passthrough projection of a LowStockRow.
type LowAlert struct {
	SKU        *string `json:"sku"`
	Name       *string `json:"name"`
	Available  *int    `json:"available"`
	TotalOwned *int    `json:"total_owned"`
}

// Fallback is the heuristic result returned when the LLM is not usable.
type Fallback struct {
	Recommendations []Recommendation `json:"recommendations"`
	LowAlerts       []LowAlert       `json:"low_alerts"`
}

// AnalysisResult is one computed summary. It is cached as a unit and never
// modified after construction.
type AnalysisResult struct {
	LLMAvailable   bool             `json:"llm_available"`
	LLMResponse    *string          `json:"llm_response"`
	APIErrorDetail *string          `json:"api_error_detail,omitempty"`
	Fallback       *Fallback        `json:"fallback"`
	Top            []TopBorrowedRow `json:"top"`
	Low            []LowStockRow    `json:"low"`
	GeneratedAt    time.Time        `json:"generated_at"`
}

// SummaryResponse is the body of the summary endpoint.
type SummaryResponse struct {
	Cached bool `json:"cached"`
	*AnalysisResult
}

// DataResponse wraps list endpoints as {"data": [...]}.
type DataResponse[T any] struct {
	Data []T `json:"data"`
}
