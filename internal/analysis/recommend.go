// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package analysis

import (
	"fmt"
	"math"

	"github.com/tomtom215/labstock/internal/models"
)

const (
	// demandCoverage is the share of recent demand a reorder should cover.
	demandCoverage = 0.30
	// minReorder is the floor applied to nearly depleted items.
	minReorder = 3
	// depletedAt is the availability at or below which minReorder applies.
	depletedAt = 2
)

// Recommend computes reorder suggestions from the summary query results.
// Missing numbers count as zero; low stock rows pass through unchanged.
func Recommend(top []models.TopBorrowedRow, low []models.LowStockRow) models.Fallback {
	recs := make([]models.Recommendation, 0, len(top))
	for _, t := range top {
		borrowed := intOrZero(t.TotalQty)
		available := intOrZero(t.AvailableQuantity)
		totalOwned := intOrZero(t.TotalQuantity)
		needed := ReorderQuantity(borrowed, available, totalOwned)

		recs = append(recs, models.Recommendation{
			SKU:                t.SKU,
			Name:               t.Name,
			BorrowedQty:        borrowed,
			Available:          available,
			TotalOwned:         totalOwned,
			RecommendedReorder: needed,
			Reason: fmt.Sprintf("Recent borrowed %d. Available %d. Suggest reorder %d to cover ~30%% of recent demand.",
				borrowed, available, needed),
		})
	}

	alerts := make([]models.LowAlert, 0, len(low))
	for _, l := range low {
		alerts = append(alerts, models.LowAlert{
			SKU:        l.SKU,
			Name:       l.Name,
			Available:  l.AvailableQuantity,
			TotalOwned: l.TotalQuantity,
		})
	}

	return models.Fallback{Recommendations: recs, LowAlerts: alerts}
}

// ReorderQuantity returns max(ceil(borrowed*0.30)-available, 0), raised to 3
// when available <= 2 and at least 3 units are owned. Never negative.
func ReorderQuantity(borrowed, available, totalOwned int) int {
	desired := int(math.Ceil(float64(borrowed) * demandCoverage))
	needed := max(desired-available, 0)
	if available <= depletedAt && totalOwned >= minReorder {
		needed = max(needed, minReorder)
	}
	return needed
}

func intOrZero(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
