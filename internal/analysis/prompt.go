// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package analysis

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tomtom215/labstock/internal/models"
)

// nullText is how missing values appear in the prompt.
const nullText = "None"

var promptHeader = []string{
	"You are an experienced inventory analyst. Given the data below, produce three sections:",
	"1) A 2-3 sentence summary describing demand patterns over the specified period.",
	"2) Top 5 items to consider restocking. For each list a recommended reorder quantity and a short reason. Try to show simple math where possible.",
	"3) Suggested low-stock thresholds for the most-used items (short list).",
	"",
	"Provide the answer in plain text. Keep recommendations actionable.",
	"",
}

// BuildPrompt renders the analyst prompt. Each row contributes exactly one
// line, in input order; empty lists leave their section header with no lines.
func BuildPrompt(top []models.TopBorrowedRow, low []models.LowStockRow, days int) string {
	lines := make([]string, 0, len(promptHeader)+len(top)+len(low)+6)
	lines = append(lines, promptHeader...)
	lines = append(lines, fmt.Sprintf("Data: (last %d days)", days), "TopBorrowed:")

	for _, t := range top {
		lines = append(lines, fmt.Sprintf("- sku: %s, name: %s, borrowed_qty: %s, available: %s, total_owned: %s",
			str(t.SKU), str(t.Name), num(t.TotalQty), num(t.AvailableQuantity), num(t.TotalQuantity)))
	}

	lines = append(lines, "", "LowStock:")
	for _, l := range low {
		lines = append(lines, fmt.Sprintf("- sku: %s, name: %s, available: %s, total_owned: %s",
			str(l.SKU), str(l.Name), num(l.AvailableQuantity), num(l.TotalQuantity)))
	}

	lines = append(lines, "", "Return a concise, actionable response.")
	return strings.Join(lines, "\n")
}

func str(s *string) string {
	if s == nil {
		return nullText
	}
	return *s
}

func num(n *int) string {
	if n == nil {
		return nullText
	}
	return strconv.Itoa(*n)
}
