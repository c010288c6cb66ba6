// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

/*
Package models defines data structures for the Labstock analysis service.

Model Categories:

1. Store Documents (owned by the inventory backend, read-only here):
  - Event: append-only borrow/return/adjust events
  - Item: inventory items with current stock levels

2. Aggregation Rows:
  - TopBorrowedRow: borrowed totals per item joined with current stock
  - LowStockRow: items at or below an availability threshold
  - UsagePoint: one day of a zero-filled borrow time series

3. Analysis Results:
  - Recommendation, LowAlert, Fallback: heuristic restock output
  - AnalysisResult: the cached payload behind the summary endpoint

Nullable Fields:

Joined fields use pointer types. A borrow event whose item no longer exists
produces a row with nil SKU, name, and quantities, which serializes to JSON
null instead of a misleading zero.
*/
package models
