// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

// Package database provides read-only analytics queries over the inventory
// backend's MongoDB collections.
//
// # Collections
//
//   - events: append-only borrow/return/adjust records (type, item_id, qty, timestamp)
//   - items: current stock per item (sku, name, available_quantity, total_quantity)
//
// # Queries
//
//   - TopBorrowed: aggregate borrows per item over a window, left-join items
//   - LowStock: items at or below an availability threshold, capped at 200
//   - UsageOverTime: daily borrow totals, zero-filled on the Go side
//
// Pipeline construction is split into pure functions (pipelines.go) and the
// zero-fill into FillDailySeries (series.go), so both are unit tested
// without a server. Integration tests against a real MongoDB run under the
// integration build tag.
//
// # Nulls
//
// A borrow whose item no longer exists still appears in TopBorrowed. Its
// joined fields decode to nil pointers and serialize as JSON null.
//
// # Observability
//
// Every query records db_query_duration_seconds and, on failure,
// db_query_errors_total.
package database
