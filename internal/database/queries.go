// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tomtom215/labstock/internal/metrics"
	"github.com/tomtom215/labstock/internal/models"
)

// TopBorrowed returns the limit items with the largest borrowed quantity over
// the last days, joined with their current stock, descending.
func (s *Store) TopBorrowed(ctx context.Context, days, limit int) (rows []models.TopBorrowedRow, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("top_borrowed", EventsCollection, time.Since(start), err) }()

	since := LookbackStart(s.now(), days)
	cursor, err := s.db.Collection(EventsCollection).Aggregate(ctx, topBorrowedPipeline(since, limit))
	if err != nil {
		return nil, fmt.Errorf("top borrowed aggregate: %w", err)
	}

	rows = []models.TopBorrowedRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("top borrowed decode: %w", err)
	}
	return rows, nil
}

// LowStock returns items with available quantity at or below threshold,
// ascending by availability, at most LowStockLimit rows.
func (s *Store) LowStock(ctx context.Context, threshold int) (rows []models.LowStockRow, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("low_stock", ItemsCollection, time.Since(start), err) }()

	opts := options.Find().
		SetProjection(lowStockProjection()).
		SetSort(bson.D{{Key: "available_quantity", Value: 1}}).
		SetLimit(LowStockLimit)

	cursor, err := s.db.Collection(ItemsCollection).Find(ctx, lowStockFilter(threshold), opts)
	if err != nil {
		return nil, fmt.Errorf("low stock find: %w", err)
	}

	rows = []models.LowStockRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("low stock decode: %w", err)
	}
	return rows, nil
}

// usageBucket is one $group output row of usagePipeline.
type usageBucket struct {
	Date  string `bson:"_id"`
	Total int    `bson:"total"`
}

// UsageOverTime returns borrowed totals for each UTC day from today-(days-1)
// through today, zero-filled and ascending.
func (s *Store) UsageOverTime(ctx context.Context, days int) (series []models.UsagePoint, err error) {
	begin := time.Now()
	defer func() { metrics.RecordDBQuery("usage_over_time", EventsCollection, time.Since(begin), err) }()

	start := UsageStart(s.now(), days)
	cursor, err := s.db.Collection(EventsCollection).Aggregate(ctx, usagePipeline(start))
	if err != nil {
		return nil, fmt.Errorf("usage aggregate: %w", err)
	}

	var buckets []usageBucket
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, fmt.Errorf("usage decode: %w", err)
	}

	totals := make(map[string]int, len(buckets))
	for _, b := range buckets {
		totals[b.Date] = b.Total
	}
	return FillDailySeries(start, days, totals), nil
}
