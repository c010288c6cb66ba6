// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package database

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tomtom215/labstock/internal/models"
)

// LowStockLimit caps the low-stock listing.
const LowStockLimit = 200

// UsageDateFormat is the $dateToString format of usage buckets.
const UsageDateFormat = "%Y-%m-%d"

// topBorrowedPipeline groups borrow events since the cutoff by item, keeps the
// top limit by quantity, and left-joins current stock from items.
func topBorrowedPipeline(since time.Time, limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "type", Value: models.EventTypeBorrow},
			{Key: "timestamp", Value: bson.D{{Key: "$gte", Value: since}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$item_id"},
			{Key: "totalQty", Value: bson.D{{Key: "$sum", Value: "$qty"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalQty", Value: -1}}}},
		{{Key: "$limit", Value: int64(limit)}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: ItemsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "item"},
		}}},
		// Keep rows whose item was deleted; joined fields come back null.
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$item"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "sku", Value: "$item.sku"},
			{Key: "name", Value: "$item.name"},
			{Key: "totalQty", Value: 1},
			{Key: "available_quantity", Value: "$item.available_quantity"},
			{Key: "total_quantity", Value: "$item.total_quantity"},
		}}},
	}
}

// lowStockFilter matches items at or below threshold availability.
func lowStockFilter(threshold int) bson.D {
	return bson.D{{Key: "available_quantity", Value: bson.D{{Key: "$lte", Value: threshold}}}}
}

// lowStockProjection limits returned item fields.
func lowStockProjection() bson.D {
	return bson.D{
		{Key: "sku", Value: 1},
		{Key: "name", Value: 1},
		{Key: "available_quantity", Value: 1},
		{Key: "total_quantity", Value: 1},
	}
}

// usagePipeline sums borrowed quantity per UTC calendar day since start.
func usagePipeline(start time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "type", Value: models.EventTypeBorrow},
			{Key: "timestamp", Value: bson.D{{Key: "$gte", Value: start}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: UsageDateFormat},
				{Key: "date", Value: "$timestamp"},
			}}}},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$qty"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}
