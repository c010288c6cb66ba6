// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event types written by the inventory backend.
const (
	EventTypeBorrow = "borrow"
	EventTypeReturn = "return"
	EventTypeAdjust = "adjust"
)

// Event is a single inventory movement in the events collection.
type Event struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Type      string              `bson:"type" json:"type"` // borrow, return, adjust
	SessionID *primitive.ObjectID `bson:"session_id,omitempty" json:"session_id,omitempty"`
	ItemID    primitive.ObjectID  `bson:"item_id" json:"item_id"`
	Qty       int                 `bson:"qty" json:"qty"`
	Timestamp time.Time           `bson:"timestamp" json:"timestamp"`
	User      string              `bson:"user,omitempty" json:"user,omitempty"`
}

// Item is an inventory item in the items collection.
type Item struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	SKU               string             `bson:"sku" json:"sku"`
	Name              string             `bson:"name" json:"name"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	TotalQuantity     int                `bson:"total_quantity" json:"total_quantity"`
	AvailableQuantity int                `bson:"available_quantity" json:"available_quantity"`
	Location          string             `bson:"location,omitempty" json:"location,omitempty"`
}
