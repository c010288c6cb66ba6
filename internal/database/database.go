// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tomtom215/labstock/internal/config"
	"github.com/tomtom215/labstock/internal/logging"
)

// Collection names owned by the inventory backend.
const (
	EventsCollection = "events"
	ItemsCollection  = "items"
)

// Store runs the read-only analytics queries against MongoDB.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock injects the time source used to compute lookback windows.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Connect opens a MongoDB client, pings it, and returns a Store over cfg.Name.
// The ping is bounded by cfg.ConnectTimeout.
//
// An unreachable server is not an error: the Store is returned in a degraded
// state, Ping keeps failing (so readiness does too), and the driver reconnects
// on its own once the server is up. Only invalid client options fail here.
func Connect(ctx context.Context, cfg *config.DatabaseConfig, opts ...Option) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName("labstock").
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(connectCtx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		logging.Warn().
			Err(err).
			Str("database", cfg.Name).
			Msg("MongoDB unreachable at startup; serving degraded until it answers")
	} else {
		logging.Info().
			Str("database", cfg.Name).
			Msg("Connected to MongoDB")
	}

	return New(client, cfg.Name, opts...), nil
}

// New wraps an existing client. Connect is the usual entry point.
func New(client *mongo.Client, dbName string, opts ...Option) *Store {
	s := &Store{
		client: client,
		db:     client.Database(dbName),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping checks that the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("mongodb client is nil")
	}
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongodb: %w", err)
	}
	return nil
}
