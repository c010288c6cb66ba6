// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/labstock/internal/logging"
	"github.com/tomtom215/labstock/internal/metrics"
)

// DefaultMonitorInterval is the ping interval used when none is given.
const DefaultMonitorInterval = 30 * time.Second

// Pinger checks database reachability. *database.Store satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// DatabaseMonitorService pings MongoDB on an interval, exports the result
// as the database_up gauge and logs reachability changes.
//
// A failed ping is not a service failure; the monitor keeps running and
// the next tick tries again.
type DatabaseMonitorService struct {
	db       Pinger
	interval time.Duration
	timeout  time.Duration
	logger   zerolog.Logger
	name     string

	// up is the last observed state; nil until the first ping.
	up *bool
}

// NewDatabaseMonitorService creates a monitor for db. A non-positive
// interval uses DefaultMonitorInterval.
func NewDatabaseMonitorService(db Pinger, interval time.Duration) *DatabaseMonitorService {
	if interval <= 0 {
		interval = DefaultMonitorInterval
	}
	timeout := interval / 2
	if timeout > 5*time.Second {
		timeout = 5 * time.Second
	}
	return &DatabaseMonitorService{
		db:       db,
		interval: interval,
		timeout:  timeout,
		logger:   logging.WithComponent("db-monitor"),
		name:     "database-monitor",
	}
}

// Serve implements suture.Service.
func (s *DatabaseMonitorService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.interval).Msg("Database monitor starting")

	s.check(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

// check runs one ping and records the outcome.
func (s *DatabaseMonitorService) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.db.Ping(pingCtx)
	if ctx.Err() != nil {
		// Shutting down; the ping result says nothing about the database.
		return
	}

	up := err == nil
	metrics.SetDatabaseUp(up)

	switch {
	case s.up == nil && up:
		s.logger.Info().Msg("Database reachable")
	case !up && (s.up == nil || *s.up):
		s.logger.Warn().Err(err).Msg("Database unreachable")
	case up && !*s.up:
		s.logger.Info().Msg("Database connection restored")
	}
	s.up = &up
}

// String implements fmt.Stringer for supervisor logs.
func (s *DatabaseMonitorService) String() string {
	return s.name
}
