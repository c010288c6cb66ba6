// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// errSimulated is returned by MockService while it still has failures left.
var errSimulated = errors.New("simulated failure")

// MockService is a suture.Service for supervisor tests. It can fail a set
// number of times before running until its context is canceled.
type MockService struct {
	name       string
	startCount atomic.Int32
	stopCount  atomic.Int32
	failsLeft  atomic.Int32
}

// NewMockService creates a mock service with the given name.
func NewMockService(name string) *MockService {
	return &MockService{name: name}
}

// Serve implements suture.Service.
func (m *MockService) Serve(ctx context.Context) error {
	m.startCount.Add(1)
	defer m.stopCount.Add(1)

	if m.failsLeft.Add(-1) >= 0 {
		return errSimulated
	}

	<-ctx.Done()
	return ctx.Err()
}

// SetFailCount makes the next n calls to Serve fail immediately.
func (m *MockService) SetFailCount(n int) {
	m.failsLeft.Store(int32(n)) //nolint:gosec // test helper, n is small
}

// StartCount returns how many times Serve was called.
func (m *MockService) StartCount() int32 {
	return m.startCount.Load()
}

// StopCount returns how many times Serve returned.
func (m *MockService) StopCount() int32 {
	return m.stopCount.Load()
}

// String implements fmt.Stringer. Suture uses it in log messages.
func (m *MockService) String() string {
	return m.name
}
