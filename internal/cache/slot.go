// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/singleflight"
)

// Slot is a single-entry TTL cache. It holds at most one value, tagged with
// the key it was computed for. Storing a value replaces the previous one.
//
// A value is fresh when the requested key matches the stored key and less
// than ttl has elapsed since it was stored. A ttl of zero or less disables
// caching: every lookup misses, though Set still records the value.
//
// Concurrent misses for the same key are coalesced with singleflight, so only
// one computation runs at a time per key.
//
// Thread Safety: all methods are safe for concurrent use.
type Slot[T any] struct {
	mu       sync.Mutex
	key      string
	value    T
	storedAt time.Time
	occupied bool

	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group
	stats Stats
}

// Stats tracks slot performance counters.
type Stats struct {
	Hits     int64 `json:"hits"`
	Misses   int64 `json:"misses"`
	Shared   int64 `json:"shared"`
	Computes int64 `json:"computes"`
	Occupied bool  `json:"occupied"`
}

// Option configures a Slot.
type Option func(*slotOptions)

type slotOptions struct {
	now func() time.Time
}

// WithClock injects the time source. Tests use it to step past the TTL.
func WithClock(now func() time.Time) Option {
	return func(o *slotOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// NewSlot creates an empty slot with the given TTL.
//
//	slot := cache.NewSlot[*models.AnalysisResult](10 * time.Minute)
func NewSlot[T any](ttl time.Duration, opts ...Option) *Slot[T] {
	o := slotOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Slot[T]{ttl: ttl, now: o.now}
}

// Get returns the stored value when it is fresh for key.
func (s *Slot[T]) Get(key string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.freshLocked(key) {
		s.stats.Hits++
		return s.value, true
	}
	s.stats.Misses++
	var zero T
	return zero, false
}

// freshLocked reports whether the slot holds a fresh value for key. Caller holds mu.
func (s *Slot[T]) freshLocked(key string) bool {
	if !s.occupied || s.ttl <= 0 || s.key != key {
		return false
	}
	return s.now().Sub(s.storedAt) < s.ttl
}

// Set stores value under key, replacing whatever the slot held.
func (s *Slot[T]) Set(key string, value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.key = key
	s.value = value
	s.storedAt = s.now()
	s.occupied = true
}

// Lookup describes how GetOrCompute produced its value.
type Lookup struct {
	// Cached is true when the value came from the slot without computing.
	Cached bool
	// Shared is true when this caller joined another caller's computation.
	Shared bool
}

// GetOrCompute returns the fresh value for key, or runs compute and stores
// its result. With forceRefresh the read is skipped but the result is still
// stored. A compute error is returned as-is and leaves the slot untouched.
func (s *Slot[T]) GetOrCompute(ctx context.Context, key string, forceRefresh bool, compute func(context.Context) (T, error)) (T, Lookup, error) {
	if !forceRefresh {
		if v, ok := s.Get(key); ok {
			return v, Lookup{Cached: true}, nil
		}
	}

	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		s.mu.Lock()
		s.stats.Computes++
		s.mu.Unlock()

		computed, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		s.Set(key, computed)
		return computed, nil
	})

	if shared {
		s.mu.Lock()
		s.stats.Shared++
		s.mu.Unlock()
	}

	if err != nil {
		var zero T
		return zero, Lookup{Shared: shared}, err
	}
	return v.(T), Lookup{Shared: shared}, nil //nolint:forcetypeassert // the closure only returns T
}

// GetStats returns a snapshot of the counters and whether a value is stored.
func (s *Slot[T]) GetStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.stats
	st.Occupied = s.occupied
	return st
}

// GenerateKey builds a compact deterministic key from a prefix and a
// JSON-serializable parameter value.
//
//	key := cache.GenerateKey("summary", params) // "summary:3f2a..."
func GenerateKey(prefix string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", prefix, params)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", prefix, hash[:16])
}
