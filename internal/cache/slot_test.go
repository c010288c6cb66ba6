// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestSlotBasicOperations(t *testing.T) {
	t.Parallel()

	s := NewSlot[string](time.Minute)

	if _, ok := s.Get("summary"); ok {
		t.Error("Expected empty slot to miss")
	}

	s.Set("summary", "v1")
	v, ok := s.Get("summary")
	if !ok || v != "v1" {
		t.Errorf("Get() = %q, %v; want v1, true", v, ok)
	}

	if _, ok := s.Get("other"); ok {
		t.Error("Expected a different key to miss")
	}
}

func TestSlotExpiration(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	s := NewSlot[int](10*time.Minute, WithClock(clock.Now))
	s.Set("k", 42)

	clock.Advance(10*time.Minute - time.Second)
	if _, ok := s.Get("k"); !ok {
		t.Error("Expected hit just before TTL")
	}

	clock.Advance(time.Second)
	if _, ok := s.Get("k"); ok {
		t.Error("Expected miss at exactly TTL")
	}
}

func TestSlotZeroTTLNeverHits(t *testing.T) {
	t.Parallel()

	s := NewSlot[int](0)
	s.Set("k", 1)
	if _, ok := s.Get("k"); ok {
		t.Error("Expected zero TTL to disable hits")
	}
}

func TestSlotSetReplacesPreviousKey(t *testing.T) {
	t.Parallel()

	s := NewSlot[string](time.Minute)
	s.Set("a", "first")
	s.Set("b", "second")

	if _, ok := s.Get("a"); ok {
		t.Error("Expected single slot to drop key a")
	}
	if v, ok := s.Get("b"); !ok || v != "second" {
		t.Errorf("Get(b) = %q, %v; want second, true", v, ok)
	}
}

func TestGetOrCompute(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	s := NewSlot[int](time.Minute, WithClock(clock.Now))
	calls := 0
	compute := func(context.Context) (int, error) {
		calls++
		return calls, nil
	}

	v, lookup, err := s.GetOrCompute(context.Background(), "k", false, compute)
	if err != nil || v != 1 || lookup.Cached {
		t.Fatalf("first call = %d, %+v, %v; want 1, not cached, nil", v, lookup, err)
	}

	v, lookup, _ = s.GetOrCompute(context.Background(), "k", false, compute)
	if v != 1 || !lookup.Cached {
		t.Errorf("second call = %d, %+v; want 1 from cache", v, lookup)
	}

	v, lookup, _ = s.GetOrCompute(context.Background(), "k", true, compute)
	if v != 2 || lookup.Cached {
		t.Errorf("force refresh = %d, %+v; want recompute 2", v, lookup)
	}

	v, lookup, _ = s.GetOrCompute(context.Background(), "k", false, compute)
	if v != 2 || !lookup.Cached {
		t.Errorf("after force refresh = %d, %+v; want 2 from cache", v, lookup)
	}

	clock.Advance(time.Minute)
	v, _, _ = s.GetOrCompute(context.Background(), "k", false, compute)
	if v != 3 {
		t.Errorf("after expiry = %d, want 3", v)
	}
}

func TestGetOrComputeErrorLeavesSlot(t *testing.T) {
	t.Parallel()

	s := NewSlot[string](time.Minute)
	s.Set("k", "old")

	boom := errors.New("boom")
	_, _, err := s.GetOrCompute(context.Background(), "k", true, func(context.Context) (string, error) {
		return "", boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	if v, ok := s.Get("k"); !ok || v != "old" {
		t.Errorf("Get() = %q, %v; want old value retained", v, ok)
	}
}

func TestGetOrComputeCoalesces(t *testing.T) {
	t.Parallel()

	s := NewSlot[int](time.Minute)
	var computes atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{})

	compute := func(context.Context) (int, error) {
		if computes.Add(1) == 1 {
			close(started)
		}
		<-release
		return 7, nil
	}

	const callers = 8
	var wg sync.WaitGroup
	results := make([]int, callers)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _, _ = s.GetOrCompute(context.Background(), "k", false, compute)
	}()
	<-started

	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _, _ = s.GetOrCompute(context.Background(), "k", false, compute)
		}(i)
	}

	// Give followers time to join the in-flight call before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := computes.Load(); n != 1 {
		t.Errorf("compute ran %d times, want 1", n)
	}
	for i, r := range results {
		if r != 7 {
			t.Errorf("results[%d] = %d, want 7", i, r)
		}
	}
}

func TestSlotStats(t *testing.T) {
	t.Parallel()

	s := NewSlot[int](time.Minute)
	if st := s.GetStats(); st != (Stats{}) {
		t.Errorf("new slot stats = %+v, want zero", st)
	}

	compute := func(context.Context) (int, error) { return 1, nil }
	ctx := context.Background()
	_, _, _ = s.GetOrCompute(ctx, "k", false, compute) // miss, compute
	_, _, _ = s.GetOrCompute(ctx, "k", false, compute) // hit
	_, _, _ = s.GetOrCompute(ctx, "k", true, compute)  // forced compute, no read

	want := Stats{Hits: 1, Misses: 1, Computes: 2, Occupied: true}
	if st := s.GetStats(); st != want {
		t.Errorf("GetStats() = %+v, want %+v", st, want)
	}
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	type params struct {
		Days int `json:"days"`
		TopN int `json:"top_n"`
	}

	a := GenerateKey("summary", params{Days: 30, TopN: 10})
	b := GenerateKey("summary", params{Days: 30, TopN: 10})
	c := GenerateKey("summary", params{Days: 7, TopN: 10})

	if a != b {
		t.Errorf("same params produced %q and %q", a, b)
	}
	if a == c {
		t.Errorf("different params produced the same key %q", a)
	}
	if len(a) != len("summary:")+32 {
		t.Errorf("key length = %d, want %d", len(a), len("summary:")+32)
	}
}
