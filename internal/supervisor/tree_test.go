// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestNewSupervisorTreeDefaults(t *testing.T) {
	t.Parallel()

	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{})
	if err != nil {
		t.Fatalf("NewSupervisorTree: %v", err)
	}
	if tree.Root() == nil {
		t.Fatal("Root() returned nil")
	}
	if got, want := tree.Config(), DefaultTreeConfig(); got != want {
		t.Errorf("Config() = %+v, want %+v", got, want)
	}

	custom, _ := NewSupervisorTree(quietLogger(), TreeConfig{FailureThreshold: 2, ShutdownTimeout: time.Second})
	cfg := custom.Config()
	if cfg.FailureThreshold != 2 || cfg.ShutdownTimeout != time.Second {
		t.Errorf("explicit values overwritten: %+v", cfg)
	}
	if cfg.FailureDecay != 30 || cfg.FailureBackoff != 15*time.Second {
		t.Errorf("zero values not defaulted: %+v", cfg)
	}
}

func TestSupervisorTreeStartsBothLayers(t *testing.T) {
	t.Parallel()

	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})
	dataSvc := NewMockService("data-service")
	apiSvc := NewMockService("api-service")
	tree.AddDataService(dataSvc)
	tree.AddAPIService(apiSvc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	if !waitFor(t, time.Second, func() bool { return dataSvc.StartCount() > 0 && apiSvc.StartCount() > 0 }) {
		t.Fatalf("services not started: data=%d api=%d", dataSvc.StartCount(), apiSvc.StartCount())
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not shut down in time")
	}

	if dataSvc.StopCount() < 1 || apiSvc.StopCount() < 1 {
		t.Errorf("services not stopped: data=%d api=%d", dataSvc.StopCount(), apiSvc.StopCount())
	}
	if report, err := tree.UnstoppedServiceReport(); err == nil && len(report) != 0 {
		t.Errorf("unstopped services: %v", report)
	}
}

func TestSupervisorTreeRestartsFailingService(t *testing.T) {
	t.Parallel()

	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})

	flaky := NewMockService("flaky-monitor")
	flaky.SetFailCount(2)
	stable := NewMockService("http")

	tree.AddDataService(flaky)
	tree.AddAPIService(stable)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tree.ServeBackground(ctx)

	if !waitFor(t, 2*time.Second, func() bool { return flaky.StartCount() >= 3 }) {
		t.Fatalf("flaky service started %d times, want >= 3", flaky.StartCount())
	}
	if got := stable.StartCount(); got != 1 {
		t.Errorf("api service started %d times, want 1 (isolated from data layer)", got)
	}
}

func TestSupervisorTreeRemoveDataService(t *testing.T) {
	t.Parallel()

	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})
	svc := NewMockService("removable")
	token := tree.AddDataService(svc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tree.ServeBackground(ctx)

	if !waitFor(t, time.Second, func() bool { return svc.StartCount() > 0 }) {
		t.Fatal("service never started")
	}
	if err := tree.RemoveDataService(token); err != nil {
		t.Fatalf("RemoveDataService: %v", err)
	}
	if !waitFor(t, time.Second, func() bool { return svc.StopCount() > 0 }) {
		t.Error("removed service was not stopped")
	}
}
