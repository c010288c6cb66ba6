// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		log   func(l *slog.Logger)
		want  []string
		level string
	}{
		{
			name:  "info with attrs",
			log:   func(l *slog.Logger) { l.Info("service started", "service", "http", "port", 8000) },
			want:  []string{`"message":"service started"`, `"service":"http"`, `"port":8000`},
			level: `"level":"info"`,
		},
		{
			name:  "error with error value",
			log:   func(l *slog.Logger) { l.Error("service failed", "err", errors.New("boom")) },
			want:  []string{`"err":"boom"`},
			level: `"level":"error"`,
		},
		{
			name:  "warn with duration",
			log:   func(l *slog.Logger) { l.Warn("backoff", "wait", 2*time.Second) },
			want:  []string{`"message":"backoff"`},
			level: `"level":"warn"`,
		},
		{
			name:  "nested group",
			log:   func(l *slog.Logger) { l.Info("grouped", slog.Group("svc", "name", "api")) },
			want:  []string{`"svc.name":"api"`},
			level: `"level":"info"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			l := slog.New(NewSlogHandler(zerolog.New(&buf)))
			tt.log(l)

			out := buf.String()
			if !strings.Contains(out, tt.level) {
				t.Errorf("expected %s in %s", tt.level, out)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("expected %s in %s", w, out)
				}
			}
		})
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := slog.New(NewSlogHandler(zerolog.New(&buf))).
		With("tree", "root").
		WithGroup("child")
	l.Info("event", "id", 7)

	out := buf.String()
	if !strings.Contains(out, `"child.tree":"root"`) && !strings.Contains(out, `"tree":"root"`) {
		t.Errorf("expected pre-configured attr in %s", out)
	}
	if !strings.Contains(out, `"child.id":7`) {
		t.Errorf("expected grouped attr in %s", out)
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel))
	if h.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("info should be disabled for a warn-level logger")
	}
	if !h.Enabled(t.Context(), slog.LevelError) {
		t.Error("error should be enabled for a warn-level logger")
	}
}

func TestZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := zerologLevel(tt.in); got != tt.want {
			t.Errorf("zerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
