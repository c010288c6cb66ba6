// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/labstock/internal/config"
	"github.com/tomtom215/labstock/internal/middleware"
)

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()

	h := testRouter(&mockService{}, mockPinger{})

	nf := do(t, h, http.MethodGet, "/analysis/nope", "")
	if nf.Code != http.StatusNotFound || decodeError(t, nf).Error.Code != ErrCodeNotFound {
		t.Errorf("unknown route = %d %s", nf.Code, nf.Body.String())
	}

	mna := do(t, h, http.MethodGet, "/analysis/gemini-summary", "")
	if mna.Code != http.StatusMethodNotAllowed || decodeError(t, mna).Error.Code != ErrCodeMethodNotAllowed {
		t.Errorf("GET summary = %d %s", mna.Code, mna.Body.String())
	}
}

func TestRouter_RequestIDAndSecurityHeaders(t *testing.T) {
	t.Parallel()

	h := testRouter(&mockService{}, mockPinger{})

	req := httptest.NewRequest(http.MethodGet, "/analysis/usage", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get(middleware.RequestIDHeader); got != "req-123" {
		t.Errorf("X-Request-ID = %q, want req-123", got)
	}
	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Cache-Control":          "no-store",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
}

func TestRouter_CORS(t *testing.T) {
	t.Parallel()

	h := testRouter(&mockService{}, mockPinger{})

	tests := []struct {
		name      string
		origin    string
		wantAllow string
	}{
		{"vite dev server", "http://localhost:5173", "http://localhost:5173"},
		{"loopback 3000", "http://127.0.0.1:3000", "http://127.0.0.1:3000"},
		{"unknown origin", "https://evil.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodOptions, "/analysis/gemini-summary", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", "Content-Type")
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.wantAllow)
			}
			if tt.wantAllow != "" && rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
				t.Error("Allow-Credentials not set")
			}
		})
	}
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()

	h := testRouter(&mockService{}, mockPinger{})
	do(t, h, http.MethodGet, "/analysis/usage?days=2", "")

	rec := do(t, h, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `api_requests_total{endpoint="/analysis/usage"`) {
		t.Error("metrics missing api_requests_total for /analysis/usage")
	}
}

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()

	mw := NewChiMiddlewareFromConfig(&config.SecurityConfig{
		RateLimitReqs:   2,
		RateLimitWindow: time.Minute,
	})
	h := NewRouter(NewHandler(&mockService{}, mockPinger{}), mw).SetupChi()

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = do(t, h, http.MethodGet, "/analysis/low-stock", "")
	}
	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("third request status = %d, want 429", last.Code)
	}
	if resp := decodeError(t, last); resp.Error.Code != ErrCodeTooManyRequests {
		t.Errorf("code = %s", resp.Error.Code)
	}

	// Health has its own, larger budget.
	if rec := do(t, h, http.MethodGet, "/health/live", ""); rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestNewChiMiddlewareFromConfig(t *testing.T) {
	t.Parallel()

	m := NewChiMiddlewareFromConfig(&config.SecurityConfig{
		CORSOrigins:       []string{"https://lab.example"},
		RateLimitReqs:     50,
		RateLimitWindow:   30 * time.Second,
		RateLimitDisabled: true,
	})

	if len(m.config.CORSAllowedOrigins) != 1 || m.config.CORSAllowedOrigins[0] != "https://lab.example" {
		t.Errorf("CORSAllowedOrigins = %v", m.config.CORSAllowedOrigins)
	}
	if m.config.RateLimitRequests != 50 || m.config.RateLimitWindow != 30*time.Second || !m.config.RateLimitDisabled {
		t.Errorf("rate limit config = %+v", m.config)
	}

	empty := NewChiMiddlewareFromConfig(&config.SecurityConfig{RateLimitReqs: 1, RateLimitWindow: time.Second})
	if len(empty.config.CORSAllowedOrigins) != len(config.DefaultCORSOrigins) {
		t.Errorf("empty origins should fall back to defaults, got %v", empty.config.CORSAllowedOrigins)
	}
}

func TestDefaultChiMiddlewareConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	if !cfg.CORSAllowCredentials {
		t.Error("credentials should be allowed")
	}
	want := []string{"GET", "POST", "OPTIONS"}
	if strings.Join(cfg.CORSAllowedMethods, ",") != strings.Join(want, ",") {
		t.Errorf("methods = %v, want %v", cfg.CORSAllowedMethods, want)
	}
	if cfg.RateLimitOnLimit == nil {
		t.Error("limit handler not set")
	}
}
