// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Duration of MongoDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of MongoDB query errors",
		},
		[]string{"operation", "collection", "error_type"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60}, // summary calls wait on the LLM
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Summary Cache Metrics
	SummaryCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analysis_cache_hits_total",
			Help: "Total number of summary requests served from cache",
		},
	)

	SummaryCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analysis_cache_misses_total",
			Help: "Total number of summary requests that recomputed",
		},
	)

	SummaryCacheShared = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "analysis_cache_shared_total",
			Help: "Total number of concurrent summary requests that joined an in-flight computation",
		},
	)

	// LLM Metrics
	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_request_duration_seconds",
			Help:    "Duration of LLM generate calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"model"},
	)

	LLMRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_requests_total",
			Help: "Total number of LLM generate calls by outcome",
		},
		[]string{"model", "status"}, // status: success, unavailable, failure
	)

	FallbackResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "analysis_fallback_total",
			Help: "Total number of summaries that used heuristic recommendations",
		},
		[]string{"reason"}, // reason: unavailable, failure
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	DatabaseUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "database_up",
			Help: "Whether the last MongoDB health ping succeeded (1) or failed (0)",
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordDBQuery records a MongoDB query metric
func RecordDBQuery(operation, collection string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, collection).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, collection, classifyError(err)).Inc()
	}
}

// classifyError keeps error_type cardinality bounded.
func classifyError(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "other"
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordLLMRequest records one generate call and its outcome.
func RecordLLMRequest(model, status string, duration time.Duration) {
	LLMRequestDuration.WithLabelValues(model).Observe(duration.Seconds())
	LLMRequestsTotal.WithLabelValues(model, status).Inc()
}

// RecordFallback counts a summary that fell back to heuristics.
func RecordFallback(reason string) {
	FallbackResponses.WithLabelValues(reason).Inc()
}

// RecordCacheLookup counts a summary cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		SummaryCacheHits.Inc()
	} else {
		SummaryCacheMisses.Inc()
	}
}

// SetDatabaseUp records the outcome of the latest database health ping.
func SetDatabaseUp(up bool) {
	if up {
		DatabaseUp.Set(1)
	} else {
		DatabaseUp.Set(0)
	}
}
