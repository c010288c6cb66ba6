// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

/*
Package metrics provides Prometheus metrics collection for Labstock.

Metrics are registered on the default registry with promauto and exposed at
/metrics in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

Database Metrics:
  - db_query_duration_seconds: MongoDB query time (histogram)
    Labels: operation, collection
  - db_query_errors_total: Query errors (counter)
    Labels: operation, collection, error_type (timeout, canceled, other)

Analysis Metrics:
  - analysis_cache_hits_total, analysis_cache_misses_total: Summary cache lookups
  - analysis_cache_shared_total: Requests coalesced onto an in-flight computation
  - analysis_fallback_total: Heuristic fallbacks (labels: reason)

LLM Metrics:
  - llm_request_duration_seconds: Generate call latency (labels: model)
  - llm_requests_total: Generate calls by outcome (labels: model, status)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (labels: name)
  - circuit_breaker_requests_total: Labels: name, result
  - circuit_breaker_state_transitions_total: Labels: name, from_state, to_state

# Usage

	start := time.Now()
	rows, err := coll.Aggregate(ctx, pipeline)
	metrics.RecordDBQuery("aggregate", "events", time.Since(start), err)
*/
package metrics
