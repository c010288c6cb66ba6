// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

/*
Package api provides the HTTP layer of the analysis service.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers over an AnalysisService and a health Pinger
  - ChiMiddleware: CORS and per-IP rate limiting (go-chi/cors, go-chi/httprate)
  - Response formatting: JSON bodies and a single error envelope

Endpoints:

	POST /analysis/gemini-summary   summary with LLM text or heuristic fallback
	GET  /analysis/usage            daily borrow totals, ?days=1..365 (default 30)
	GET  /analysis/top-borrowed     ?days=1..365&limit=1..200 (defaults 30, 10)
	GET  /analysis/low-stock        ?threshold>=0 (default 5)
	GET  /health                    status, database connectivity, uptime
	GET  /health/live               liveness probe
	GET  /health/ready              readiness probe, 503 when MongoDB is unreachable
	GET  /metrics                   Prometheus exposition

Summary request body (all fields optional):

	{"days": 30, "top_n": 8, "low_stock_threshold": 5, "force_refresh": false}

Malformed JSON and non-numeric query parameters are rejected with 400
BAD_REQUEST. Out-of-range values are rejected with 400 VALIDATION_ERROR.
Both happen before any query runs.

Error Responses:

Every error uses the same envelope. detail repeats the message for clients
that only read a top-level string:

	{
	  "detail": "days must be at least 1",
	  "error": {
	    "code": "VALIDATION_ERROR",
	    "message": "days must be at least 1",
	    "details": {"fields": [...]},
	    "request_id": "..."
	  }
	}

Usage Example:

	handler := api.NewHandler(service, store)
	mw := api.NewChiMiddlewareFromConfig(&cfg.Security)
	router := api.NewRouter(handler, mw)
	srv := &http.Server{Addr: ":8000", Handler: router.SetupChi()}

Thread Safety:

Handlers hold no per-request state and are safe for concurrent use. The
summary cache lives in the analysis service.
*/
package api
