// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

/*
Package main is the entry point for the labstock server.

Labstock serves read-only analytics over a lab's MongoDB inventory (borrow
events and items) and asks Google Gemini for restock advice. When Gemini
cannot be used it answers with heuristic reorder suggestions instead.

# Application Architecture

	RootSupervisor ("labstock")
	├── DataSupervisor ("data-layer")
	│   └── Database monitor (database_up gauge)
	└── APISupervisor ("api-layer")
	    └── HTTP server (chi)

Component initialization order:

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog from LOG_LEVEL / LOG_FORMAT / LOG_CALLER
 3. Database: MongoDB client (events, items)
 4. Gemini: GenAI client behind a circuit breaker
 5. Summary cache: one TTL slot
 6. HTTP: chi router with CORS, rate limiting and Prometheus metrics
 7. Supervisor tree: suture v4

# Endpoints

	POST /analysis/gemini-summary   LLM summary (cached) with fallback
	GET  /analysis/usage            daily borrowed quantity
	GET  /analysis/top-borrowed     most borrowed items
	GET  /analysis/low-stock        items at or below a threshold
	GET  /health, /health/live, /health/ready
	GET  /metrics

# Example Usage

	export MONGO_URI=mongodb://localhost:27017/iot_lab
	export GEMINI_API_KEY=your-key
	./labstock

Startup fails when neither GEMINI_API_KEY nor GOOGLE_API_KEY is set. An
unreachable MongoDB does not stop startup: the server comes up degraded,
/health/ready answers 503 and the database monitor logs when it recovers.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains for up
to 10s, then the MongoDB client is disconnected.
*/
package main
