// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

/*
Package analysis composes the inventory queries, the prompt builder, the LLM
gateway, and the heuristic recommender into the summary operation.

A summary request runs:

 1. TopBorrowed and LowStock queries (concurrently)
 2. BuildPrompt over both result sets
 3. Gateway.Generate with the prompt
 4. Recommend, only when the gateway did not succeed
 5. Store the AnalysisResult in the single-slot cache

Summaries never fail because of the LLM. Unavailable and failed calls
produce a result with llm_available=false, a human-readable llm_response,
the gateway detail in api_error_detail, and a heuristic fallback. Database
errors are returned to the caller.

# Caching

Results are cached in one slot for the configured TTL. By default the key
ignores request parameters (GlobalKey), so a fresh summary is served to any
request until it expires or a caller sets force_refresh. ParamsKey keys the
slot by days, top_n and low_stock_threshold instead. Concurrent misses for
the same key share one computation.
*/
package analysis
