// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

/*
Package cache provides the single-slot TTL cache behind the summary endpoint.

A Slot holds one value and the key it was computed for. Lookups hit only when
the key matches and the value is younger than the TTL. GetOrCompute adds
request coalescing on top, so a burst of summary requests after expiry runs
one database and LLM round trip instead of many.

# Usage

	slot := cache.NewSlot[*models.AnalysisResult](10 * time.Minute)
	result, lookup, err := slot.GetOrCompute(ctx, key, forceRefresh, compute)
	if lookup.Cached {
	    // served from cache
	}

# Keys

Callers choose the key. A constant key caches one result regardless of
request parameters; GenerateKey hashes a parameter struct when results must
be kept apart.

# Time

NewSlot uses time.Now. WithClock injects a fake clock for tests.
*/
package cache
