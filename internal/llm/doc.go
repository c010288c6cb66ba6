// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

/*
Package llm is the boundary to the hosted generative-text model.

A Gateway turns a prompt into a tagged Result. Nothing the provider SDK does,
whether it returns an error or panics, escapes the gateway:

  - StatusSuccess carries the response text
  - StatusUnavailable means no client could be constructed (Reason)
  - StatusFailure means the call was attempted and failed (Detail)

Each gateway makes exactly one attempt per call with no retries and no
timeout beyond the caller's context.

# Circuit Breaker

GenAIGateway optionally runs calls through a sony/gobreaker circuit breaker.
While the breaker is open calls fail fast as StatusFailure without reaching
the provider. Breaker state is exported as Prometheus metrics:

  - circuit_breaker_state{name="gemini"}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name,result}: success, failure, rejected
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

# Usage

	gw := llm.NewGenAIGateway(ctx, &cfg.Gemini)
	res := gw.Generate(ctx, prompt)
	switch res.Status {
	case llm.StatusSuccess:
	    use(res.Text)
	case llm.StatusUnavailable, llm.StatusFailure:
	    fallback()
	}
*/
package llm
