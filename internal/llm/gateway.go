// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package llm

import "context"

// Status tags the outcome of a Generate call.
type Status string

const (
	// StatusSuccess means Text holds the model output.
	StatusSuccess Status = "success"
	// StatusUnavailable means the client could not be constructed.
	StatusUnavailable Status = "unavailable"
	// StatusFailure means the remote call was attempted and failed.
	StatusFailure Status = "failure"
)

// Result is the normalized outcome of one Generate call.
type Result struct {
	Status Status
	Text   string // set on StatusSuccess
	Reason string // set on StatusUnavailable
	Detail string // set on StatusFailure
}

// OK reports whether the call produced text.
func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

// Gateway sends a prompt to a generative model. Implementations never panic
// and never return provider errors directly.
type Gateway interface {
	Generate(ctx context.Context, prompt string) Result
}

// Unavailable is a Gateway that always reports StatusUnavailable.
type Unavailable struct {
	reason string
}

// NewUnavailable returns a gateway that reports reason on every call.
func NewUnavailable(reason string) *Unavailable {
	return &Unavailable{reason: reason}
}

// Generate implements Gateway.
func (u *Unavailable) Generate(_ context.Context, _ string) Result {
	return Result{Status: StatusUnavailable, Reason: u.reason}
}
