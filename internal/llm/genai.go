// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/tomtom215/labstock/internal/config"
	"github.com/tomtom215/labstock/internal/logging"
	"github.com/tomtom215/labstock/internal/metrics"
)

// BreakerName labels the Gemini breaker in metrics and logs.
const BreakerName = "gemini"

// ErrRateLimited is the failure detail when the outbound quota is spent.
var ErrRateLimited = errors.New("gemini request rate limit exceeded")

// ContentGenerator is the slice of the genai client the gateway uses.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GenAIGateway calls Gemini through the google.golang.org/genai SDK.
type GenAIGateway struct {
	gen       ContentGenerator
	model     string
	extractor TextExtractor
	breaker   *Breaker
	limiter   *rate.Limiter
}

// Option configures a GenAIGateway.
type Option func(*GenAIGateway)

// WithBreaker routes calls through b.
func WithBreaker(b *Breaker) Option {
	return func(g *GenAIGateway) { g.breaker = b }
}

// WithRateLimit rejects calls the limiter does not allow. Rejected calls
// fail immediately; they never wait for a token.
func WithRateLimit(l *rate.Limiter) Option {
	return func(g *GenAIGateway) { g.limiter = l }
}

// NewRateLimiter allows rpm calls per minute with a burst of rpm.
// It returns nil when rpm is not positive.
func NewRateLimiter(rpm int) *rate.Limiter {
	if rpm <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(float64(rpm)/60), rpm)
}

// WithExtractor replaces the default CandidateText extractor.
func WithExtractor(ex TextExtractor) Option {
	return func(g *GenAIGateway) {
		if ex != nil {
			g.extractor = ex
		}
	}
}

// NewGenAIGateway builds a Gemini client from cfg. If the client cannot be
// constructed the returned gateway reports StatusUnavailable on every call,
// so the server still starts and serves heuristic fallbacks.
func NewGenAIGateway(ctx context.Context, cfg *config.GeminiConfig) Gateway {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Credential(),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logging.Warn().Err(err).Msg("Gemini client unavailable, summaries will use fallback recommendations")
		return NewUnavailable(fmt.Sprintf("failed to create GenAI client: %v", err))
	}

	var opts []Option
	if cfg.BreakerEnabled {
		opts = append(opts, WithBreaker(NewBreaker(BreakerName, DefaultBreakerSettings())))
	}
	if l := NewRateLimiter(cfg.RateLimitRPM); l != nil {
		opts = append(opts, WithRateLimit(l))
	}
	logging.Info().
		Str("model", cfg.Model).
		Bool("breaker", cfg.BreakerEnabled).
		Int("rate_limit_rpm", cfg.RateLimitRPM).
		Msg("Gemini client initialized")
	return NewGateway(client.Models, cfg.Model, opts...)
}

// NewGateway returns a gateway over gen.
func NewGateway(gen ContentGenerator, model string, opts ...Option) *GenAIGateway {
	g := &GenAIGateway{
		gen:       gen,
		model:     model,
		extractor: CandidateText,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate implements Gateway with a single attempt.
func (g *GenAIGateway) Generate(ctx context.Context, prompt string) Result {
	start := time.Now()

	if g.limiter != nil && !g.limiter.Allow() {
		metrics.RecordLLMRequest(g.model, "rate_limited", 0)
		logging.Ctx(ctx).Warn().Str("model", g.model).Msg("Gemini call skipped, rate limit exceeded")
		return Result{Status: StatusFailure, Detail: ErrRateLimited.Error()}
	}

	var (
		text string
		err  error
	)
	if g.breaker != nil {
		text, err = g.breaker.Execute(func() (string, error) { return g.call(ctx, prompt) })
	} else {
		text, err = g.call(ctx, prompt)
	}

	if err != nil {
		metrics.RecordLLMRequest(g.model, string(StatusFailure), time.Since(start))
		logging.Ctx(ctx).Warn().Err(err).Str("model", g.model).Msg("Gemini call failed")
		return Result{Status: StatusFailure, Detail: err.Error()}
	}

	metrics.RecordLLMRequest(g.model, string(StatusSuccess), time.Since(start))
	logging.Ctx(ctx).Debug().Str("model", g.model).Dur("duration", time.Since(start)).Int("chars", len(text)).Msg("Gemini call succeeded")
	return Result{Status: StatusSuccess, Text: text}
}

// call performs the SDK request and converts panics into errors.
func (g *GenAIGateway) call(ctx context.Context, prompt string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("genai panic: %v", r)
		}
	}()

	resp, err := g.gen.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return responseText(g.extractor, resp), nil
}
