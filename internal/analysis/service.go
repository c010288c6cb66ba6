// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package analysis

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/labstock/internal/cache"
	"github.com/tomtom215/labstock/internal/config"
	"github.com/tomtom215/labstock/internal/llm"
	"github.com/tomtom215/labstock/internal/logging"
	"github.com/tomtom215/labstock/internal/metrics"
	"github.com/tomtom215/labstock/internal/models"
)

// Fallback messages returned in llm_response.
const (
	msgUnavailable = "Gemini SDK not available; returning fallback recommendations."
	msgFailure     = "Gemini API error: %s. Returning fallback recommendations."
)

// Queries is the read side the service needs. *database.Store satisfies it.
type Queries interface {
	TopBorrowed(ctx context.Context, days, limit int) ([]models.TopBorrowedRow, error)
	LowStock(ctx context.Context, threshold int) ([]models.LowStockRow, error)
	UsageOverTime(ctx context.Context, days int) ([]models.UsagePoint, error)
}

// SummaryParams are the validated inputs of a summary request.
type SummaryParams struct {
	Days              int  `json:"days"`
	TopN              int  `json:"top_n"`
	LowStockThreshold int  `json:"low_stock_threshold"`
	ForceRefresh      bool `json:"-"`
}

// KeyFunc maps summary parameters to a cache key.
type KeyFunc func(SummaryParams) string

// GlobalCacheKey is the key every request shares under GlobalKey.
const GlobalCacheKey = "summary"

// GlobalKey ignores the parameters: one summary serves every request.
func GlobalKey(SummaryParams) string {
	return GlobalCacheKey
}

// ParamsKey keys the summary by days, top_n and low_stock_threshold.
func ParamsKey(p SummaryParams) string {
	return cache.GenerateKey(GlobalCacheKey, p)
}

// KeyFuncFor returns the KeyFunc for a config cache key mode.
func KeyFuncFor(mode string) KeyFunc {
	if mode == config.CacheKeyParams {
		return ParamsKey
	}
	return GlobalKey
}

// Service computes and caches inventory summaries.
type Service struct {
	queries Queries
	gateway llm.Gateway
	slot    *cache.Slot[*models.AnalysisResult]
	key     KeyFunc
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithKeyFunc selects how summaries are keyed in the cache.
func WithKeyFunc(fn KeyFunc) Option {
	return func(s *Service) {
		if fn != nil {
			s.key = fn
		}
	}
}

// WithClock sets the time source for generated_at.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a Service. The slot is owned by the service from here on.
func NewService(q Queries, gw llm.Gateway, slot *cache.Slot[*models.AnalysisResult], opts ...Option) *Service {
	s := &Service{
		queries: q,
		gateway: gw,
		slot:    slot,
		key:     GlobalKey,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summary returns the cached summary when fresh, otherwise computes one.
// The computation is detached from ctx cancellation so callers joining an
// in-flight computation are not failed by the caller that started it.
func (s *Service) Summary(ctx context.Context, p SummaryParams) (*models.SummaryResponse, error) {
	key := s.key(p)
	result, lookup, err := s.slot.GetOrCompute(ctx, key, p.ForceRefresh, func(ctx context.Context) (*models.AnalysisResult, error) {
		return s.compute(context.WithoutCancel(ctx), p)
	})

	metrics.RecordCacheLookup(lookup.Cached)
	if lookup.Shared {
		metrics.SummaryCacheShared.Inc()
	}
	if err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Debug().
		Bool("cached", lookup.Cached).
		Bool("shared", lookup.Shared).
		Bool("force_refresh", p.ForceRefresh).
		Bool("llm_available", result.LLMAvailable).
		Msg("Summary served")

	return &models.SummaryResponse{Cached: lookup.Cached, AnalysisResult: result}, nil
}

// compute runs the queries, the LLM call and, when needed, the fallback.
func (s *Service) compute(ctx context.Context, p SummaryParams) (*models.AnalysisResult, error) {
	var (
		top []models.TopBorrowedRow
		low []models.LowStockRow
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		top, err = s.queries.TopBorrowed(egCtx, p.Days, p.TopN)
		return err
	})
	eg.Go(func() error {
		var err error
		low, err = s.queries.LowStock(egCtx, p.LowStockThreshold)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("summary queries: %w", err)
	}

	res := s.gateway.Generate(ctx, BuildPrompt(top, low, p.Days))

	result := &models.AnalysisResult{
		Top:         top,
		Low:         low,
		GeneratedAt: s.now().UTC(),
	}

	switch {
	case res.OK():
		text := res.Text
		result.LLMAvailable = true
		result.LLMResponse = &text
	case res.Status == llm.StatusUnavailable:
		applyFallback(result, top, low, msgUnavailable, res.Reason)
		metrics.RecordFallback(string(llm.StatusUnavailable))
	default:
		applyFallback(result, top, low, fmt.Sprintf(msgFailure, res.Detail), res.Detail)
		metrics.RecordFallback(string(llm.StatusFailure))
	}

	logging.Ctx(ctx).Info().
		Int("days", p.Days).
		Int("top", len(top)).
		Int("low", len(low)).
		Str("llm_status", string(res.Status)).
		Msg("Summary computed")

	return result, nil
}

func applyFallback(r *models.AnalysisResult, top []models.TopBorrowedRow, low []models.LowStockRow, msg, detail string) {
	fb := Recommend(top, low)
	r.LLMAvailable = false
	r.LLMResponse = &msg
	r.APIErrorDetail = &detail
	r.Fallback = &fb
}

// Usage returns the uncached daily borrow series.
func (s *Service) Usage(ctx context.Context, days int) ([]models.UsagePoint, error) {
	return s.queries.UsageOverTime(ctx, days)
}

// TopBorrowed returns the uncached top borrowed items.
func (s *Service) TopBorrowed(ctx context.Context, days, limit int) ([]models.TopBorrowedRow, error) {
	return s.queries.TopBorrowed(ctx, days, limit)
}

// LowStock returns the uncached low stock items.
func (s *Service) LowStock(ctx context.Context, threshold int) ([]models.LowStockRow, error) {
	return s.queries.LowStock(ctx, threshold)
}

// CacheStats returns the summary cache counters.
func (s *Service) CacheStats() cache.Stats {
	return s.slot.GetStats()
}
