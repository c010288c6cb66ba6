// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/labstock/internal/analysis"
	"github.com/tomtom215/labstock/internal/api"
	"github.com/tomtom215/labstock/internal/cache"
	"github.com/tomtom215/labstock/internal/config"
	"github.com/tomtom215/labstock/internal/database"
	"github.com/tomtom215/labstock/internal/llm"
	"github.com/tomtom215/labstock/internal/logging"
	"github.com/tomtom215/labstock/internal/metrics"
	"github.com/tomtom215/labstock/internal/models"
	"github.com/tomtom215/labstock/internal/supervisor"
	"github.com/tomtom215/labstock/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	httpShutdownTimeout = 10 * time.Second
	closeTimeout        = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrMissingCredential) {
			logging.Fatal().Err(err).Msg("Gemini credential missing; set GEMINI_API_KEY or GOOGLE_API_KEY")
		}
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(loggingConfig(cfg))
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("database", cfg.Database.Name).
		Str("model", cfg.Gemini.Model).
		Str("cache_key", cfg.Analysis.CacheKey).
		Dur("cache_ttl", cfg.Analysis.CacheTTL()).
		Msg("Starting labstock")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// An unreachable server starts degraded; /health/ready fails until it answers.
	store, err := database.Connect(ctx, &cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create MongoDB client")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logging.Error().Err(err).Msg("Error closing MongoDB client")
		}
	}()

	// An unusable client degrades /gemini-summary to fallback; it does not stop startup.
	gateway := llm.NewGenAIGateway(ctx, &cfg.Gemini)

	slot := cache.NewSlot[*models.AnalysisResult](cfg.Analysis.CacheTTL())
	svc := analysis.NewService(store, gateway, slot,
		analysis.WithKeyFunc(analysis.KeyFuncFor(cfg.Analysis.CacheKey)),
	)

	handler := api.NewHandler(svc, store,
		api.WithVersion(version),
		api.WithSummaryTimeout(cfg.Server.SummaryTimeout),
	)
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddDataService(services.NewDatabaseMonitorService(store, cfg.Database.MonitorInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, httpShutdownTimeout))

	watchLogLevel()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, u := range unstopped {
		logging.Warn().Str("service", u.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Labstock stopped")
}

func loggingConfig(cfg *config.Config) logging.Config {
	return logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
		Output: os.Stderr,
	}
}

// watchLogLevel reapplies logging settings when the config file changes.
// Everything else is read once at startup and needs a restart.
func watchLogLevel() {
	path := config.ConfigFile()
	if path == "" {
		return
	}
	err := config.WatchConfigFile(path, func() {
		cfg, err := config.Load()
		if err != nil {
			logging.Warn().Err(err).Str("path", path).Msg("Ignoring invalid config file change")
			return
		}
		logging.Init(loggingConfig(cfg))
		logging.Info().Str("path", path).Str("level", cfg.Logging.Level).Msg("Logging configuration reloaded")
	})
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Config file watch unavailable")
	}
}
