// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

/*
Package supervisor provides process supervision for labstock using suture v4.

The tree separates the HTTP server from background work so that a failing
monitor is restarted without touching request handling:

	RootSupervisor ("labstock")
	├── DataSupervisor ("data-layer")
	│   └── DatabaseMonitorService
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events (service start, failure, backoff, restart) are written
through sutureslog to an slog.Logger. In production that logger is
logging.NewSlogLogger(), which forwards to zerolog.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    logging.Fatal().Err(err).Msg("supervisor")
	}

	tree.AddDataService(services.NewDatabaseMonitorService(store, 30*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("supervisor stopped")
	}

# Restart Policy

Each layer counts failures independently. When FailureThreshold is
exceeded the layer waits FailureBackoff before restarting. Failures decay
at FailureDecay per second. Zero values in TreeConfig take suture's
defaults.

See also:
  - internal/supervisor/services: suture.Service wrappers
  - github.com/thejerf/suture/v4
*/
package supervisor
