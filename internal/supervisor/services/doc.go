// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

/*
Package services provides suture.Service wrappers for labstock components.

Each wrapper turns a component's lifecycle into suture's context-aware
Serve(ctx) error and implements fmt.Stringer so supervisor logs name it.

HTTP Server (HTTPServerService):
  - Runs ListenAndServe in a goroutine
  - Shuts down with its own timeout once the context is canceled
  - Returns listen errors so the supervisor restarts it

Database Monitor (DatabaseMonitorService):
  - Pings MongoDB on an interval
  - Exports the database_up gauge
  - Logs when the database becomes unreachable and when it recovers

# Usage

	server := &http.Server{
	    Addr:              cfg.Server.Addr(),
	    Handler:           router.SetupChi(),
	    ReadHeaderTimeout: 10 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	tree.AddDataService(services.NewDatabaseMonitorService(store, 30*time.Second))
*/
package services
