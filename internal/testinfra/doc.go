// Labstock - Lab Inventory Usage Analysis Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/labstock

//go:build integration

// Package testinfra starts real dependencies in Docker for integration tests.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./internal/database/...
//
// Tests call SkipIfNoDocker first so they skip cleanly on machines without a
// Docker daemon.
package testinfra
