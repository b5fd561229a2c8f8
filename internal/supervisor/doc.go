// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package supervisor runs MovieMatch's long-lived services under suture v4.

# Tree

	moviematch
	├── data-layer
	│   └── poster-store-gc       (POSTER_STORE=badger)
	├── background-layer
	│   └── poster-warmup         (POSTER_WARMUP=true)
	└── api-layer
	    └── http-server

Each layer has its own failure counter, so a warmup that keeps failing
against OMDb backs off without restarting the HTTP server.

Suture events are logged through sutureslog using the zerolog-backed
slog.Logger from the logging package.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
	tree.AddBackgroundService(services.NewPosterWarmupService(resolver, store, services.PosterWarmupConfig{}, logger))

	errCh := tree.ServeBackground(ctx)

# Configuration

Zero fields in TreeConfig take suture's defaults: FailureThreshold 5,
FailureDecay 30s, FailureBackoff 15s, ShutdownTimeout 10s.

# What Is Not Supervised

Model artifacts are loaded once in main before the tree starts. A failed
load is not retried; the HTTP server still runs and reports not ready.

# Shutdown

Cancel the context passed to Serve or ServeBackground. Services that miss
ShutdownTimeout show up in UnstoppedServiceReport.
*/
package supervisor
