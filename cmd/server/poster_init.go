// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package main

import (
	"context"

	"github.com/tomtom215/moviematch/internal/artifacts"
	"github.com/tomtom215/moviematch/internal/config"
	"github.com/tomtom215/moviematch/internal/logging"
	"github.com/tomtom215/moviematch/internal/poster"
	"github.com/tomtom215/moviematch/internal/supervisor"
	"github.com/tomtom215/moviematch/internal/supervisor/services"
)

// initPosters builds the poster resolver and registers its background
// services. An unreachable persistent store degrades to memory-only caching.
func initPosters(ctx context.Context, cfg *config.Config, store *artifacts.Store, tree *supervisor.SupervisorTree) *poster.Resolver {
	logger := logging.WithComponent("poster")

	resolver, err := poster.NewFromConfig(ctx, &cfg.Poster, logger)
	if err != nil {
		logger.Warn().Err(err).Str("store", cfg.Poster.Store).Msg("Poster store unavailable, using memory cache only")
		memOnly := cfg.Poster
		memOnly.Store = poster.StoreNone
		resolver, err = poster.NewFromConfig(ctx, &memOnly, logger)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to create poster resolver")
		}
	}

	if gc, ok := resolver.Store().(services.GarbageCollector); ok {
		tree.AddDataService(services.NewStoreGCService(gc, 0, logger))
	}

	if cfg.Poster.Warmup && store.Ready() {
		tree.AddBackgroundService(services.NewPosterWarmupService(resolver, store, services.PosterWarmupConfig{
			Limit: cfg.Recommend.ColdStartLimit,
		}, logger))
	}

	return resolver
}
