// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package poster

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moviematch/internal/config"
)

// NewFromConfig builds a Resolver with the configured store and, when
// enabled, an OMDb client behind a circuit breaker.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewFromConfig(ctx context.Context, cfg *config.PosterConfig, logger zerolog.Logger) (*Resolver, error) {
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var fetcher Fetcher
	if cfg.Enabled {
		fetcher = NewCircuitBreakerClient(NewOMDbClient(OMDbConfig{
			BaseURL:           cfg.OMDbURL,
			APIKey:            cfg.OMDbAPIKey,
			Timeout:           cfg.Timeout,
			RequestsPerSecond: cfg.RequestsPerSecond,
			Burst:             cfg.Burst,
		}))
	}

	logger.Info().
		Bool("omdb", cfg.Enabled).
		Str("store", cfg.Store).
		Bool("placeholder", cfg.Placeholder).
		Msg("Poster resolver configured")

	return NewResolver(fetcher, store, Options{
		CacheSize:      cfg.CacheSize,
		CacheTTL:       cfg.CacheTTL,
		PlaceholderTTL: cfg.PlaceholderTTL,
		Placeholder:    cfg.Placeholder,
	}, logger), nil
}

func openStore(ctx context.Context, cfg *config.PosterConfig) (Store, error) {
	switch cfg.Store {
	case "", StoreNone:
		return nil, nil
	case StoreBadger:
		return OpenBadgerStore(cfg.BadgerPath)
	case StoreRedis:
		return NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisDB)
	default:
		return nil, fmt.Errorf("unknown poster store %q", cfg.Store)
	}
}
