// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/moviematch/internal/artifacts"
)

// PosterResolver is satisfied by *poster.Resolver.
type PosterResolver interface {
	Resolve(ctx context.Context, tmdbID int64, title string) string
}

// SnapshotSource is satisfied by *artifacts.Store.
type SnapshotSource interface {
	Snapshot() (*artifacts.Snapshot, error)
}

// PosterWarmupConfig bounds the warmup pass.
type PosterWarmupConfig struct {
	// Limit is the number of trending entries to resolve. Default: 10
	Limit int

	// Interval is the minimum spacing between lookups. Default: 250ms
	Interval time.Duration

	// LookupTimeout bounds a single lookup. Default: 5s
	LookupTimeout time.Duration
}

func (c PosterWarmupConfig) withDefaults() PosterWarmupConfig {
	if c.Limit <= 0 {
		c.Limit = 10
	}
	if c.Interval <= 0 {
		c.Interval = 250 * time.Millisecond
	}
	if c.LookupTimeout <= 0 {
		c.LookupTimeout = 5 * time.Second
	}
	return c
}

// PosterWarmupService resolves posters for the trending list once after
// startup so cold-start responses are served from a warm cache. After the
// pass it idles until shutdown. A restart by the supervisor does not repeat
// a completed pass.
type PosterWarmupService struct {
	resolver PosterResolver
	source   SnapshotSource
	config   PosterWarmupConfig
	logger   zerolog.Logger
	name     string

	completed atomic.Bool
	resolved  atomic.Int64
}

// NewPosterWarmupService creates the warmup service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewPosterWarmupService(resolver PosterResolver, source SnapshotSource, cfg PosterWarmupConfig, logger zerolog.Logger) *PosterWarmupService {
	return &PosterWarmupService{
		resolver: resolver,
		source:   source,
		config:   cfg.withDefaults(),
		logger:   logger.With().Str("service", "poster-warmup").Logger(),
		name:     "poster-warmup",
	}
}

// Serve implements suture.Service.
func (s *PosterWarmupService) Serve(ctx context.Context) error {
	if !s.completed.Load() {
		s.warm(ctx)
	}
	<-ctx.Done()
	return ctx.Err()
}

// warm runs the pass. It marks the service completed unless ctx ends first.
func (s *PosterWarmupService) warm(ctx context.Context) {
	snap, err := s.source.Snapshot()
	if err != nil {
		// Artifacts are loaded once; there is nothing to warm.
		s.logger.Warn().Err(err).Msg("Skipping poster warmup, artifacts unavailable")
		s.completed.Store(true)
		return
	}

	entries := snap.Trending
	if len(entries) > s.config.Limit {
		entries = entries[:s.config.Limit]
	}

	start := time.Now()
	limiter := rate.NewLimiter(rate.Every(s.config.Interval), 1)
	for _, e := range entries {
		if err := limiter.Wait(ctx); err != nil {
			s.logger.Debug().Int64("resolved", s.resolved.Load()).Msg("Poster warmup interrupted")
			return
		}
		lookupCtx, cancel := context.WithTimeout(ctx, s.config.LookupTimeout)
		if u := s.resolver.Resolve(lookupCtx, e.TMDBID, e.Title); u != "" {
			s.resolved.Add(1)
		}
		cancel()
	}

	s.completed.Store(true)
	s.logger.Info().
		Int("entries", len(entries)).
		Int64("resolved", s.resolved.Load()).
		Dur("duration", time.Since(start)).
		Msg("Poster warmup complete")
}

// Completed reports whether the warmup pass has finished.
func (s *PosterWarmupService) Completed() bool {
	return s.completed.Load()
}

// Resolved returns how many lookups produced a URL.
func (s *PosterWarmupService) Resolved() int64 {
	return s.resolved.Load()
}

// String implements fmt.Stringer for suture event logs.
func (s *PosterWarmupService) String() string {
	return s.name
}
