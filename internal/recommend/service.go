// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package recommend

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/moviematch/internal/artifacts"
	"github.com/tomtom215/moviematch/internal/metrics"
)

// SnapshotSource provides the loaded model. artifacts.Store implements it.
type SnapshotSource interface {
	Snapshot() (*artifacts.Snapshot, error)
}

// PosterResolver returns a display URL for a movie, or "" when none is
// available. It must not block past ctx.
type PosterResolver interface {
	Resolve(ctx context.Context, tmdbID int64, title string) string
}

// maxPosterLookups bounds concurrent poster lookups per response.
const maxPosterLookups = 8

// Service answers recommendation requests once artifacts are ready.
type Service struct {
	config  *Config
	source  SnapshotSource
	posters PosterResolver
	logger  zerolog.Logger

	engine atomic.Pointer[Engine]
}

// NewService creates a service. posters may be nil, in which case no poster
// URLs are attached.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(cfg *Config, source SnapshotSource, posters PosterResolver, logger zerolog.Logger) (*Service, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Service{
		config:  cfg,
		source:  source,
		posters: posters,
		logger:  logger,
	}, nil
}

// Engine returns the engine for the loaded snapshot, building it on first
// use. It returns artifacts.ErrDataUnavailable until the snapshot is ready.
func (s *Service) Engine() (*Engine, error) {
	if e := s.engine.Load(); e != nil {
		return e, nil
	}
	snap, err := s.source.Snapshot()
	if err != nil {
		return nil, err
	}
	s.engine.CompareAndSwap(nil, NewEngine(snap, s.config, s.logger))
	return s.engine.Load(), nil
}

// Config returns the service configuration.
func (s *Service) Config() *Config {
	return s.config
}

// Recommend ranks movies for req and attaches poster URLs. The only error
// is artifacts.ErrDataUnavailable; every other outcome is a response.
func (s *Service) Recommend(ctx context.Context, req Request) (*Response, error) {
	e, err := s.Engine()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, outcome := e.Recommend(req)
	metrics.RecordRecommendation(outcome, time.Since(start))

	s.attachPosters(ctx, resp)
	return resp, nil
}

func (s *Service) attachPosters(ctx context.Context, resp *Response) {
	if s.posters == nil || len(resp.Recommendations) == 0 {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxPosterLookups)
	for i := range resp.Recommendations {
		rec := &resp.Recommendations[i]
		g.Go(func() error {
			rec.PosterURL = s.posters.Resolve(gctx, rec.TMDBID, rec.Title)
			return nil
		})
	}
	_ = g.Wait()
}
