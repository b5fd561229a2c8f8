// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package artifacts

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moviematch/internal/logging"
	"github.com/tomtom215/moviematch/internal/metrics"
)

// Store holds the single Snapshot for the process lifetime.
//
// Load runs at most once. Until it succeeds, Snapshot returns
// ErrDataUnavailable and Ready reports false.
type Store struct {
	dir    string
	opts   Options
	logger zerolog.Logger

	once    sync.Once
	ready   atomic.Bool
	snap    atomic.Pointer[Snapshot]
	loadErr atomic.Pointer[error]
}

// NewStore creates a store for the artifacts in dir. Nothing is read until Load.
func NewStore(dir string, opts Options) *Store {
	return &Store{
		dir:    dir,
		opts:   opts,
		logger: logging.WithComponent("artifacts"),
	}
}

// NewReadyStore wraps an already built snapshot.
func NewReadyStore(snap *Snapshot) *Store {
	s := &Store{logger: logging.WithComponent("artifacts")}
	s.once.Do(func() {})
	s.snap.Store(snap)
	s.ready.Store(true)
	return s
}

// Load reads the artifacts. Later calls return the first call's result.
func (s *Store) Load(ctx context.Context) error {
	s.once.Do(func() {
		start := time.Now()
		s.logger.Info().Str("dir", s.dir).Msg("Loading model artifacts")

		snap, err := Load(ctx, s.dir, s.opts)
		if err != nil {
			s.loadErr.Store(&err)
			metrics.RecordArtifactLoad(time.Since(start), nil, err)
			s.logger.Error().Err(err).Str("dir", s.dir).Msg("Failed to load model artifacts")
			return
		}

		s.snap.Store(snap)
		s.ready.Store(true)

		sizes := snap.Sizes()
		metrics.RecordArtifactLoad(time.Since(start), sizes, nil)
		s.logger.Info().
			Int("catalog", sizes["catalog"]).
			Int("cf_index", sizes["cf_index"]).
			Int("trending", sizes["trending"]).
			Dur("duration", time.Since(start)).
			Msg("Model artifacts loaded")
	})
	return s.Err()
}

// Snapshot returns the loaded model, or ErrDataUnavailable.
func (s *Store) Snapshot() (*Snapshot, error) {
	if !s.ready.Load() {
		if err := s.Err(); err != nil {
			return nil, err
		}
		return nil, ErrDataUnavailable
	}
	return s.snap.Load(), nil
}

// Ready reports whether a snapshot is available.
func (s *Store) Ready() bool {
	return s.ready.Load()
}

// Err returns the load error, if any.
func (s *Store) Err() error {
	if s.ready.Load() {
		return nil
	}
	if p := s.loadErr.Load(); p != nil {
		return *p
	}
	return nil
}

// Dir returns the artifact directory.
func (s *Store) Dir() string {
	return s.dir
}
