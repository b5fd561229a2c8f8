// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// GarbageCollector is satisfied by *poster.BadgerStore.
type GarbageCollector interface {
	RunGC() error
}

// StoreGCService runs value log GC on the persistent poster store at a
// fixed interval. GC errors are logged and the loop continues.
type StoreGCService struct {
	store    GarbageCollector
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewStoreGCService creates the GC loop. A non-positive interval means 10m.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStoreGCService(store GarbageCollector, interval time.Duration, logger zerolog.Logger) *StoreGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &StoreGCService{
		store:    store,
		interval: interval,
		logger:   logger.With().Str("service", "poster-store-gc").Logger(),
		name:     "poster-store-gc",
	}
}

// Serve implements suture.Service.
func (s *StoreGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			if err := s.store.RunGC(); err != nil {
				s.logger.Warn().Err(err).Msg("Poster store GC failed")
				continue
			}
			s.logger.Debug().Dur("duration", time.Since(start)).Msg("Poster store GC complete")
		}
	}
}

// String implements fmt.Stringer for suture event logs.
func (s *StoreGCService) String() string {
	return s.name
}
