// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package poster

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/moviematch/internal/metrics"
)

// Lookup results, used as metric labels.
const (
	resultMemoryHit   = "memory_hit"
	resultStoreHit    = "store_hit"
	resultOMDb        = "omdb"
	resultPlaceholder = "placeholder"
	resultError       = "error"
)

// Options configures a Resolver.
type Options struct {
	CacheSize      int
	CacheTTL       time.Duration
	PlaceholderTTL time.Duration

	// Placeholder enables the placehold.co fallback. When false, unresolved
	// posters are "".
	Placeholder bool
}

// DefaultOptions returns the production cache settings.
func DefaultOptions() Options {
	return Options{
		CacheSize:      4096,
		CacheTTL:       time.Hour,
		PlaceholderTTL: 5 * time.Minute,
		Placeholder:    true,
	}
}

// Resolver resolves poster URLs through the cache hierarchy. It is safe for
// concurrent use.
type Resolver struct {
	fetcher Fetcher
	store   Store
	opts    Options
	logger  zerolog.Logger

	posters      *expirable.LRU[int64, string]
	placeholders *expirable.LRU[int64, string]
	group        singleflight.Group
}

// NewResolver creates a resolver. fetcher and store may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewResolver(fetcher Fetcher, store Store, opts Options, logger zerolog.Logger) *Resolver {
	def := DefaultOptions()
	if opts.CacheSize < 1 {
		opts.CacheSize = def.CacheSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = def.CacheTTL
	}
	if opts.PlaceholderTTL <= 0 {
		opts.PlaceholderTTL = def.PlaceholderTTL
	}

	return &Resolver{
		fetcher:      fetcher,
		store:        store,
		opts:         opts,
		logger:       logger.With().Str("component", "poster").Logger(),
		posters:      expirable.NewLRU[int64, string](opts.CacheSize, nil, opts.CacheTTL),
		placeholders: expirable.NewLRU[int64, string](opts.CacheSize, nil, opts.PlaceholderTTL),
	}
}

// Resolve returns a poster URL for the movie, a placeholder, or "" when
// placeholders are disabled. It never blocks past ctx.
func (r *Resolver) Resolve(ctx context.Context, tmdbID int64, title string) string {
	if u, ok := r.posters.Get(tmdbID); ok {
		metrics.RecordPosterLookup(resultMemoryHit)
		return u
	}
	if u, ok := r.placeholders.Get(tmdbID); ok {
		metrics.RecordPosterLookup(resultPlaceholder)
		return u
	}
	if r.fetcher == nil && r.store == nil {
		metrics.RecordPosterLookup(resultPlaceholder)
		return r.fallback(tmdbID, title)
	}

	ch := r.group.DoChan(strconv.FormatInt(tmdbID, 10), func() (interface{}, error) {
		// Detached so one caller's cancellation does not fail the shared lookup.
		return r.lookup(context.WithoutCancel(ctx), tmdbID, title), nil
	})

	select {
	case res := <-ch:
		u, _ := res.Val.(string)
		return u
	case <-ctx.Done():
		return r.placeholder(title)
	}
}

func (r *Resolver) lookup(ctx context.Context, tmdbID int64, title string) string {
	if r.store != nil {
		u, err := r.store.Get(ctx, tmdbID)
		switch {
		case err == nil && u != "":
			r.remember(tmdbID, u)
			metrics.RecordPosterLookup(resultStoreHit)
			return u
		case err != nil && !errors.Is(err, ErrNotFound):
			r.logger.Warn().Err(err).Int64("tmdb_id", tmdbID).Msg("Poster store read failed")
		}
	}

	if r.fetcher == nil {
		metrics.RecordPosterLookup(resultPlaceholder)
		return r.fallback(tmdbID, title)
	}

	u, err := r.fetcher.Poster(ctx, title)
	if err != nil {
		if errors.Is(err, ErrNoPoster) {
			metrics.RecordPosterLookup(resultPlaceholder)
		} else {
			metrics.RecordPosterLookup(resultError)
			r.logger.Debug().Err(err).Int64("tmdb_id", tmdbID).Msg("Poster fetch failed")
		}
		return r.fallback(tmdbID, title)
	}

	r.remember(tmdbID, u)
	if r.store != nil {
		if err := r.store.Set(ctx, tmdbID, u, r.opts.CacheTTL); err != nil {
			r.logger.Warn().Err(err).Int64("tmdb_id", tmdbID).Msg("Poster store write failed")
		}
	}
	metrics.RecordPosterLookup(resultOMDb)
	return u
}

func (r *Resolver) remember(tmdbID int64, u string) {
	r.posters.Add(tmdbID, u)
	r.placeholders.Remove(tmdbID)
	metrics.PosterCacheEntries.Set(float64(r.posters.Len()))
}

// fallback returns the placeholder and caches it for PlaceholderTTL.
func (r *Resolver) fallback(tmdbID int64, title string) string {
	u := r.placeholder(title)
	r.placeholders.Add(tmdbID, u)
	return u
}

func (r *Resolver) placeholder(title string) string {
	if !r.opts.Placeholder {
		return ""
	}
	return PlaceholderURL(title)
}

// Close releases the persistent store.
func (r *Resolver) Close() error {
	if r.store == nil {
		return nil
	}
	return r.store.Close()
}

// Store returns the persistent store, or nil.
func (r *Resolver) Store() Store {
	return r.store
}
