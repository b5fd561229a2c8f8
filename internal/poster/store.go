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
)

// ErrNotFound is returned by Store.Get for unknown or expired ids.
var ErrNotFound = errors.New("poster not found")

// Store persists resolved poster URLs across restarts and replicas.
type Store interface {
	Get(ctx context.Context, tmdbID int64) (string, error)
	Set(ctx context.Context, tmdbID int64, posterURL string, ttl time.Duration) error
	Close() error
}

// record is the stored value.
type record struct {
	URL       string    `json:"url"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Store backend names.
const (
	StoreNone   = "none"
	StoreBadger = "badger"
	StoreRedis  = "redis"
)

func storeKey(prefix string, tmdbID int64) string {
	return prefix + strconv.FormatInt(tmdbID, 10)
}
