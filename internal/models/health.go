// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package models

import "time"

// HealthStatus is the payload of the health endpoints.
type HealthStatus struct {
	Status    string    `json:"status"`
	Version   string    `json:"version,omitempty"`
	Uptime    float64   `json:"uptime_seconds"`
	Timestamp time.Time `json:"timestamp"`

	// Readiness details; omitted by the liveness probe.
	Ready        *bool      `json:"ready,omitempty"`
	CatalogSize  int        `json:"catalog_size,omitempty"`
	CFSize       int        `json:"cf_size,omitempty"`
	TrendingSize int        `json:"trending_size,omitempty"`
	LoadedAt     *time.Time `json:"loaded_at,omitempty"`
	Error        string     `json:"error,omitempty"`
}

// GenresResponse lists the genre options offered to clients.
type GenresResponse struct {
	Genres []string `json:"genres"`
	All    string   `json:"all"`
}
