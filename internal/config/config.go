// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the MovieMatch server and CLI.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Artifacts ArtifactsConfig `koanf:"artifacts"`
	Recommend RecommendConfig `koanf:"recommend"`
	Poster    PosterConfig    `koanf:"poster"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`          // read and write timeout
	RequestTimeout  time.Duration `koanf:"request_timeout"`  // per-handler deadline
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"` // graceful drain window
	Environment     string        `koanf:"environment"`      // development, staging, production
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig maps onto logging.Config.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json (production) or console (local development).
	Format string `koanf:"format"`

	// Caller adds file:line to log entries.
	Caller bool `koanf:"caller"`
}

// ArtifactsConfig locates the precomputed model artifacts.
//
// The directory must contain movies.json, content_similarity.npy,
// tmdb_to_cf.json, cf_index.json and cf_similarity.npy. trending.json is
// optional unless RequireTrending is set.
type ArtifactsConfig struct {
	Dir             string `koanf:"dir"`
	RequireTrending bool   `koanf:"require_trending"`
}

// RecommendConfig tunes the recommendation pipeline.
type RecommendConfig struct {
	// DefaultAlpha is the content weight used when a request omits alpha.
	DefaultAlpha float64 `koanf:"default_alpha"`

	// TopK is the number of content candidates pulled before filtering.
	TopK int `koanf:"top_k"`

	// Limit caps the number of recommendations returned.
	Limit int `koanf:"limit"`

	// FuzzyThreshold is the minimum token-sort score (0-100) for a fuzzy title match.
	FuzzyThreshold int `koanf:"fuzzy_threshold"`

	// ColdStartLimit caps the trending fallback list.
	ColdStartLimit int `koanf:"cold_start_limit"`

	// AllGenre is the sentinel that disables genre filtering.
	AllGenre string `koanf:"all_genre"`

	// Genres lists the options advertised by /api/v1/genres.
	Genres []string `koanf:"genres"`
}

// PosterConfig configures poster URL resolution.
type PosterConfig struct {
	// Enabled turns on OMDb lookups. Without it every poster is a placeholder.
	Enabled bool `koanf:"enabled"`

	OMDbURL    string        `koanf:"omdb_url"`
	OMDbAPIKey string        `koanf:"omdb_api_key"`
	Timeout    time.Duration `koanf:"timeout"`

	// RequestsPerSecond and Burst throttle outbound OMDb calls.
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`

	CacheSize      int           `koanf:"cache_size"`
	CacheTTL       time.Duration `koanf:"cache_ttl"`
	PlaceholderTTL time.Duration `koanf:"placeholder_ttl"`

	// Store selects the second-level cache: none, badger or redis.
	Store      string `koanf:"store"`
	BadgerPath string `koanf:"badger_path"`
	RedisAddr  string `koanf:"redis_addr"`
	RedisDB    int    `koanf:"redis_db"`

	// Warmup resolves trending posters once after startup.
	Warmup bool `koanf:"warmup"`

	// Placeholder controls whether unresolved posters fall back to placehold.co.
	Placeholder bool `koanf:"placeholder"`
}

// SecurityConfig holds HTTP hardening settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// Load is the entry point used by cmd/server.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
