// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package config

import (
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"
)

// Validate checks that the configuration is complete and within bounds.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateArtifacts(); err != nil {
		return err
	}
	if err := c.validateRecommend(); err != nil {
		return err
	}
	if err := c.validatePoster(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("HTTP_REQUEST_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "error": true,
}

var validLogFormats = map[string]bool{
	"json": true, "console": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error (got %q)", c.Logging.Level)
	}
	if !validLogFormats[strings.ToLower(c.Logging.Format)] {
		return fmt.Errorf("LOG_FORMAT must be json or console (got %q)", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateArtifacts() error {
	if strings.TrimSpace(c.Artifacts.Dir) == "" {
		return fmt.Errorf("ARTIFACTS_DIR is required")
	}
	return nil
}

const (
	maxTopK           = 10000
	maxLimit          = 100
	maxFuzzyThreshold = 100
)

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if math.IsNaN(r.DefaultAlpha) || r.DefaultAlpha < 0 || r.DefaultAlpha > 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_ALPHA must be between 0 and 1")
	}
	if r.TopK < 1 || r.TopK > maxTopK {
		return fmt.Errorf("RECOMMEND_TOP_K must be between 1 and %d", maxTopK)
	}
	if r.Limit < 1 || r.Limit > maxLimit {
		return fmt.Errorf("RECOMMEND_LIMIT must be between 1 and %d", maxLimit)
	}
	if r.FuzzyThreshold < 0 || r.FuzzyThreshold > maxFuzzyThreshold {
		return fmt.Errorf("RECOMMEND_FUZZY_THRESHOLD must be between 0 and %d", maxFuzzyThreshold)
	}
	if r.ColdStartLimit < 0 || r.ColdStartLimit > maxLimit {
		return fmt.Errorf("RECOMMEND_COLD_START_LIMIT must be between 0 and %d", maxLimit)
	}
	if r.AllGenre == "" {
		return fmt.Errorf("RECOMMEND_ALL_GENRE must not be empty")
	}
	return nil
}

var validPosterStores = map[string]bool{
	"none":   true,
	"badger": true,
	"redis":  true,
}

func (c *Config) validatePoster() error {
	p := c.Poster
	if !validPosterStores[p.Store] {
		return fmt.Errorf("POSTER_STORE must be one of: none, badger, redis (got %q)", p.Store)
	}
	if p.CacheSize < 1 {
		return fmt.Errorf("POSTER_CACHE_SIZE must be at least 1")
	}
	if p.CacheTTL <= 0 || p.PlaceholderTTL <= 0 {
		return fmt.Errorf("POSTER_CACHE_TTL and POSTER_PLACEHOLDER_TTL must be positive")
	}
	if p.Store == "badger" && p.BadgerPath == "" {
		return fmt.Errorf("POSTER_BADGER_PATH is required when POSTER_STORE=badger")
	}
	if p.Store == "redis" && p.RedisAddr == "" {
		return fmt.Errorf("POSTER_REDIS_ADDR is required when POSTER_STORE=redis")
	}
	if !p.Enabled {
		return nil
	}
	return c.validateOMDb()
}

func (c *Config) validateOMDb() error {
	p := c.Poster
	if p.OMDbAPIKey == "" {
		return fmt.Errorf("OMDB_API_KEY is required when POSTER_ENABLED=true")
	}
	u, err := url.Parse(p.OMDbURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("OMDB_URL must be an absolute http(s) URL")
	}
	if p.Timeout <= 0 {
		return fmt.Errorf("POSTER_TIMEOUT must be positive")
	}
	if p.RequestsPerSecond <= 0 || p.Burst < 1 {
		return fmt.Errorf("POSTER_REQUESTS_PER_SECOND and POSTER_BURST must be positive")
	}
	return nil
}

const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// ShouldWarnAboutCORS reports a wildcard origin outside development.
func (c *Config) ShouldWarnAboutCORS() bool {
	if c.IsDevelopment() {
		return false
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// IsProduction reports ENVIRONMENT=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}

// IsDevelopment reports ENVIRONMENT=development or an unset environment.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == "development" || env == "dev"
}
