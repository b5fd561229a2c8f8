// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package recommend

import (
	"fmt"
	"math"

	"github.com/tomtom215/moviematch/internal/config"
)

// Config tunes the ranking pipeline.
type Config struct {
	// DefaultAlpha is the content weight used when a request has no usable alpha.
	DefaultAlpha float64 `json:"default_alpha"`

	// TopK is the number of content candidates considered before filtering.
	TopK int `json:"top_k"`

	// Limit caps the returned recommendations.
	Limit int `json:"limit"`

	// FuzzyThreshold is the minimum token-sort score (0-100) accepted for a fuzzy title match.
	FuzzyThreshold int `json:"fuzzy_threshold"`

	// ColdStartLimit caps the trending fallback.
	ColdStartLimit int `json:"cold_start_limit"`

	// AllGenre disables genre filtering.
	AllGenre string `json:"all_genre"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultAlpha:   0.45,
		TopK:           50,
		Limit:          10,
		FuzzyThreshold: 65,
		ColdStartLimit: 10,
		AllGenre:       "All",
	}
}

// ConfigFrom maps the recommend section of the application config.
func ConfigFrom(rc *config.RecommendConfig) *Config {
	return &Config{
		DefaultAlpha:   rc.DefaultAlpha,
		TopK:           rc.TopK,
		Limit:          rc.Limit,
		FuzzyThreshold: rc.FuzzyThreshold,
		ColdStartLimit: rc.ColdStartLimit,
		AllGenre:       rc.AllGenre,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if math.IsNaN(c.DefaultAlpha) || c.DefaultAlpha < 0 || c.DefaultAlpha > 1 {
		return fmt.Errorf("default_alpha must be in [0, 1], got %v", c.DefaultAlpha)
	}
	if c.TopK < 1 {
		return fmt.Errorf("top_k must be positive, got %d", c.TopK)
	}
	if c.Limit < 1 {
		return fmt.Errorf("limit must be positive, got %d", c.Limit)
	}
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 100 {
		return fmt.Errorf("fuzzy_threshold must be in [0, 100], got %d", c.FuzzyThreshold)
	}
	if c.ColdStartLimit < 0 {
		return fmt.Errorf("cold_start_limit must not be negative, got %d", c.ColdStartLimit)
	}
	if c.AllGenre == "" {
		return fmt.Errorf("all_genre must not be empty")
	}
	return nil
}
