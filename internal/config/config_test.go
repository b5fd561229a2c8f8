// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "empty artifacts dir",
			mutate:  func(c *Config) { c.Artifacts.Dir = " " },
			wantErr: "ARTIFACTS_DIR",
		},
		{
			name:    "zero top k",
			mutate:  func(c *Config) { c.Recommend.TopK = 0 },
			wantErr: "RECOMMEND_TOP_K",
		},
		{
			name:    "limit too large",
			mutate:  func(c *Config) { c.Recommend.Limit = 500 },
			wantErr: "RECOMMEND_LIMIT",
		},
		{
			name:    "threshold above 100",
			mutate:  func(c *Config) { c.Recommend.FuzzyThreshold = 101 },
			wantErr: "RECOMMEND_FUZZY_THRESHOLD",
		},
		{
			name:    "empty all genre",
			mutate:  func(c *Config) { c.Recommend.AllGenre = "" },
			wantErr: "RECOMMEND_ALL_GENRE",
		},
		{
			name: "omdb url not absolute",
			mutate: func(c *Config) {
				c.Poster.Enabled = true
				c.Poster.OMDbAPIKey = "k"
				c.Poster.OMDbURL = "omdbapi.com"
			},
			wantErr: "OMDB_URL",
		},
		{
			name: "redis store without addr",
			mutate: func(c *Config) {
				c.Poster.Store = "redis"
				c.Poster.RedisAddr = ""
			},
			wantErr: "POSTER_REDIS_ADDR",
		},
		{
			name:    "rate limit window too short",
			mutate:  func(c *Config) { c.Security.RateLimitWindow = time.Millisecond },
			wantErr: "RATE_LIMIT_WINDOW",
		},
		{
			name: "rate limit ignored when disabled",
			mutate: func(c *Config) {
				c.Security.RateLimitDisabled = true
				c.Security.RateLimitReqs = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestShouldWarnAboutCORS(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if cfg.ShouldWarnAboutCORS() {
		t.Error("development mode should not warn")
	}

	cfg.Server.Environment = "production"
	if !cfg.ShouldWarnAboutCORS() {
		t.Error("wildcard origin in production should warn")
	}

	cfg.Security.CORSOrigins = []string{"https://movies.example"}
	if cfg.ShouldWarnAboutCORS() {
		t.Error("explicit origins should not warn")
	}
}

func TestServerAddr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 8000}
	if got := s.Addr(); got != "127.0.0.1:8000" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8000", got)
	}
}
