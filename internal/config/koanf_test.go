// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies the built-in defaults match the documented values
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout != 10*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want 10s", cfg.Server.RequestTimeout)
	}
	if cfg.Recommend.DefaultAlpha != 0.45 {
		t.Errorf("Recommend.DefaultAlpha = %v, want 0.45", cfg.Recommend.DefaultAlpha)
	}
	if cfg.Recommend.TopK != 50 {
		t.Errorf("Recommend.TopK = %d, want 50", cfg.Recommend.TopK)
	}
	if cfg.Recommend.Limit != 10 {
		t.Errorf("Recommend.Limit = %d, want 10", cfg.Recommend.Limit)
	}
	if cfg.Recommend.FuzzyThreshold != 65 {
		t.Errorf("Recommend.FuzzyThreshold = %d, want 65", cfg.Recommend.FuzzyThreshold)
	}
	if cfg.Recommend.AllGenre != "All" {
		t.Errorf("Recommend.AllGenre = %q, want All", cfg.Recommend.AllGenre)
	}
	if len(cfg.Recommend.Genres) != len(DefaultGenres) || cfg.Recommend.Genres[0] != "All" {
		t.Errorf("Recommend.Genres = %v, want %v", cfg.Recommend.Genres, DefaultGenres)
	}
	if cfg.Poster.Enabled {
		t.Error("Poster.Enabled should be false by default")
	}
	if cfg.Poster.CacheTTL != time.Hour {
		t.Errorf("Poster.CacheTTL = %v, want 1h", cfg.Poster.CacheTTL)
	}
	if cfg.Poster.Store != "none" {
		t.Errorf("Poster.Store = %q, want none", cfg.Poster.Store)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"PORT", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"ARTIFACTS_DIR", "artifacts.dir"},
		{"RECOMMEND_DEFAULT_ALPHA", "recommend.default_alpha"},
		{"RECOMMEND_FUZZY_THRESHOLD", "recommend.fuzzy_threshold"},
		{"OMDB_API_KEY", "poster.omdb_api_key"},
		{"POSTER_STORE", "poster.store"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"HOME", ""},
		{"PATH", ""},
		{"RANDOM_UNMAPPED_VAR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Run("env var points at existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		t.Setenv(ConfigPathEnvVar, path)

		if got := findConfigFile(); got != path {
			t.Errorf("findConfigFile() = %q, want %q", got, path)
		}
	})

	t.Run("env var points at missing file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")

		if got := findConfigFile(); got == "/non/existent/config.yaml" {
			t.Errorf("findConfigFile() returned a missing file")
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
	t.Setenv("HTTP_PORT", "9100")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ARTIFACTS_DIR", "/srv/artifacts")
	t.Setenv("RECOMMEND_DEFAULT_ALPHA", "0.7")
	t.Setenv("POSTER_CACHE_TTL", "30m")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("Server.Port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Artifacts.Dir != "/srv/artifacts" {
		t.Errorf("Artifacts.Dir = %q, want /srv/artifacts", cfg.Artifacts.Dir)
	}
	if cfg.Recommend.DefaultAlpha != 0.7 {
		t.Errorf("Recommend.DefaultAlpha = %v, want 0.7", cfg.Recommend.DefaultAlpha)
	}
	if cfg.Poster.CacheTTL != 30*time.Minute {
		t.Errorf("Poster.CacheTTL = %v, want 30m", cfg.Poster.CacheTTL)
	}
	want := []string{"https://a.example", "https://b.example"}
	if strings.Join(cfg.Security.CORSOrigins, "|") != strings.Join(want, "|") {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}

	// Unset values keep their defaults.
	if cfg.Recommend.TopK != 50 {
		t.Errorf("Recommend.TopK = %d, want 50 (default)", cfg.Recommend.TopK)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	content := `
server:
  port: 9200
artifacts:
  dir: /from/file
recommend:
  fuzzy_threshold: 80
  genres: [All, Drama]
poster:
  enabled: true
  omdb_api_key: file-key
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9200 {
		t.Errorf("Server.Port = %d, want 9200", cfg.Server.Port)
	}
	if cfg.Artifacts.Dir != "/from/file" {
		t.Errorf("Artifacts.Dir = %q, want /from/file", cfg.Artifacts.Dir)
	}
	if cfg.Recommend.FuzzyThreshold != 80 {
		t.Errorf("Recommend.FuzzyThreshold = %d, want 80", cfg.Recommend.FuzzyThreshold)
	}
	if len(cfg.Recommend.Genres) != 2 || cfg.Recommend.Genres[1] != "Drama" {
		t.Errorf("Recommend.Genres = %v, want [All Drama]", cfg.Recommend.Genres)
	}
	if !cfg.Poster.Enabled || cfg.Poster.OMDbAPIKey != "file-key" {
		t.Errorf("Poster = %+v, want enabled with file-key", cfg.Poster)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9300\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "9301")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 9301 {
		t.Errorf("Server.Port = %d, want 9301 (env wins)", cfg.Server.Port)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "port out of range",
			env:     map[string]string{"HTTP_PORT": "70000"},
			wantErr: "HTTP_PORT",
		},
		{
			name:    "alpha out of range",
			env:     map[string]string{"RECOMMEND_DEFAULT_ALPHA": "1.5"},
			wantErr: "RECOMMEND_DEFAULT_ALPHA",
		},
		{
			name:    "posters enabled without key",
			env:     map[string]string{"POSTER_ENABLED": "true"},
			wantErr: "OMDB_API_KEY",
		},
		{
			name:    "unknown poster store",
			env:     map[string]string{"POSTER_STORE": "memcached"},
			wantErr: "POSTER_STORE",
		},
		{
			name:    "bad log format",
			env:     map[string]string{"LOG_FORMAT": "xml"},
			wantErr: "LOG_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %s", err, tt.wantErr)
			}
		})
	}
}
