// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths are searched in order; the first existing file wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/moviematch/config.yaml",
	"/etc/moviematch/config.yml",
}

// ConfigPathEnvVar overrides DefaultConfigPaths.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultGenres are the genre options offered to clients.
var DefaultGenres = []string{
	"All", "Action", "Comedy", "Drama", "Thriller",
	"Sci-Fi", "Romance", "Adventure", "Horror", "Animation",
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8000,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			RequestTimeout:  10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Artifacts: ArtifactsConfig{
			Dir:             "artifacts",
			RequireTrending: false,
		},
		Recommend: RecommendConfig{
			DefaultAlpha:   0.45,
			TopK:           50,
			Limit:          10,
			FuzzyThreshold: 65,
			ColdStartLimit: 10,
			AllGenre:       "All",
			Genres:         append([]string(nil), DefaultGenres...),
		},
		Poster: PosterConfig{
			Enabled:           false,
			OMDbURL:           "https://www.omdbapi.com/",
			Timeout:           5 * time.Second,
			RequestsPerSecond: 5,
			Burst:             5,
			CacheSize:         4096,
			CacheTTL:          time.Hour,
			PlaceholderTTL:    5 * time.Minute,
			Store:             "none",
			BadgerPath:        "/data/posters",
			RedisAddr:         "127.0.0.1:6379",
			RedisDB:           0,
			Warmup:            true,
			Placeholder:       true,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
	}
}

// LoadWithKoanf layers defaults, an optional YAML file and environment
// variables (highest priority), then validates the result.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths accept comma-separated strings from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
	"recommend.genres",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	// Server
	"http_port":             "server.port",
	"port":                  "server.port",
	"http_host":             "server.host",
	"http_timeout":          "server.timeout",
	"http_request_timeout":  "server.request_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",
	"environment":           "server.environment",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Artifacts
	"artifacts_dir":              "artifacts.dir",
	"artifacts_require_trending": "artifacts.require_trending",

	// Recommendation pipeline
	"recommend_default_alpha":    "recommend.default_alpha",
	"recommend_top_k":            "recommend.top_k",
	"recommend_limit":            "recommend.limit",
	"recommend_fuzzy_threshold":  "recommend.fuzzy_threshold",
	"recommend_cold_start_limit": "recommend.cold_start_limit",
	"recommend_all_genre":        "recommend.all_genre",
	"recommend_genres":           "recommend.genres",

	// Posters
	"poster_enabled":             "poster.enabled",
	"omdb_url":                   "poster.omdb_url",
	"omdb_api_key":               "poster.omdb_api_key",
	"poster_timeout":             "poster.timeout",
	"poster_requests_per_second": "poster.requests_per_second",
	"poster_burst":               "poster.burst",
	"poster_cache_size":          "poster.cache_size",
	"poster_cache_ttl":           "poster.cache_ttl",
	"poster_placeholder_ttl":     "poster.placeholder_ttl",
	"poster_store":               "poster.store",
	"poster_badger_path":         "poster.badger_path",
	"poster_redis_addr":          "poster.redis_addr",
	"poster_redis_db":            "poster.redis_db",
	"poster_warmup":              "poster.warmup",
	"poster_placeholder":         "poster.placeholder",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",
}

// envTransformFunc maps an environment variable name to its koanf path.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - ARTIFACTS_DIR -> artifacts.dir
//   - OMDB_API_KEY -> poster.omdb_api_key
//   - RECOMMEND_FUZZY_THRESHOLD -> recommend.fuzzy_threshold
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
