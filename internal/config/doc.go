// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package config loads MovieMatch configuration with Koanf v2.

Sources are layered, highest priority last:

 1. Built-in defaults (defaultConfig)
 2. YAML file: $CONFIG_PATH, else config.yaml, config.yml, /etc/moviematch/config.yaml
 3. Environment variables, through the explicit envMappings table

Example config.yaml:

	server:
	  port: 8000
	artifacts:
	  dir: /data/artifacts
	recommend:
	  default_alpha: 0.45
	  fuzzy_threshold: 65
	poster:
	  enabled: true
	  omdb_api_key: "..."
	  store: badger
	  badger_path: /data/posters

Common environment variables:

	HTTP_PORT                 listener port (default 8000)
	LOG_LEVEL, LOG_FORMAT     logging
	ARTIFACTS_DIR             artifact directory (default ./artifacts)
	RECOMMEND_DEFAULT_ALPHA   content weight when a request omits alpha (default 0.45)
	RECOMMEND_FUZZY_THRESHOLD minimum fuzzy title score (default 65)
	POSTER_ENABLED            enable OMDb poster lookups
	OMDB_API_KEY              OMDb API key
	POSTER_STORE              none, badger or redis
	CORS_ORIGINS              comma-separated origins

Validate runs after loading; any failure is returned from LoadWithKoanf
wrapped with "configuration validation failed".
*/
package config
