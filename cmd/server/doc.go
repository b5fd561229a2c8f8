// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package main is the MovieMatch HTTP server.

MovieMatch answers "movies like X" queries by blending precomputed content
and collaborative-filtering similarities, with a trending fallback for
empty or unknown titles.

# Startup

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Artifacts: loaded once from ARTIFACTS_DIR; failure leaves the server
    running but not ready
 4. Posters: OMDb client behind a circuit breaker, LRU cache, optional
    Badger or Redis store
 5. Supervisor tree: suture v4 with the HTTP server, poster warmup and
    store GC

# Endpoints

	GET /recommend?title=&alpha=&genre=
	GET /api/v1/recommend
	GET /api/v1/genres
	GET /api/v1/health/live
	GET /api/v1/health/ready
	GET /metrics
	GET /swagger/index.html

# Example

	export ARTIFACTS_DIR=/data/artifacts
	export POSTER_ENABLED=true
	export OMDB_API_KEY=...
	./moviematch

	curl 'http://localhost:8000/recommend?title=inception&alpha=0.6&genre=Sci-Fi'

# Signals

SIGINT and SIGTERM cancel the root context. The HTTP server drains for up
to HTTP_SHUTDOWN_TIMEOUT before the process exits.
*/
package main
