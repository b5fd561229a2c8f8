// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package metrics provides Prometheus instrumentation for MovieMatch.

All collectors are registered on the default registry through promauto and
exposed at /metrics by the API router:

	curl http://localhost:8000/metrics

# Available Metrics

API:
  - moviematch_api_requests_total{method, endpoint, status_code}
  - moviematch_api_request_duration_seconds{method, endpoint}
  - moviematch_api_active_requests

Recommendation pipeline:
  - moviematch_recommendations_total{outcome}
    outcome: content, cold_start_empty_query, cold_start_not_found, empty_filter
  - moviematch_recommendation_duration_seconds
  - moviematch_title_resolutions_total{method} (exact, fuzzy, not_found)
  - moviematch_fuzzy_scan_duration_seconds

Artifacts:
  - moviematch_artifacts_ready (0 or 1)
  - moviematch_artifact_entries{artifact} (catalog, cf_index, trending)
  - moviematch_artifact_load_duration_seconds
  - moviematch_artifact_load_errors_total

Posters:
  - moviematch_poster_lookups_total{result}
    result: memory_hit, store_hit, omdb, placeholder, error
  - moviematch_poster_fetch_duration_seconds
  - moviematch_poster_cache_entries

Circuit breaker (OMDb client):
  - circuit_breaker_state{name} (0=closed, 1=half-open, 2=open)
  - circuit_breaker_requests_total{name, result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}

# Usage

	start := time.Now()
	metrics.TrackActiveRequest(true)
	defer metrics.TrackActiveRequest(false)
	// ... handle request ...
	metrics.RecordAPIRequest(r.Method, "/api/v1/recommend", "200", time.Since(start))

Recording helpers are safe for concurrent use.
*/
package metrics
