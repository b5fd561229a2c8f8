// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviematch_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moviematch_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviematch_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviematch_recommendations_total",
			Help: "Total recommendation responses by outcome",
		},
		[]string{"outcome"}, // content, cold_start_empty_query, cold_start_not_found, empty_filter
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moviematch_recommendation_duration_seconds",
			Help:    "Time spent ranking a recommendation request, excluding poster lookups",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5},
		},
	)

	TitleResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviematch_title_resolutions_total",
			Help: "Title resolutions by method",
		},
		[]string{"method"}, // exact, fuzzy, not_found
	)

	FuzzyScanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moviematch_fuzzy_scan_duration_seconds",
			Help:    "Duration of full-catalog fuzzy title scans",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	// Artifact Metrics
	ArtifactsReady = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviematch_artifacts_ready",
			Help: "1 when model artifacts are loaded and validated, 0 otherwise",
		},
	)

	ArtifactSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "moviematch_artifact_entries",
			Help: "Number of entries per loaded artifact",
		},
		[]string{"artifact"}, // catalog, cf_index, trending
	)

	ArtifactLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moviematch_artifact_load_duration_seconds",
			Help:    "Duration of the startup artifact load",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
	)

	ArtifactLoadErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moviematch_artifact_load_errors_total",
			Help: "Total number of failed artifact loads",
		},
	)

	// Poster Metrics
	PosterLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviematch_poster_lookups_total",
			Help: "Poster resolutions by result",
		},
		[]string{"result"}, // memory_hit, store_hit, omdb, placeholder, error
	)

	PosterFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moviematch_poster_fetch_duration_seconds",
			Help:    "Duration of OMDb poster requests",
			Buckets: prometheus.DefBuckets,
		},
	)

	PosterCacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moviematch_poster_cache_entries",
			Help: "Current number of in-memory poster cache entries",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // success, failure, rejected
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records the outcome and ranking latency of one request.
func RecordRecommendation(outcome string, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	RecommendationDuration.Observe(duration.Seconds())
}

// RecordTitleResolution counts a resolution by method.
func RecordTitleResolution(method string) {
	TitleResolutions.WithLabelValues(method).Inc()
}

// RecordArtifactLoad updates the readiness gauge and the per-artifact sizes.
// A non-nil err marks the artifacts unavailable.
func RecordArtifactLoad(duration time.Duration, sizes map[string]int, err error) {
	ArtifactLoadDuration.Observe(duration.Seconds())
	if err != nil {
		ArtifactLoadErrors.Inc()
		ArtifactsReady.Set(0)
		return
	}
	for name, n := range sizes {
		ArtifactSize.WithLabelValues(name).Set(float64(n))
	}
	ArtifactsReady.Set(1)
}

// RecordPosterLookup counts a poster resolution by result.
func RecordPosterLookup(result string) {
	PosterLookups.WithLabelValues(result).Inc()
}
