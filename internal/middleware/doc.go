// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package middleware provides the HTTP middleware shared by the API router.

  - RequestID: X-Request-ID propagation (uuid v4) into the request and
    logging contexts
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by chi route pattern
  - Compression: pooled gzip writers for clients sending Accept-Encoding: gzip

All three use the http.HandlerFunc form; the api package adapts them to
chi's func(http.Handler) http.Handler.
*/
package middleware
