// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package api is the HTTP surface of MovieMatch, built on the chi router.

Routes:

	GET /recommend              recommendation response (unversioned)
	GET /api/v1/recommend       same handler, versioned group
	GET /api/v1/genres          genre options, in the APIResponse envelope
	GET /api/v1/health/live     liveness, always 200
	GET /api/v1/health/ready    200 once artifacts are loaded, 503 otherwise
	GET /metrics                Prometheus exposition

Global middleware runs in this order: request ID (with logging context),
RealIP, Recoverer, CORS. API routes add per-IP rate limiting (go-chi/httprate),
security headers, Prometheus request metrics and gzip compression. Health
routes use a separate 1000/min limit.

Errors always use the models.APIResponse envelope:

	400 VALIDATION_ERROR     unparsable or non-finite alpha, oversized title or genre
	429 RATE_LIMIT_EXCEEDED  per-IP limit reached
	503 DATA_UNAVAILABLE     artifacts not loaded
	500 INTERNAL_ERROR       anything else
*/
package api
