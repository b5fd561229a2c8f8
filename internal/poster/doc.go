// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package poster resolves display URLs for movie posters.

Resolver.Resolve never fails. It consults, in order:

 1. an in-memory expirable LRU (hashicorp/golang-lru/v2)
 2. an optional persistent Store (BadgerDB or Redis)
 3. the OMDb API, through a rate limiter and a circuit breaker
 4. a placehold.co image with the title as text

Concurrent lookups for the same movie share one OMDb request
(singleflight). OMDb results are written to both cache levels;
placeholders are kept in memory only and expire quickly, so posters
appear once OMDb recovers.

With no API key configured, Resolve returns placeholders only. With
placeholders disabled as well, it returns "" and callers omit the URL.
*/
package poster
