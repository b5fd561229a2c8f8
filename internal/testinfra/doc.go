// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package testinfra starts real backing services in Docker for integration
// tests, using testcontainers-go.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./internal/poster/...
//
// # Redis
//
//	func TestRedisStore(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    redis, err := testinfra.NewRedisContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    testinfra.CleanupContainer(t, redis)
//
//	    store, err := poster.NewRedisStore(ctx, redis.Addr, 0)
//	    // ...
//	}
//
// Tests call SkipIfNoDocker first so they pass on machines without Docker.
package testinfra
