// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package services adapts MovieMatch components to suture.Service.

Each wrapper implements Serve(ctx) error and fmt.Stringer:

  - HTTPServerService runs an *http.Server and drains it on cancel.
  - PosterWarmupService resolves trending posters once, rate limited with
    golang.org/x/time/rate, then idles.
  - StoreGCService runs Badger value log GC on a ticker.

Wrappers depend on small interfaces (HTTPServer, PosterResolver,
SnapshotSource, GarbageCollector) rather than concrete types so they can
be tested with fakes.

Return values follow suture's conventions: ctx.Err() on shutdown, a
wrapped error when the component fails and should be restarted.
*/
package services
