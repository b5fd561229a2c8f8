// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package recommend ranks similar movies for a free-text title.
//
// # Pipeline
//
// A request flows through these stages:
//
//   - TitleResolver: normalized exact match, then token-sort fuzzy match
//     accepted at FuzzyThreshold (default 65)
//   - TopCandidates: the TopK (default 50) most content-similar movies,
//     excluding the source movie
//   - FilterByGenre: exact, case-sensitive genre tag match; AllGenre
//     disables filtering
//   - CFScorer and Blend: alpha*content + (1-alpha)*cf, with unmapped
//     movies scoring 0 for CF
//   - stable sort by blended score, truncated to Limit (default 10)
//
// A blank title or an unresolved title falls back to ColdStart, which
// serves the precomputed trending list tagged with EMPTY_QUERY or
// NOT_FOUND.
//
// # Concurrency
//
// Engine is built once per artifacts.Snapshot and reads it without locks.
// Service wraps an Engine behind the artifact ready flag and attaches
// poster URLs concurrently after ranking.
//
// # Usage
//
//	svc, err := recommend.NewService(cfg, store, posters, logger)
//	resp, err := svc.Recommend(ctx, recommend.Request{
//	    Title: "Inception",
//	    Genre: "All",
//	})
//
// Recommend returns artifacts.ErrDataUnavailable until the store is
// loaded. Not-found titles and empty genre results are responses, not
// errors.
package recommend
