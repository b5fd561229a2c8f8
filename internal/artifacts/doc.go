// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package artifacts loads the precomputed recommendation model from disk.

A model directory holds six files:

	movies.json              catalog, one entry per content-matrix row
	content_similarity.npy   square float matrix over the catalog
	tmdb_to_cf.json          {"<tmdbId>": <movieLensId>}
	cf_index.json            {"<movieLensId>": <cf row>}
	cf_similarity.npy        square float matrix over CF rows
	trending.json            optional popularity-ordered fallback list

Load reads the files concurrently, validates matrix shapes against the
catalog and the CF index, and returns an immutable Snapshot. Store wraps a
single load behind a ready flag so HTTP handlers can answer 503 until the
data is present. Nothing is ever mutated after the load, so Snapshot reads
take no locks.

Every load failure wraps ErrDataUnavailable:

	if errors.Is(err, artifacts.ErrDataUnavailable) { ... }

Dimension mismatches are additionally reported as *ShapeError.
*/
package artifacts
