// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package recommend

import "github.com/tomtom215/moviematch/internal/artifacts"

// FilterByGenre keeps candidates tagged with genre. When genre equals
// allGenre the input is returned as is. Matching is exact and
// case-sensitive; candidates without a genre list are dropped.
func FilterByGenre(cands []Candidate, movies []artifacts.Movie, genre, allGenre string) []Candidate {
	if genre == allGenre {
		return cands
	}
	out := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if c.Index < 0 || c.Index >= len(movies) {
			continue
		}
		if movies[c.Index].Genres.Has(genre) {
			out = append(out, c)
		}
	}
	return out
}
