// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package recommend

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/tomtom215/moviematch/internal/artifacts"
)

const floatTolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < floatTolerance
}

func ptr(v float64) *float64 {
	return &v
}

// testSnapshot builds a six-movie catalog. Content row 0 (Inception) ranks
// Interstellar, then The Dark Knight and Memento tied at 0.8, then
// Spider-Man and Toy Story. Only the first three movies have CF rows.
func testSnapshot(t *testing.T) *artifacts.Snapshot {
	t.Helper()

	movies := []artifacts.Movie{
		{TMDBID: 27205, Title: "Inception", Genres: artifacts.Genres{"Action", "Sci-Fi"}, VoteAverage: 8.3},
		{TMDBID: 157336, Title: "Interstellar", Genres: artifacts.Genres{"Adventure", "Sci-Fi"}, VoteAverage: 8.1},
		{TMDBID: 155, Title: "The Dark Knight", Genres: artifacts.Genres{"Action", "Drama"}, VoteAverage: 8.2},
		{TMDBID: 862, Title: "Toy Story", Genres: artifacts.Genres{"Animation", "Comedy"}, VoteAverage: 7.7},
		{TMDBID: 315635, Title: "Spider-Man: Homecoming", Genres: artifacts.Genres{"Action"}, VoteAverage: 7.3},
		{TMDBID: 77, Title: "Memento", Genres: nil, VoteAverage: 8.1},
	}
	content := mat.NewDense(6, 6, []float64{
		1.0, 0.9, 0.8, 0.1, 0.5, 0.8,
		0.9, 1.0, 0.6, 0.2, 0.3, 0.4,
		0.8, 0.6, 1.0, 0.1, 0.7, 0.5,
		0.1, 0.2, 0.1, 1.0, 0.3, 0.1,
		0.5, 0.3, 0.7, 0.3, 1.0, 0.2,
		0.8, 0.4, 0.5, 0.1, 0.2, 1.0,
	})
	mapping := artifacts.NewIDMapping(
		map[int64]int64{27205: 79132, 157336: 109487, 155: 58559},
		map[int64]int{79132: 0, 109487: 1, 58559: 2},
	)
	cf := mat.NewDense(3, 3, []float64{
		1.0, 0.2, 0.9,
		0.2, 1.0, 0.3,
		0.9, 0.3, 1.0,
	})
	trending := make([]artifacts.TrendingEntry, 12)
	for i := range trending {
		trending[i] = artifacts.TrendingEntry{
			TMDBID:      int64(1000 + i),
			Title:       "Trending " + string(rune('A'+i)),
			VoteAverage: 9.5 - float64(i)*0.5,
		}
	}

	snap, err := artifacts.NewSnapshot(movies, content, mapping, cf, trending)
	if err != nil {
		t.Fatalf("NewSnapshot() error = %v", err)
	}
	return snap
}
