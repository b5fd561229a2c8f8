// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package recommend

import (
	"fmt"

	"github.com/tomtom215/moviematch/internal/artifacts"
)

const (
	coldStartSource = "Trending Movies (Cold Start)"
	unknownSource   = "Unknown"
)

// ColdStart builds the trending fallback response. Scores are vote
// averages rescaled from 0-10 to [0,1]; order follows the trending list,
// which the artifact pipeline writes in descending popularity.
func ColdStart(trending []artifacts.TrendingEntry, limit int, reason ColdStartReason, query string) *Response {
	if len(trending) == 0 || limit <= 0 {
		return &Response{
			SourceMovie:     unknownSource,
			Recommendations: []Recommendation{},
			Message:         noTrendingMessage(reason, query),
			ColdStartReason: reason,
		}
	}

	n := min(limit, len(trending))
	recs := make([]Recommendation, n)
	for i, t := range trending[:n] {
		recs[i] = Recommendation{
			Title:  t.Title,
			Score:  clampUnit(t.VoteAverage / 10),
			TMDBID: t.TMDBID,
		}
	}

	return &Response{
		SourceMovie:     coldStartSource,
		Recommendations: recs,
		Message:         coldStartMessage(reason, query),
		ColdStartReason: reason,
	}
}

func coldStartMessage(reason ColdStartReason, query string) string {
	if reason == ReasonNotFound {
		return fmt.Sprintf("Movie '%s' not found. Showing trending movies instead.", query)
	}
	return "No title provided. Showing trending movies instead."
}

func noTrendingMessage(reason ColdStartReason, query string) string {
	if reason == ReasonNotFound {
		return fmt.Sprintf("Movie '%s' not found and no trending data available.", query)
	}
	return "No title provided and no trending data available."
}

func emptyFilterMessage(genre, source string) string {
	return fmt.Sprintf("No '%s' movies found similar to '%s'.", genre, source)
}
