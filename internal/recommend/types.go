// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package recommend

// Request is a single recommendation query.
type Request struct {
	// Title is the free-text movie title. Blank means cold start.
	Title string

	// Alpha is the content weight in [0,1]. nil or NaN selects the default;
	// out-of-range values are clamped.
	Alpha *float64

	// Genre restricts results to an exact genre tag. Empty or the
	// configured AllGenre disables filtering.
	Genre string
}

// ColdStartReason explains why trending movies were returned.
type ColdStartReason string

const (
	ReasonEmptyQuery ColdStartReason = "EMPTY_QUERY"
	ReasonNotFound   ColdStartReason = "NOT_FOUND"
)

// Recommendation is one ranked movie.
type Recommendation struct {
	Title     string  `json:"title"`
	Score     float64 `json:"score"`
	TMDBID    int64   `json:"tmdb_id"`
	PosterURL string  `json:"poster_url,omitempty"`
}

// Response is the result of a recommendation query. Recommendations is
// never nil.
type Response struct {
	SourceMovie     string           `json:"source_movie"`
	Recommendations []Recommendation `json:"recommendations"`
	Message         string           `json:"message,omitempty"`
	ColdStartReason ColdStartReason  `json:"cold_start_reason,omitempty"`
}

// MatchMethod records how a title was resolved.
type MatchMethod string

const (
	MatchExact    MatchMethod = "exact"
	MatchFuzzy    MatchMethod = "fuzzy"
	MatchNotFound MatchMethod = "not_found"
)

// Resolution is the outcome of title resolution: Found with a catalog
// index, or not found.
type Resolution struct {
	Index  int
	Found  bool
	Method MatchMethod

	// Score is the fuzzy score of the accepted match, or 100 for exact matches.
	Score int
}

// NotFound is the zero-match resolution.
func NotFound() Resolution {
	return Resolution{Index: -1, Method: MatchNotFound}
}

// Candidate is a content-similar movie.
type Candidate struct {
	Index int     // catalog index
	Score float64 // content similarity in [0,1]
	Rank  int     // position in the content ranking
}

// outcome labels for metrics.
const (
	outcomeContent       = "content"
	outcomeEmptyQuery    = "cold_start_empty_query"
	outcomeNotFound      = "cold_start_not_found"
	outcomeEmptyFiltered = "empty_filter"
)
