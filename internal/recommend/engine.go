// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package recommend

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moviematch/internal/artifacts"
	"github.com/tomtom215/moviematch/internal/metrics"
)

// Engine ranks recommendations over one immutable snapshot. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	config   *Config
	snap     *artifacts.Snapshot
	resolver *TitleResolver
	cf       *CFScorer
	logger   zerolog.Logger
}

// NewEngine indexes snap for title resolution.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(snap *artifacts.Snapshot, cfg *Config, logger zerolog.Logger) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Engine{
		config:   cfg,
		snap:     snap,
		resolver: NewTitleResolver(snap.Movies, cfg.FuzzyThreshold),
		cf:       NewCFScorer(snap.Mapping, snap.CF),
		logger:   logger.With().Str("component", "recommend").Logger(),
	}
}

// Snapshot returns the snapshot the engine ranks over.
func (e *Engine) Snapshot() *artifacts.Snapshot {
	return e.snap
}

// Resolve maps a query to a catalog index.
func (e *Engine) Resolve(query string) Resolution {
	res := e.resolver.Resolve(query)
	metrics.RecordTitleResolution(string(res.Method))
	return res
}

// Recommend ranks movies for req without poster URLs. The second return
// value is the metrics outcome label.
func (e *Engine) Recommend(req Request) (*Response, string) {
	if strings.TrimSpace(req.Title) == "" {
		e.logger.Debug().Msg("Empty title, serving cold start")
		return ColdStart(e.snap.Trending, e.config.ColdStartLimit, ReasonEmptyQuery, req.Title), outcomeEmptyQuery
	}

	res := e.Resolve(req.Title)
	if !res.Found {
		e.logger.Debug().Str("query", req.Title).Msg("Title not found, serving cold start")
		return ColdStart(e.snap.Trending, e.config.ColdStartLimit, ReasonNotFound, req.Title), outcomeNotFound
	}

	genre := req.Genre
	if genre == "" {
		genre = e.config.AllGenre
	}
	alpha := EffectiveAlpha(req.Alpha, e.config.DefaultAlpha)
	base := e.snap.Movies[res.Index]

	cands := TopCandidates(e.snap.Content, res.Index, e.config.TopK)
	cands = FilterByGenre(cands, e.snap.Movies, genre, e.config.AllGenre)

	recs := make([]Recommendation, len(cands))
	for i, c := range cands {
		m := e.snap.Movies[c.Index]
		recs[i] = Recommendation{
			Title:  m.Title,
			Score:  Blend(alpha, c.Score, e.cf.Score(base.TMDBID, m.TMDBID)),
			TMDBID: m.TMDBID,
		}
	}

	// Candidates arrive in content-rank order, so a stable sort breaks
	// score ties by content rank.
	sort.SliceStable(recs, func(a, b int) bool { return recs[a].Score > recs[b].Score })
	if len(recs) > e.config.Limit {
		recs = recs[:e.config.Limit]
	}

	e.logger.Debug().
		Str("query", req.Title).
		Str("source", base.Title).
		Str("method", string(res.Method)).
		Int("match_score", res.Score).
		Float64("alpha", alpha).
		Str("genre", genre).
		Int("candidates", len(cands)).
		Msg("Ranked recommendations")

	if len(recs) == 0 {
		return &Response{
			SourceMovie:     base.Title,
			Recommendations: []Recommendation{},
			Message:         emptyFilterMessage(genre, base.Title),
		}, outcomeEmptyFiltered
	}

	return &Response{
		SourceMovie:     base.Title,
		Recommendations: recs,
	}, outcomeContent
}
