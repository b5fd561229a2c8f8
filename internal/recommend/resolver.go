// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package recommend

import (
	"time"

	"github.com/tomtom215/moviematch/internal/artifacts"
	"github.com/tomtom215/moviematch/internal/metrics"
)

// TitleResolver maps free text to a catalog index. It precomputes the
// normalized and token-sorted form of every title, so a resolver is built
// once per snapshot and shared by all requests.
type TitleResolver struct {
	threshold int

	titles       []string
	keys         []string       // token-sort keys, catalog order
	exact        map[string]int // normalized title -> first index
	firstByTitle map[string]int // verbatim title -> first index
}

// NewTitleResolver indexes the catalog.
func NewTitleResolver(movies []artifacts.Movie, threshold int) *TitleResolver {
	r := &TitleResolver{
		threshold:    threshold,
		titles:       make([]string, len(movies)),
		keys:         make([]string, len(movies)),
		exact:        make(map[string]int, len(movies)),
		firstByTitle: make(map[string]int, len(movies)),
	}
	for i, m := range movies {
		r.titles[i] = m.Title
		r.keys[i] = tokenSortKey(m.Title)
		norm := NormalizeTitle(m.Title)
		if _, ok := r.exact[norm]; !ok {
			r.exact[norm] = i
		}
		if _, ok := r.firstByTitle[m.Title]; !ok {
			r.firstByTitle[m.Title] = i
		}
	}
	return r
}

// Resolve tries a normalized exact match first, then the best fuzzy match.
// Ties go to the earliest catalog entry in both steps.
func (r *TitleResolver) Resolve(query string) Resolution {
	if idx, ok := r.exact[NormalizeTitle(query)]; ok {
		return Resolution{Index: idx, Found: true, Method: MatchExact, Score: 100}
	}
	return r.fuzzy(query)
}

func (r *TitleResolver) fuzzy(query string) Resolution {
	start := time.Now()
	defer func() { metrics.FuzzyScanDuration.Observe(time.Since(start).Seconds()) }()

	q := tokenSortKey(query)
	if q == "" {
		return NotFound()
	}

	var best ratio
	bestIdx := -1
	for i, key := range r.keys {
		ub := ratioUpperBound(len(q), len(key))
		if ub.score() < r.threshold || (bestIdx >= 0 && !best.less(ub)) {
			continue
		}
		if score := keyRatio(q, key); bestIdx < 0 || best.less(score) {
			best, bestIdx = score, i
		}
	}

	if bestIdx < 0 || best.score() < r.threshold {
		return NotFound()
	}
	return Resolution{
		Index:  r.firstByTitle[r.titles[bestIdx]],
		Found:  true,
		Method: MatchFuzzy,
		Score:  best.score(),
	}
}

// Title returns the catalog title at idx.
func (r *TitleResolver) Title(idx int) string {
	return r.titles[idx]
}
