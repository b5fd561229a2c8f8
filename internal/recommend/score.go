// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package recommend

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/tomtom215/moviematch/internal/artifacts"
)

// CFScorer looks up collaborative-filtering similarity between two catalog
// movies by TMDB id. Unmapped ids score 0.
type CFScorer struct {
	mapping *artifacts.IDMapping
	cf      mat.Matrix
}

// NewCFScorer creates a scorer over a CF matrix addressed through mapping.
func NewCFScorer(mapping *artifacts.IDMapping, cf mat.Matrix) *CFScorer {
	return &CFScorer{mapping: mapping, cf: cf}
}

// Score returns the CF similarity in [0,1].
func (s *CFScorer) Score(baseTMDB, candidateTMDB int64) float64 {
	if s == nil || s.mapping == nil || s.cf == nil {
		return 0
	}
	a, ok := s.mapping.RowForExternal(baseTMDB)
	if !ok {
		return 0
	}
	b, ok := s.mapping.RowForExternal(candidateTMDB)
	if !ok {
		return 0
	}
	if r, c := s.cf.Dims(); a >= r || b >= c {
		return 0
	}
	return clampUnit(s.cf.At(a, b))
}

// Blend mixes content and CF scores: alpha*content + (1-alpha)*cf, with
// alpha clamped to [0,1]. Callers resolve NaN alpha with EffectiveAlpha.
func Blend(alpha, content, cf float64) float64 {
	a := clampUnit(alpha)
	return a*content + (1-a)*cf
}

// EffectiveAlpha picks the request alpha, or fallback when it is absent or
// NaN, clamped to [0,1].
func EffectiveAlpha(alpha *float64, fallback float64) float64 {
	if alpha == nil || math.IsNaN(*alpha) {
		return clampUnit(fallback)
	}
	return clampUnit(*alpha)
}

func clampUnit(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
