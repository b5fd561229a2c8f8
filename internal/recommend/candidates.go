// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package recommend

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// TopCandidates returns the k most content-similar catalog entries to
// index, excluding index itself. Order is score descending, then catalog
// index ascending. Scores are clamped to [0,1]; NaN counts as 0.
func TopCandidates(content mat.RawMatrixer, index, k int) []Candidate {
	raw := content.RawMatrix()
	if index < 0 || index >= raw.Rows || k <= 0 {
		return []Candidate{}
	}
	row := raw.Data[index*raw.Stride : index*raw.Stride+raw.Cols]

	all := make([]Candidate, 0, len(row))
	for j, v := range row {
		if j == index {
			continue
		}
		all = append(all, Candidate{Index: j, Score: clampUnit(v)})
	}

	sort.Slice(all, func(a, b int) bool {
		if all[a].Score != all[b].Score {
			return all[a].Score > all[b].Score
		}
		return all[a].Index < all[b].Index
	})

	if len(all) > k {
		all = all[:k]
	}
	for i := range all {
		all[i].Rank = i
	}
	return all
}
