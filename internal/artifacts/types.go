// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package artifacts

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/goccy/go-json"
	"gonum.org/v1/gonum/mat"
)

// Genres is a movie's genre list. Anything other than a JSON array of
// strings decodes to nil so that a bad row drops out of genre filters
// instead of failing the whole catalog.
type Genres []string

// UnmarshalJSON implements json.Unmarshaler.
func (g *Genres) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*g = nil
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		*g = nil
		return nil //nolint:nilerr // malformed genres are tolerated
	}
	*g = list
	return nil
}

// Has reports an exact, case-sensitive match.
func (g Genres) Has(genre string) bool {
	for _, v := range g {
		if v == genre {
			return true
		}
	}
	return false
}

// Movie is one catalog entry. Its position in Snapshot.Movies is its
// content-matrix index.
type Movie struct {
	TMDBID      int64   `json:"tmdbId"`
	Title       string  `json:"title"`
	Genres      Genres  `json:"genres"`
	VoteAverage float64 `json:"vote_average"`
}

// TrendingEntry is one row of the cold-start list. trending.json must
// list entries in descending popularity; the order is served as stored.
type TrendingEntry struct {
	TMDBID      int64   `json:"tmdbId"`
	Title       string  `json:"title"`
	VoteAverage float64 `json:"vote_average"`
}

// IDMapping translates catalog TMDB ids into CF matrix rows.
type IDMapping struct {
	externalToCF map[int64]int64
	cfToExternal map[int64]int64
	cfToRow      map[int64]int
}

// NewIDMapping builds the mapping and its reverse index. When several TMDB
// ids share a CF id, the smallest TMDB id is kept in the reverse index.
func NewIDMapping(externalToCF map[int64]int64, cfToRow map[int64]int) *IDMapping {
	m := &IDMapping{
		externalToCF: make(map[int64]int64, len(externalToCF)),
		cfToExternal: make(map[int64]int64, len(externalToCF)),
		cfToRow:      make(map[int64]int, len(cfToRow)),
	}
	for ext, cf := range externalToCF {
		m.externalToCF[ext] = cf
		if prev, ok := m.cfToExternal[cf]; !ok || ext < prev {
			m.cfToExternal[cf] = ext
		}
	}
	for cf, row := range cfToRow {
		m.cfToRow[cf] = row
	}
	return m
}

// CFID returns the CF id for a TMDB id.
func (m *IDMapping) CFID(tmdbID int64) (int64, bool) {
	cf, ok := m.externalToCF[tmdbID]
	return cf, ok
}

// ExternalID returns the TMDB id for a CF id.
func (m *IDMapping) ExternalID(cfID int64) (int64, bool) {
	ext, ok := m.cfToExternal[cfID]
	return ext, ok
}

// Row returns the CF matrix row for a CF id.
func (m *IDMapping) Row(cfID int64) (int, bool) {
	row, ok := m.cfToRow[cfID]
	return row, ok
}

// RowForExternal chains CFID and Row.
func (m *IDMapping) RowForExternal(tmdbID int64) (int, bool) {
	cf, ok := m.CFID(tmdbID)
	if !ok {
		return 0, false
	}
	return m.Row(cf)
}

// Len returns the number of indexed CF ids.
func (m *IDMapping) Len() int {
	return len(m.cfToRow)
}

// ExternalLen returns the number of mapped TMDB ids.
func (m *IDMapping) ExternalLen() int {
	return len(m.externalToCF)
}

// CFIDs returns the indexed CF ids in ascending order.
func (m *IDMapping) CFIDs() []int64 {
	ids := make([]int64, 0, len(m.cfToRow))
	for id := range m.cfToRow {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Snapshot is an immutable, fully validated model.
type Snapshot struct {
	Movies   []Movie
	Content  *mat.Dense
	Mapping  *IDMapping
	CF       *mat.Dense
	Trending []TrendingEntry
	LoadedAt time.Time
}

// NewSnapshot validates the pieces against each other and assembles a
// Snapshot. Errors wrap ErrDataUnavailable.
func NewSnapshot(movies []Movie, content *mat.Dense, mapping *IDMapping, cf *mat.Dense, trending []TrendingEntry) (*Snapshot, error) {
	if len(movies) == 0 {
		return nil, unavailable(&ShapeError{Artifact: FileMovies, Want: "at least 1 movie", Got: "0"})
	}
	if content == nil {
		return nil, unavailable(fmt.Errorf("%s: matrix is nil", FileContentSimilarity))
	}
	if r, c := content.Dims(); r != len(movies) || c != len(movies) {
		return nil, unavailable(&ShapeError{
			Artifact: FileContentSimilarity,
			Want:     dims(len(movies), len(movies)),
			Got:      dims(r, c),
		})
	}
	if cf == nil {
		return nil, unavailable(fmt.Errorf("%s: matrix is nil", FileCFSimilarity))
	}
	n, c := cf.Dims()
	if n != c {
		return nil, unavailable(&ShapeError{Artifact: FileCFSimilarity, Want: "square matrix", Got: dims(n, c)})
	}
	if mapping == nil {
		mapping = NewIDMapping(nil, nil)
	}
	for cfID, row := range mapping.cfToRow {
		if row < 0 || row >= n {
			return nil, unavailable(&ShapeError{
				Artifact: FileCFIndex,
				Want:     fmt.Sprintf("rows in [0,%d)", n),
				Got:      fmt.Sprintf("row %d for id %d", row, cfID),
			})
		}
	}
	if trending == nil {
		trending = []TrendingEntry{}
	}
	return &Snapshot{
		Movies:   movies,
		Content:  content,
		Mapping:  mapping,
		CF:       cf,
		Trending: trending,
		LoadedAt: time.Now().UTC(),
	}, nil
}

// Sizes reports entry counts for metrics and health probes.
func (s *Snapshot) Sizes() map[string]int {
	return map[string]int{
		"catalog":  len(s.Movies),
		"cf_index": s.Mapping.Len(),
		"trending": len(s.Trending),
	}
}

func dims(r, c int) string {
	return fmt.Sprintf("%dx%d", r, c)
}
