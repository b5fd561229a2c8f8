// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package recommend

import (
	"math"
	"sort"
	"strings"
)

// NormalizeTitle strips everything outside [A-Za-z0-9] and lowercases.
// "Spider-Man: Homecoming" and "spiderman homecoming" both become
// "spidermanhomecoming".
func NormalizeTitle(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c >= 'A' && c <= 'Z':
			b.WriteByte(c + ('a' - 'A'))
		}
	}
	return b.String()
}

// tokenSortKey prepares a string for token-sort comparison: non-ASCII bytes
// are dropped, other non-alphanumerics become spaces, letters are lowercased,
// and the resulting words are sorted and joined by single spaces.
func tokenSortKey(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 0x80:
			continue
		case c >= 'A' && c <= 'Z':
			c += 'a' - 'A'
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		default:
			c = ' '
		}
		b = append(b, c)
	}
	words := strings.Fields(string(b))
	sort.Strings(words)
	return strings.Join(words, " ")
}

// TokenSortRatio scores two strings 0-100 independent of word order.
func TokenSortRatio(a, b string) int {
	return keyRatio(tokenSortKey(a), tokenSortKey(b)).score()
}

// ratio is the unrounded InDel similarity 2*lcs/lensum as an exact
// fraction. Candidates are ranked on it; rounding only happens for the
// reported score.
type ratio struct {
	lcs, lensum int
}

var zeroRatio = ratio{lcs: 0, lensum: 1}

// less reports r < o without floating point.
func (r ratio) less(o ratio) bool {
	return r.lcs*o.lensum < o.lcs*r.lensum
}

func (r ratio) score() int {
	return indelScore(r.lensum, r.lcs)
}

func keyRatio(a, b string) ratio {
	if a == "" || b == "" {
		return zeroRatio
	}
	return ratio{lcs: lcsLength(a, b), lensum: len(a) + len(b)}
}

// indelScore converts an LCS length into the normalized InDel similarity
// on a 0-100 scale. Halves round to even.
func indelScore(lensum, lcs int) int {
	dist := lensum - 2*lcs
	return int(math.RoundToEven(100 * (1 - float64(dist)/float64(lensum))))
}

// ratioUpperBound is the best ratio two keys of these lengths could reach.
func ratioUpperBound(la, lb int) ratio {
	if la == 0 || lb == 0 {
		return zeroRatio
	}
	return ratio{lcs: min(la, lb), lensum: la + lb}
}

func lcsLength(a, b string) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	row := make([]int, len(b)+1)
	for i := 0; i < len(a); i++ {
		prevDiag := 0
		for j := 0; j < len(b); j++ {
			up := row[j+1]
			if a[i] == b[j] {
				row[j+1] = prevDiag + 1
			} else if row[j] > up {
				row[j+1] = row[j]
			}
			prevDiag = up
		}
	}
	return row[len(b)]
}
