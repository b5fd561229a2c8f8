// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package artifacts

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type npyOpts struct {
	version byte
	dtype   string
	fortran bool
}

// encodeNPY writes a 2-D row-major slice in .npy format.
func encodeNPY(t *testing.T, rows, cols int, data []float64, o npyOpts) []byte {
	t.Helper()
	if o.version == 0 {
		o.version = 1
	}
	if o.dtype == "" {
		o.dtype = "<f8"
	}
	fortran := "False"
	if o.fortran {
		fortran = "True"
	}
	header := fmt.Sprintf("{'descr': '%s', 'fortran_order': %s, 'shape': (%d, %d), }", o.dtype, fortran, rows, cols)

	prefixLen := 10
	if o.version > 1 {
		prefixLen = 12
	}
	pad := 64 - (prefixLen+len(header)+1)%64
	header += strings.Repeat(" ", pad) + "\n"

	var buf bytes.Buffer
	buf.WriteString("\x93NUMPY")
	buf.WriteByte(o.version)
	buf.WriteByte(0)
	if o.version == 1 {
		_ = binary.Write(&buf, binary.LittleEndian, uint16(len(header)))
	} else {
		_ = binary.Write(&buf, binary.LittleEndian, uint32(len(header)))
	}
	buf.WriteString(header)

	put := func(v float64) {
		if o.dtype == "<f4" {
			_ = binary.Write(&buf, binary.LittleEndian, math.Float32bits(float32(v)))
			return
		}
		_ = binary.Write(&buf, binary.LittleEndian, math.Float64bits(v))
	}
	if o.fortran {
		for c := 0; c < cols; c++ {
			for r := 0; r < rows; r++ {
				put(data[r*cols+c])
			}
		}
	} else {
		for _, v := range data {
			put(v)
		}
	}
	return buf.Bytes()
}

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// fixture is a small consistent model: three movies, a 3x3 content
// matrix, and a 2x2 CF matrix covering the first two movies.
type fixture struct {
	movies   string
	content  []byte
	extToCF  string
	cfIndex  string
	cf       []byte
	trending string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	return fixture{
		movies: `[
			{"tmdbId": 862, "title": "Toy Story", "genres": ["Animation", "Comedy"], "vote_average": 7.7},
			{"tmdbId": 8844, "title": "Jumanji", "genres": ["Adventure"], "vote_average": 6.9},
			{"tmdbId": 15602, "title": "Grumpier Old Men", "genres": "Romance|Comedy", "vote_average": 6.5}
		]`,
		content: encodeNPY(t, 3, 3, []float64{
			1, 0.4, 0.2,
			0.4, 1, 0.1,
			0.2, 0.1, 1,
		}, npyOpts{}),
		extToCF:  `{"862": 1, "8844": 2.0}`,
		cfIndex:  `{"1": 0, "2": 1}`,
		cf:       encodeNPY(t, 2, 2, []float64{1, 0.8, 0.8, 1}, npyOpts{dtype: "<f4"}),
		trending: `[{"tmdbId": 862, "title": "Toy Story", "vote_average": 7.7}]`,
	}
}

func (f fixture) write(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, FileMovies, []byte(f.movies))
	writeFile(t, dir, FileContentSimilarity, f.content)
	writeFile(t, dir, FileExternalToCF, []byte(f.extToCF))
	writeFile(t, dir, FileCFIndex, []byte(f.cfIndex))
	writeFile(t, dir, FileCFSimilarity, f.cf)
	if f.trending != "" {
		writeFile(t, dir, FileTrending, []byte(f.trending))
	}
	return dir
}
