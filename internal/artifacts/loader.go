// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package artifacts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/tomtom215/moviematch/internal/logging"
)

// Artifact file names inside the model directory.
const (
	FileMovies            = "movies.json"
	FileContentSimilarity = "content_similarity.npy"
	FileExternalToCF      = "tmdb_to_cf.json"
	FileCFIndex           = "cf_index.json"
	FileCFSimilarity      = "cf_similarity.npy"
	FileTrending          = "trending.json"
)

// Options controls Load.
type Options struct {
	// RequireTrending fails the load when trending.json is absent.
	RequireTrending bool
}

// Load reads every artifact in dir concurrently and returns a validated
// Snapshot. The first failure cancels the remaining reads. All errors wrap
// ErrDataUnavailable.
func Load(ctx context.Context, dir string, opts Options) (*Snapshot, error) {
	var (
		movies   []Movie
		content  *mat.Dense
		extToCF  map[int64]int64
		cfToRow  map[int64]int
		cf       *mat.Dense
		trending []TrendingEntry
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		movies, err = readJSONFile[[]Movie](gctx, filepath.Join(dir, FileMovies))
		return err
	})
	g.Go(func() error {
		var err error
		content, err = readNPYFile(gctx, filepath.Join(dir, FileContentSimilarity))
		return err
	})
	g.Go(func() error {
		raw, err := readJSONFile[map[string]float64](gctx, filepath.Join(dir, FileExternalToCF))
		if err != nil {
			return err
		}
		extToCF, err = parseIDMap(FileExternalToCF, raw, func(v int64) int64 { return v })
		return err
	})
	g.Go(func() error {
		raw, err := readJSONFile[map[string]float64](gctx, filepath.Join(dir, FileCFIndex))
		if err != nil {
			return err
		}
		cfToRow, err = parseIDMap(FileCFIndex, raw, func(v int64) int { return int(v) })
		return err
	})
	g.Go(func() error {
		var err error
		cf, err = readNPYFile(gctx, filepath.Join(dir, FileCFSimilarity))
		return err
	})
	g.Go(func() error {
		path := filepath.Join(dir, FileTrending)
		var err error
		// Kept in file order. The build pipeline sorts by popularity.
		trending, err = readJSONFile[[]TrendingEntry](gctx, path)
		if errors.Is(err, fs.ErrNotExist) && !opts.RequireTrending {
			logging.Warn().Str("path", path).Msg("Trending list not found, cold start will return no movies")
			trending = []TrendingEntry{}
			return nil
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, unavailable(err)
	}

	return NewSnapshot(movies, content, NewIDMapping(extToCF, cfToRow), cf, trending)
}

func readJSONFile[T any](ctx context.Context, path string) (T, error) {
	var v T
	if err := ctx.Err(); err != nil {
		return v, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is built from configured artifact dir
	if err != nil {
		return v, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return v, nil
}

func readNPYFile(ctx context.Context, path string) (*mat.Dense, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path) //nolint:gosec // path is built from configured artifact dir
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	m, err := ReadNPY(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return m, nil
}

// parseIDMap converts a JSON object with numeric string keys into a typed
// map. Integral float values ("862": 1.0) are accepted since pandas exports
// id columns as floats.
func parseIDMap[V any](name string, raw map[string]float64, conv func(int64) V) (map[int64]V, error) {
	out := make(map[int64]V, len(raw))
	for k, v := range raw {
		key, err := parseIntegral(k)
		if err != nil {
			return nil, fmt.Errorf("decode %s: key %q: %w", name, k, err)
		}
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("decode %s: value %v for key %q is not an integer", name, v, k)
		}
		out[key] = conv(int64(v))
	}
	return out, nil
}

func parseIntegral(s string) (int64, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, errors.New("not an integer")
	}
	return int64(f), nil
}
