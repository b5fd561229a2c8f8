// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/tomtom215/moviematch/internal/artifacts"
	"github.com/tomtom215/moviematch/internal/config"
	"github.com/tomtom215/moviematch/internal/models"
	"github.com/tomtom215/moviematch/internal/recommend"
)

// testSnapshot is a three-movie catalog without CF coverage, so alpha=1
// scores equal the content similarities.
func testSnapshot(t *testing.T) *artifacts.Snapshot {
	t.Helper()

	movies := []artifacts.Movie{
		{TMDBID: 27205, Title: "Inception", Genres: artifacts.Genres{"Action", "Sci-Fi"}, VoteAverage: 8.3},
		{TMDBID: 157336, Title: "Interstellar", Genres: artifacts.Genres{"Sci-Fi"}, VoteAverage: 8.1},
		{TMDBID: 862, Title: "Toy Story", Genres: artifacts.Genres{"Animation"}, VoteAverage: 7.7},
	}
	content := mat.NewDense(3, 3, []float64{
		1.0, 0.9, 0.1,
		0.9, 1.0, 0.2,
		0.1, 0.2, 1.0,
	})
	trending := []artifacts.TrendingEntry{
		{TMDBID: 550, Title: "Fight Club", VoteAverage: 8.4},
		{TMDBID: 680, Title: "Pulp Fiction", VoteAverage: 8.5},
	}

	snap, err := artifacts.NewSnapshot(movies, content, nil, mat.NewDense(1, 1, []float64{1}), trending)
	if err != nil {
		t.Fatalf("NewSnapshot() error = %v", err)
	}
	return snap
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{RequestTimeout: 5 * time.Second},
		Recommend: config.RecommendConfig{
			AllGenre: "All",
			Genres:   []string{"All", "Sci-Fi", "Animation"},
		},
	}
}

type testServerOptions struct {
	notReady bool
	security *config.SecurityConfig
}

func newTestServer(t *testing.T, opts testServerOptions) http.Handler {
	t.Helper()

	store := artifacts.NewStore(t.TempDir(), artifacts.Options{})
	if !opts.notReady {
		store = artifacts.NewReadyStore(testSnapshot(t))
	}

	svc, err := recommend.NewService(recommend.DefaultConfig(), store, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	sec := opts.security
	if sec == nil {
		sec = &config.SecurityConfig{RateLimitDisabled: true, CORSOrigins: []string{"https://movies.example"}}
	}

	h := NewHandler(svc, store, testConfig(), "test")
	return NewRouter(h, NewChiMiddleware(ChiMiddlewareConfigFromSecurity(sec))).SetupChi()
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeRecommend(t *testing.T, rec *httptest.ResponseRecorder) recommend.Response {
	t.Helper()
	var resp recommend.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode recommend response: %v (body %s)", err, rec.Body.String())
	}
	return resp
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	return resp
}
