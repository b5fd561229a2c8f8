// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package poster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/moviematch/internal/metrics"
)

// ErrNoPoster means OMDb answered but has no poster for the title.
var ErrNoPoster = errors.New("no poster available")

// Fetcher looks up a poster URL by title.
type Fetcher interface {
	Poster(ctx context.Context, title string) (string, error)
}

// OMDbClient queries the OMDb title endpoint.
//
// Thread Safety: safe for concurrent use. Outbound requests share one
// token-bucket limiter.
type OMDbClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
}

// OMDbConfig configures an OMDbClient.
type OMDbConfig struct {
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// omdbResponse is the subset of the OMDb title payload we read.
type omdbResponse struct {
	Response string `json:"Response"`
	Poster   string `json:"Poster"`
	Error    string `json:"Error"`
}

// NewOMDbClient creates a client. Zero rate settings disable throttling.
func NewOMDbClient(cfg OMDbConfig) *OMDbClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &OMDbClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Poster returns the poster URL for title. It returns ErrNoPoster when
// OMDb reports no match or a poster of "N/A".
func (c *OMDbClient) Poster(ctx context.Context, title string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("omdb rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("t", title)
	params.Set("apikey", c.apiKey)
	reqURL := c.baseURL + "/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	metrics.PosterFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("omdb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("omdb request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload omdbResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode omdb response: %w", err)
	}

	if payload.Response != "True" || payload.Poster == "" || payload.Poster == "N/A" {
		return "", ErrNoPoster
	}
	return payload.Poster, nil
}
