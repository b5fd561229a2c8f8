// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package poster

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newOMDbServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("apikey") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"Response":"False","Error":"Invalid API key!"}`))
			return
		}
		if r.URL.Query().Get("t") == "" {
			t.Errorf("request without title: %s", r.URL)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOMDbClient_Poster(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr error
		anyErr  bool
	}{
		{
			name:   "poster found",
			status: http.StatusOK,
			body:   `{"Title":"Inception","Poster":"https://m.media-amazon.com/inception.jpg","Response":"True"}`,
			want:   "https://m.media-amazon.com/inception.jpg",
		},
		{
			name:    "movie not found",
			status:  http.StatusOK,
			body:    `{"Response":"False","Error":"Movie not found!"}`,
			wantErr: ErrNoPoster,
		},
		{
			name:    "poster N/A",
			status:  http.StatusOK,
			body:    `{"Title":"Obscure","Poster":"N/A","Response":"True"}`,
			wantErr: ErrNoPoster,
		},
		{
			name:    "empty poster",
			status:  http.StatusOK,
			body:    `{"Title":"Obscure","Poster":"","Response":"True"}`,
			wantErr: ErrNoPoster,
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   "upstream down",
			anyErr: true,
		},
		{
			name:   "invalid json",
			status: http.StatusOK,
			body:   "<html>",
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newOMDbServer(t, tt.status, tt.body)
			c := NewOMDbClient(OMDbConfig{BaseURL: srv.URL + "/", APIKey: "test-key", Timeout: 2 * time.Second})

			got, err := c.Poster(context.Background(), "Inception")
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Poster() error = %v, want %v", err, tt.wantErr)
				}
			case tt.anyErr:
				if err == nil || errors.Is(err, ErrNoPoster) {
					t.Errorf("Poster() error = %v, want transport error", err)
				}
			default:
				if err != nil || got != tt.want {
					t.Errorf("Poster() = %q, %v, want %q", got, err, tt.want)
				}
			}
		})
	}
}

func TestOMDbClient_EscapesTitle(t *testing.T) {
	t.Parallel()

	var gotTitle string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTitle = r.URL.Query().Get("t")
		_, _ = w.Write([]byte(`{"Response":"True","Poster":"https://img/x.jpg"}`))
	}))
	defer srv.Close()

	c := NewOMDbClient(OMDbConfig{BaseURL: srv.URL, APIKey: "k"})
	if _, err := c.Poster(context.Background(), "Fast & Furious: Tokyo Drift"); err != nil {
		t.Fatalf("Poster() error = %v", err)
	}
	if gotTitle != "Fast & Furious: Tokyo Drift" {
		t.Errorf("server saw title %q", gotTitle)
	}
}

func TestOMDbClient_CanceledContext(t *testing.T) {
	t.Parallel()

	srv := newOMDbServer(t, http.StatusOK, `{"Response":"True","Poster":"https://img/x.jpg"}`)
	c := NewOMDbClient(OMDbConfig{BaseURL: srv.URL, APIKey: "test-key", RequestsPerSecond: 1, Burst: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Poster(ctx, "Inception")
	if err == nil || !strings.Contains(err.Error(), "rate limit wait") {
		t.Errorf("Poster() error = %v, want rate limit wait failure", err)
	}
}

func TestPlaceholderURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{"Toy Story", "https://placehold.co/400x600/2c3e50/ffffff?text=Toy+Story"},
		{"Inception", "https://placehold.co/400x600/2c3e50/ffffff?text=Inception"},
		{"Fast & Furious", "https://placehold.co/400x600/2c3e50/ffffff?text=Fast+%26+Furious"},
		{"", "https://placehold.co/400x600/2c3e50/ffffff?text="},
	}
	for _, tt := range tests {
		if got := PlaceholderURL(tt.title); got != tt.want {
			t.Errorf("PlaceholderURL(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
