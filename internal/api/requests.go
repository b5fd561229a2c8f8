// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/moviematch/internal/models"
	"github.com/tomtom215/moviematch/internal/recommend"
)

// RecommendRequest holds the validated query parameters of /recommend.
//
// Fields:
//   - Title: free-text title, blank for trending movies (at most 500 characters)
//   - Alpha: content weight; nil selects the configured default
//   - Genre: exact genre tag or "All" (at most 64 characters)
type RecommendRequest struct {
	Title string   `query:"title" validate:"max=500"`
	Alpha *float64 `query:"alpha" validate:"omitempty,finite"`
	Genre string   `query:"genre" validate:"max=64"`
}

// parseRecommendRequest reads and validates the query string.
func parseRecommendRequest(r *http.Request) (*RecommendRequest, *models.APIError) {
	q := r.URL.Query()
	req := &RecommendRequest{
		Title: q.Get("title"),
		Genre: q.Get("genre"),
	}

	if raw := strings.TrimSpace(q.Get("alpha")); raw != "" {
		alpha, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &models.APIError{
				Code:    models.ErrCodeValidation,
				Message: "alpha must be a number",
				Details: map[string]interface{}{"field": "alpha", "tag": "number"},
			}
		}
		req.Alpha = &alpha
	}

	if apiErr := validateRequest(req); apiErr != nil {
		return nil, apiErr
	}
	return req, nil
}

func (req *RecommendRequest) toRecommend() recommend.Request {
	return recommend.Request{
		Title: req.Title,
		Alpha: req.Alpha,
		Genre: req.Genre,
	}
}
