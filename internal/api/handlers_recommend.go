// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/moviematch/internal/artifacts"
	"github.com/tomtom215/moviematch/internal/logging"
	"github.com/tomtom215/moviematch/internal/models"
)

// Recommend handles GET /recommend and GET /api/v1/recommend.
//
// Query parameters: title, alpha (default from config), genre (default All).
// The body is the bare recommendation response; errors use the APIResponse
// envelope (400 VALIDATION_ERROR, 503 DATA_UNAVAILABLE).
//
// @Summary Recommend similar movies
// @Description Resolves the title (exact, then fuzzy) and ranks content candidates blended with collaborative-filtering similarity. Blank or unknown titles return trending movies with cold_start_reason set.
// @Tags Recommendations
// @Produce json
// @Param title query string false "Movie title, free text" maxlength(500)
// @Param alpha query number false "Content weight in [0,1]; defaults to RECOMMEND_DEFAULT_ALPHA"
// @Param genre query string false "Exact genre tag; All disables filtering" default(All)
// @Success 200 {object} recommend.Response "Ranked recommendations or cold-start list"
// @Failure 400 {object} models.APIResponse{error=models.APIError} "Invalid alpha, title or genre"
// @Failure 503 {object} models.APIResponse{error=models.APIError} "Artifacts not loaded"
// @Router /recommend [get]
// @Router /api/v1/recommend [get]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	req, apiErr := parseRecommendRequest(r)
	if apiErr != nil {
		respondErrorDetails(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout())
	defer cancel()

	resp, err := h.service.Recommend(ctx, req.toRecommend())
	switch {
	case errors.Is(err, artifacts.ErrDataUnavailable):
		respondError(w, http.StatusServiceUnavailable, models.ErrCodeDataUnavailable,
			"Recommendation data is not loaded", nil)
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, models.ErrCodeInternal,
			"Failed to generate recommendations", err)
		return
	}

	logging.Ctx(ctx).Debug().
		Str("title", sanitizeLogValue(req.Title)).
		Str("genre", sanitizeLogValue(req.Genre)).
		Int("results", len(resp.Recommendations)).
		Str("cold_start_reason", string(resp.ColdStartReason)).
		Msg("Recommendation served")

	writeJSON(w, http.StatusOK, resp)
}
