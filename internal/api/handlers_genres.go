// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"net/http"

	"github.com/tomtom215/moviematch/internal/config"
	"github.com/tomtom215/moviematch/internal/models"
)

// Genres handles GET /api/v1/genres.
//
// @Summary List genre filter options
// @Tags Recommendations
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.GenresResponse} "Genre options"
// @Router /api/v1/genres [get]
func (h *Handler) Genres(w http.ResponseWriter, _ *http.Request) {
	genres := config.DefaultGenres
	all := "All"
	if h.config != nil {
		if len(h.config.Recommend.Genres) > 0 {
			genres = h.config.Recommend.Genres
		}
		all = h.config.Recommend.AllGenre
	}

	respondJSON(w, http.StatusOK, models.NewSuccess(models.GenresResponse{
		Genres: genres,
		All:    all,
	}))
}
