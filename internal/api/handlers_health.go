// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/moviematch/internal/logging"
	"github.com/tomtom215/moviematch/internal/models"
)

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of artifact state.
//
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Process is alive"
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, models.NewSuccess(models.HealthStatus{
		Status:    "alive",
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Timestamp: time.Now().UTC(),
	}))
}

// HealthReady handles readiness probe requests.
// Returns 200 OK once artifacts are loaded and 503 before or after a failed load.
//
// @Summary Readiness probe
// @Description Ready once the recommendation artifacts are loaded; reports catalog, CF and trending sizes.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Artifacts loaded"
// @Failure 503 {object} models.APIResponse{data=models.HealthStatus} "Artifacts not loaded"
// @Router /api/v1/health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	health := models.HealthStatus{
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Timestamp: time.Now().UTC(),
	}

	ready := h.artifacts != nil && h.artifacts.Ready()
	if ready {
		snap, err := h.artifacts.Snapshot()
		if err != nil {
			ready = false
			logging.Warn().Err(err).Msg("Artifact store reported ready without a snapshot")
		} else {
			sizes := snap.Sizes()
			health.CatalogSize = sizes["catalog"]
			health.CFSize = sizes["cf_index"]
			health.TrendingSize = sizes["trending"]
			loadedAt := snap.LoadedAt
			health.LoadedAt = &loadedAt
		}
	}
	health.Ready = &ready

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
		health.Error = "recommendation artifacts are not loaded"
	}
	health.Status = status

	resp := models.NewSuccess(health)
	resp.Status = status
	respondJSON(w, statusCode, resp)
}
