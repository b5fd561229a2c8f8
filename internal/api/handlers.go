// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package api

import (
	"time"

	"github.com/tomtom215/moviematch/internal/artifacts"
	"github.com/tomtom215/moviematch/internal/config"
	"github.com/tomtom215/moviematch/internal/recommend"
)

// ArtifactSource exposes the artifact store to the health probes.
// artifacts.Store implements it.
type ArtifactSource interface {
	Snapshot() (*artifacts.Snapshot, error)
	Ready() bool
}

// Handler serves the recommendation, genre and health endpoints.
type Handler struct {
	service   *recommend.Service
	artifacts ArtifactSource
	config    *config.Config
	version   string
	startTime time.Time
}

// NewHandler creates a handler. cfg supplies the request timeout and the
// genre options.
func NewHandler(service *recommend.Service, source ArtifactSource, cfg *config.Config, version string) *Handler {
	return &Handler{
		service:   service,
		artifacts: source,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
}

func (h *Handler) requestTimeout() time.Duration {
	if h.config == nil || h.config.Server.RequestTimeout <= 0 {
		return defaultRequestTimeout
	}
	return h.config.Server.RequestTimeout
}

const defaultRequestTimeout = 10 * time.Second
