// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package main

// General API information for swag. Regenerate the docs package with:
//
//	swag init -g cmd/server/docs.go -o docs --parseInternal
//
// @title MovieMatch API
// @version 1.0
// @description Hybrid movie recommendations blending content and collaborative-filtering similarity, with a trending cold-start fallback.
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/moviematch/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Recommendations
// @tag.description Similar-movie recommendations and genre filter options
//
// @tag.name Health
// @tag.description Liveness and readiness probes
