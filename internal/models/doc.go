// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package models defines the HTTP wire types shared by the API handlers.

Recommendation payloads live in the recommend package and are served as-is
by GET /recommend. Everything else, including every error, is wrapped in
APIResponse:

	{"status": "success", "data": {...}, "metadata": {"timestamp": "..."}}
	{"status": "error", "data": null, "error": {"code": "...", "message": "..."}, "metadata": {...}}
*/
package models
