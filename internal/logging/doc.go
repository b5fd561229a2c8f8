// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

/*
Package logging wraps zerolog as the single structured logger for MovieMatch.

Call Init once from main with the values from config.LoggingConfig:

	logging.Init(logging.Config{
	    Level:     cfg.Logging.Level,
	    Format:    cfg.Logging.Format,
	    Caller:    cfg.Logging.Caller,
	    Timestamp: true,
	})

Components derive child loggers instead of using the package functions
directly, so every entry carries a component field:

	logger := logging.WithComponent("poster")
	logger.Warn().Err(err).Int64("tmdb_id", id).Msg("omdb lookup failed")

Request-scoped logging goes through Ctx, which adds the request_id and
correlation_id fields set by the HTTP middleware:

	logging.Ctx(r.Context()).Debug().Str("title", title).Msg("recommend")

Always finish an event with Msg or Send; an unfinished event is dropped.

Environment variables (mapped by internal/config):

	LOG_LEVEL   trace, debug, info, warn, error (default info)
	LOG_FORMAT  json or console (default json)
	LOG_CALLER  true or false (default false)
*/
package logging
