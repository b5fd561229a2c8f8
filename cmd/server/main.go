// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/tomtom215/moviematch/docs" // Import generated swagger docs
	"github.com/tomtom215/moviematch/internal/api"
	"github.com/tomtom215/moviematch/internal/artifacts"
	"github.com/tomtom215/moviematch/internal/config"
	"github.com/tomtom215/moviematch/internal/logging"
	"github.com/tomtom215/moviematch/internal/metrics"
	"github.com/tomtom215/moviematch/internal/recommend"
	"github.com/tomtom215/moviematch/internal/supervisor"
	"github.com/tomtom215/moviematch/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("artifacts_dir", cfg.Artifacts.Dir).
		Str("environment", cfg.Server.Environment).
		Msg("Starting MovieMatch")
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS_ORIGINS allows any origin outside development")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Artifacts are loaded exactly once. On failure the server still starts
	// and answers 503 until restarted with good artifacts.
	store := artifacts.NewStore(cfg.Artifacts.Dir, artifacts.Options{
		RequireTrending: cfg.Artifacts.RequireTrending,
	})
	if err := store.Load(ctx); err != nil {
		logging.Error().Err(err).Msg("Serving without model artifacts; readiness will report not_ready")
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	resolver := initPosters(ctx, cfg, store, tree)
	defer func() {
		if err := resolver.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing poster store")
		}
	}()

	svc, err := recommend.NewService(recommend.ConfigFrom(&cfg.Recommend), store, resolver,
		logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation service")
	}

	handler := api.NewHandler(svc, store, cfg, version)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security)))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, s := range unstopped {
		logging.Warn().Str("service", s.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("MovieMatch stopped")
}
