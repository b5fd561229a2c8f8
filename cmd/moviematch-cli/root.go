// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/moviematch/internal/artifacts"
	"github.com/tomtom215/moviematch/internal/config"
	"github.com/tomtom215/moviematch/internal/logging"
)

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	artifactsDir string
	logLevel     string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "moviematch-cli",
		Short: "Inspect MovieMatch artifacts and run offline recommendations",
		Long: `moviematch-cli loads the same artifact directory as the server and
answers queries from the command line.

Settings come from config.yaml and the environment as for the server;
--artifacts overrides ARTIFACTS_DIR.`,
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			logging.Init(logging.Config{Level: opts.logLevel, Format: "console", Output: os.Stderr})

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if opts.artifactsDir != "" {
				cfg.Artifacts.Dir = opts.artifactsDir
			}
			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.artifactsDir, "artifacts", "", "artifact directory (default from ARTIFACTS_DIR)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: trace, debug, info, warn, error")

	cmd.AddCommand(
		newValidateCmd(opts),
		newResolveCmd(opts),
		newRecommendCmd(opts),
	)
	return cmd
}

// loadSnapshot reads and validates the configured artifact directory.
func (o *rootOptions) loadSnapshot(ctx context.Context) (*artifacts.Snapshot, error) {
	snap, err := artifacts.Load(ctx, o.cfg.Artifacts.Dir, artifacts.Options{
		RequireTrending: o.cfg.Artifacts.RequireTrending,
	})
	if err != nil {
		return nil, fmt.Errorf("load artifacts from %s: %w", o.cfg.Artifacts.Dir, err)
	}
	return snap, nil
}
