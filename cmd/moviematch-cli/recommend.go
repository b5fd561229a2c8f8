// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/moviematch/internal/artifacts"
	"github.com/tomtom215/moviematch/internal/logging"
	"github.com/tomtom215/moviematch/internal/poster"
	"github.com/tomtom215/moviematch/internal/recommend"
)

type recommendOptions struct {
	alpha   float64
	genre   string
	posters bool
}

func newRecommendCmd(root *rootOptions) *cobra.Command {
	opts := &recommendOptions{}

	cmd := &cobra.Command{
		Use:   "recommend TITLE...",
		Short: "Print recommendations as JSON",
		Long: `Run the full recommendation pipeline and print the response body the
server would return. An empty title ("") gives the trending list.

Posters are skipped unless --posters is set, in which case the poster
settings from config.yaml and the environment apply.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			snap, err := root.loadSnapshot(ctx)
			if err != nil {
				return err
			}

			var posters recommend.PosterResolver
			if opts.posters {
				resolver, err := poster.NewFromConfig(ctx, &root.cfg.Poster, logging.WithComponent("poster"))
				if err != nil {
					return fmt.Errorf("create poster resolver: %w", err)
				}
				defer resolver.Close()
				posters = resolver
			}

			svc, err := recommend.NewService(recommend.ConfigFrom(&root.cfg.Recommend),
				artifacts.NewReadyStore(snap), posters, logging.WithComponent("recommend"))
			if err != nil {
				return err
			}

			req := recommend.Request{Title: strings.Join(args, " "), Genre: opts.genre}
			if cmd.Flags().Changed("alpha") {
				req.Alpha = &opts.alpha
			}
			resp, err := svc.Recommend(ctx, req)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}

	cmd.Flags().Float64Var(&opts.alpha, "alpha", 0.45, "content weight in [0,1] (default from RECOMMEND_DEFAULT_ALPHA)")
	cmd.Flags().StringVar(&opts.genre, "genre", "All", "exact genre filter, or All")
	cmd.Flags().BoolVar(&opts.posters, "posters", false, "resolve poster URLs")
	return cmd
}
