// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/moviematch/internal/recommend"
)

func newResolveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve TITLE...",
		Short: "Show how a title maps to the catalog",
		Long: `Resolve a free-text title the way /recommend does: a normalized exact
match first, then the best token-sort fuzzy match above the threshold.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := opts.loadSnapshot(cmd.Context())
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			resolver := recommend.NewTitleResolver(snap.Movies, opts.cfg.Recommend.FuzzyThreshold)
			res := resolver.Resolve(query)

			out := cmd.OutOrStdout()
			if !res.Found {
				fmt.Fprintf(out, "query:  %q\nmethod: %s\n", query, res.Method)
				return nil
			}
			m := snap.Movies[res.Index]
			fmt.Fprintf(out, "query:  %q\nmethod: %s\nscore:  %d\nindex:  %d\ntitle:  %s\ntmdb:   %d\n",
				query, res.Method, res.Score, res.Index, m.Title, m.TMDBID)
			return nil
		},
	}
}
