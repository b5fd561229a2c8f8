// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the artifacts and check their shapes",
		Long: `Load every artifact, cross-check matrix dimensions against the
catalog and the CF index, and print entry counts. Exits non-zero on the
first problem.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start := time.Now()
			snap, err := opts.loadSnapshot(cmd.Context())
			if err != nil {
				return err
			}

			sizes := snap.Sizes()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "artifacts: %s\n", opts.cfg.Artifacts.Dir)
			fmt.Fprintf(out, "catalog:   %d\n", sizes["catalog"])
			fmt.Fprintf(out, "cf_index:  %d\n", sizes["cf_index"])
			fmt.Fprintf(out, "trending:  %d\n", sizes["trending"])
			fmt.Fprintf(out, "loaded in %s\n", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}
