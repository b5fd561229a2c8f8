// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Command moviematch-cli inspects an artifact directory and runs
// recommendations offline, without the HTTP server.
//
//	moviematch-cli validate --artifacts ./artifacts
//	moviematch-cli resolve --artifacts ./artifacts "the dark knight"
//	moviematch-cli recommend --artifacts ./artifacts --alpha 0.6 --genre Drama inception
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
