// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package poster

import "net/url"

const placeholderBase = "https://placehold.co/400x600/2c3e50/ffffff?text="

// PlaceholderURL returns a generated poster image showing title.
func PlaceholderURL(title string) string {
	return placeholderBase + url.QueryEscape(title)
}
