// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package artifacts

import (
	"errors"
	"fmt"
)

// ErrDataUnavailable is returned when the model artifacts are missing,
// unreadable or inconsistent, or have not been loaded yet.
var ErrDataUnavailable = errors.New("recommendation data unavailable")

// ShapeError reports an artifact whose dimensions do not line up with the
// rest of the model.
type ShapeError struct {
	Artifact string
	Want     string
	Got      string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: shape mismatch: want %s, got %s", e.Artifact, e.Want, e.Got)
}

func unavailable(err error) error {
	if errors.Is(err, ErrDataUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrDataUnavailable, err)
}
