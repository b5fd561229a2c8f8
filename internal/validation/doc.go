// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built on first use with
// WithRequiredStructEnabled, the custom "finite" tag and a tag-name function
// that reports fields by their query or JSON name.
//
//	type recommendQuery struct {
//	    Title string   `query:"title" validate:"max=500"`
//	    Alpha *float64 `query:"alpha" validate:"omitempty,finite"`
//	}
//
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Error Types
//
// ValidationError describes one failed field. RequestValidationError
// collects them and converts to the VALIDATION_ERROR API error, listing
// every failed field in Details when there is more than one. Values that
// JSON cannot encode, such as NaN, are left out of Details.
package validation
