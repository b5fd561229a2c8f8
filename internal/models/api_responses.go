// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package models

import (
	"time"
)

// APIResponse is the envelope used by the versioned API endpoints and by
// every error response.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "alpha must be a finite number",
//	    "details": {"field": "alpha"}
//	  },
//	  "metadata": {"timestamp": "2026-01-10T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	RequestID   string    `json:"request_id,omitempty"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError is the structured error body.
//
// Codes in use:
//   - VALIDATION_ERROR: invalid query parameters
//   - DATA_UNAVAILABLE: recommendation artifacts are not loaded
//   - RATE_LIMIT_EXCEEDED: too many requests from one client
//   - INTERNAL_ERROR: unexpected failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes.
const (
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeDataUnavailable = "DATA_UNAVAILABLE"
	ErrCodeRateLimited     = "RATE_LIMIT_EXCEEDED"
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeNotFound        = "NOT_FOUND"
)

// NewSuccess wraps data in a success envelope.
func NewSuccess(data interface{}) *APIResponse {
	return &APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: Metadata{Timestamp: time.Now().UTC()},
	}
}

// NewError builds an error envelope.
func NewError(code, message string, details map[string]interface{}) *APIResponse {
	return &APIResponse{
		Status:   "error",
		Metadata: Metadata{Timestamp: time.Now().UTC()},
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}
