// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package poster

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/moviematch/internal/logging"
	"github.com/tomtom215/moviematch/internal/metrics"
)

const (
	breakerName     = "omdb-api"
	breakerInterval = time.Minute
	breakerTimeout  = 2 * time.Minute
)

// CircuitBreakerClient wraps a Fetcher with a circuit breaker so an
// unavailable OMDb fails fast instead of stalling every request.
//
// ErrNoPoster is an answer, not a failure, and does not count toward
// tripping the breaker.
type CircuitBreakerClient struct {
	fetcher Fetcher
	cb      *gobreaker.CircuitBreaker[string]
	name    string
}

// NewCircuitBreakerClient wraps fetcher. Configuration:
//   - Max 3 requests in half-open state
//   - 1 minute measurement window
//   - 2 minute timeout before attempting recovery
//   - Opens after 60% failure rate with minimum 10 requests
func NewCircuitBreakerClient(fetcher Fetcher) *CircuitBreakerClient {
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 3,
		Interval:    breakerInterval,
		Timeout:     breakerTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNoPoster)
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{fetcher: fetcher, cb: cb, name: breakerName}
}

// Poster fetches through the breaker.
func (c *CircuitBreakerClient) Poster(ctx context.Context, title string) (string, error) {
	result, err := c.cb.Execute(func() (string, error) {
		return c.fetcher.Poster(ctx, title)
	})

	switch {
	case err == nil, errors.Is(err, ErrNoPoster):
		metrics.CircuitBreakerRequests.WithLabelValues(c.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(c.name).Set(0)
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(c.name, "rejected").Inc()
		logging.Debug().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(c.name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(c.name).Set(float64(c.cb.Counts().ConsecutiveFailures))
	}
	return result, err
}

// State returns the breaker state.
func (c *CircuitBreakerClient) State() gobreaker.State {
	return c.cb.State()
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
