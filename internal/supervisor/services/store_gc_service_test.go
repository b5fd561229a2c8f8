// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package services

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/moviematch/internal/logging"
)

type countingGC struct {
	runs atomic.Int32
	err  error
}

func (c *countingGC) RunGC() error {
	c.runs.Add(1)
	return c.err
}

func TestStoreGCService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{"success", nil},
		{"errors keep the loop running", errors.New("disk full")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gc := &countingGC{err: tt.err}
			svc := NewStoreGCService(gc, 5*time.Millisecond, logging.NewTestLogger(io.Discard))

			ctx, cancel := context.WithCancel(context.Background())
			errCh := make(chan error, 1)
			go func() { errCh <- svc.Serve(ctx) }()

			waitFor(t, func() bool { return gc.runs.Load() >= 3 })
			cancel()

			if err := <-errCh; !errors.Is(err, context.Canceled) {
				t.Errorf("Serve() error = %v, want context.Canceled", err)
			}
		})
	}
}

func TestNewStoreGCService_DefaultInterval(t *testing.T) {
	t.Parallel()

	svc := NewStoreGCService(&countingGC{}, 0, logging.NewTestLogger(io.Discard))
	if svc.interval != 10*time.Minute {
		t.Errorf("interval = %v, want 10m", svc.interval)
	}
	if svc.String() != "poster-store-gc" {
		t.Errorf("String() = %q", svc.String())
	}
}
