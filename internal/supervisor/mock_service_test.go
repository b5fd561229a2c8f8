// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
)

// mockService runs until canceled, optionally failing its first failFirst starts.
type mockService struct {
	name      string
	failFirst int32
	starts    atomic.Int32
	started   chan struct{}
}

func newMockService(name string) *mockService {
	return &mockService{name: name, started: make(chan struct{}, 1)}
}

func (m *mockService) Serve(ctx context.Context) error {
	n := m.starts.Add(1)
	select {
	case m.started <- struct{}{}:
	default:
	}
	if n <= m.failFirst {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (m *mockService) String() string {
	return m.name
}
