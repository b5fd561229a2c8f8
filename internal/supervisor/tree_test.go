// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package supervisor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitStarted(t *testing.T, svc *mockService) {
	t.Helper()
	select {
	case <-svc.started:
	case <-time.After(2 * time.Second):
		t.Fatalf("service %s was not started", svc.name)
	}
}

func TestNewSupervisorTree_Defaults(t *testing.T) {
	t.Parallel()

	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{})
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}
	if tree.Root() == nil {
		t.Fatal("Root() = nil")
	}
	if got := tree.Config(); got != DefaultTreeConfig() {
		t.Errorf("Config() = %+v, want %+v", got, DefaultTreeConfig())
	}

	custom, _ := NewSupervisorTree(quietLogger(), TreeConfig{FailureThreshold: 2, ShutdownTimeout: time.Second})
	cfg := custom.Config()
	if cfg.FailureThreshold != 2 || cfg.ShutdownTimeout != time.Second {
		t.Errorf("explicit values overwritten: %+v", cfg)
	}
	if cfg.FailureDecay != 30 || cfg.FailureBackoff != 15*time.Second {
		t.Errorf("zero values not defaulted: %+v", cfg)
	}
}

func TestSupervisorTree_StartsEveryLayer(t *testing.T) {
	t.Parallel()

	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})
	data := newMockService("poster-store-gc")
	background := newMockService("poster-warmup")
	api := newMockService("http-server")
	tree.AddDataService(data)
	tree.AddBackgroundService(background)
	tree.AddAPIService(api)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	waitStarted(t, data)
	waitStarted(t, background)
	waitStarted(t, api)

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("ServeBackground() error = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("tree did not stop")
	}

	report, err := tree.UnstoppedServiceReport()
	if err != nil {
		t.Fatalf("UnstoppedServiceReport() error = %v", err)
	}
	if len(report) != 0 {
		t.Errorf("unstopped services: %v", report)
	}
}

func TestSupervisorTree_RestartsFailedService(t *testing.T) {
	t.Parallel()

	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})

	flaky := newMockService("flaky")
	flaky.failFirst = 2
	stable := newMockService("stable")
	tree.AddBackgroundService(flaky)
	tree.AddAPIService(stable)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	deadline := time.After(time.Second)
	for flaky.starts.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("flaky service started %d times, want at least 3", flaky.starts.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}
	if got := stable.starts.Load(); got != 1 {
		t.Errorf("stable service started %d times, want 1", got)
	}

	cancel()
	<-errCh
}

func TestSupervisorTree_RemoveBackgroundService(t *testing.T) {
	t.Parallel()

	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})
	svc := newMockService("warmup")
	token := tree.AddBackgroundService(svc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)
	waitStarted(t, svc)

	if err := tree.RemoveBackgroundService(token); err != nil {
		t.Errorf("RemoveBackgroundService() error = %v", err)
	}

	cancel()
	<-errCh
}
