// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package artifacts

import (
	"context"
	"errors"
	"testing"
)

func TestStore_Lifecycle(t *testing.T) {
	t.Parallel()

	s := NewStore(newFixture(t).write(t), Options{})

	if s.Ready() {
		t.Fatal("Ready() before Load = true")
	}
	if _, err := s.Snapshot(); !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("Snapshot() before Load error = %v, want ErrDataUnavailable", err)
	}

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !s.Ready() {
		t.Fatal("Ready() after Load = false")
	}
	snap, err := s.Snapshot()
	if err != nil || snap == nil {
		t.Fatalf("Snapshot() = %v, %v", snap, err)
	}

	// A second Load is a no-op returning the same snapshot.
	if err := s.Load(context.Background()); err != nil {
		t.Errorf("second Load() error = %v", err)
	}
	again, _ := s.Snapshot()
	if again != snap {
		t.Error("second Load replaced the snapshot")
	}
}

func TestStore_LoadFailureStaysUnavailable(t *testing.T) {
	t.Parallel()

	s := NewStore(t.TempDir(), Options{})

	err := s.Load(context.Background())
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("Load() error = %v, want ErrDataUnavailable", err)
	}
	if s.Ready() {
		t.Error("Ready() after failed Load = true")
	}
	if !errors.Is(s.Err(), ErrDataUnavailable) {
		t.Errorf("Err() = %v", s.Err())
	}
	if _, err := s.Snapshot(); !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("Snapshot() error = %v, want ErrDataUnavailable", err)
	}
}

func TestNewReadyStore(t *testing.T) {
	t.Parallel()

	snap, err := Load(context.Background(), newFixture(t).write(t), Options{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	s := NewReadyStore(snap)
	if !s.Ready() || s.Err() != nil {
		t.Fatalf("Ready() = %v, Err() = %v", s.Ready(), s.Err())
	}
	if err := s.Load(context.Background()); err != nil {
		t.Errorf("Load() on ready store error = %v", err)
	}
	got, _ := s.Snapshot()
	if got != snap {
		t.Error("Snapshot() returned a different snapshot")
	}
}
