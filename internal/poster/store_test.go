// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package poster

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBadgerStore(t *testing.T) {
	t.Parallel()

	s := newMemoryBadgerStore(t)
	ctx := context.Background()

	if _, err := s.Get(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() on empty store error = %v, want ErrNotFound", err)
	}

	if err := s.Set(ctx, 1, "https://img/a.jpg", time.Hour); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set(ctx, 2, "https://img/b.jpg", 0); err != nil {
		t.Fatalf("Set() without ttl error = %v", err)
	}

	for id, want := range map[int64]string{1: "https://img/a.jpg", 2: "https://img/b.jpg"} {
		got, err := s.Get(ctx, id)
		if err != nil || got != want {
			t.Errorf("Get(%d) = %q, %v, want %q", id, got, err, want)
		}
	}

	if err := s.Set(ctx, 1, "https://img/a2.jpg", time.Hour); err != nil {
		t.Fatalf("overwrite Set() error = %v", err)
	}
	if got, _ := s.Get(ctx, 1); got != "https://img/a2.jpg" {
		t.Errorf("Get(1) after overwrite = %q", got)
	}

	// Stores built from a shared DB leave it open.
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if _, err := s.Get(ctx, 1); err != nil {
		t.Errorf("Get() after Close on borrowed DB error = %v", err)
	}
}

func TestOpenBadgerStore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx := context.Background()

	s, err := OpenBadgerStore(dir)
	if err != nil {
		t.Fatalf("OpenBadgerStore() error = %v", err)
	}
	if err := s.Set(ctx, 5, "https://img/e.jpg", time.Hour); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := OpenBadgerStore(dir)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer reopened.Close()

	if got, err := reopened.Get(ctx, 5); err != nil || got != "https://img/e.jpg" {
		t.Errorf("Get() after reopen = %q, %v", got, err)
	}
	if err := reopened.RunGC(); err != nil {
		t.Errorf("RunGC() on a small store error = %v, want nil", err)
	}
}

func TestBadgerStore_RunGCInMemory(t *testing.T) {
	t.Parallel()

	s := newMemoryBadgerStore(t)
	if err := s.RunGC(); err != nil {
		t.Errorf("RunGC() in memory mode error = %v, want nil", err)
	}
}

func TestNewRedisStore_Unreachable(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := NewRedisStore(ctx, "127.0.0.1:1", 0); err == nil {
		t.Error("NewRedisStore() error = nil, want connection failure")
	}
}

func TestStoreKey(t *testing.T) {
	t.Parallel()

	if got := storeKey(redisKeyPrefix, 27205); got != "moviematch:poster:27205" {
		t.Errorf("storeKey() = %q", got)
	}
	if got := storeKey(badgerKeyPrefix, -1); got != "poster:-1" {
		t.Errorf("storeKey() = %q", got)
	}
}
