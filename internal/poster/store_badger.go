// MovieMatch - Hybrid Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package poster

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

const badgerKeyPrefix = "poster:"

// BadgerStore keeps posters in an embedded BadgerDB with per-entry TTLs.
type BadgerStore struct {
	db     *badger.DB
	ownsDB bool
}

// OpenBadgerStore opens (or creates) a BadgerDB at path.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for posters: %w", err)
	}
	return &BadgerStore{db: db, ownsDB: true}, nil
}

// NewBadgerStoreFromDB uses an existing DB. Close leaves it open.
func NewBadgerStoreFromDB(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// Get implements Store.
func (s *BadgerStore) Get(_ context.Context, tmdbID int64) (string, error) {
	var rec record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(storeKey(badgerKeyPrefix, tmdbID)))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get poster: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return "", err
	}
	return rec.URL, nil
}

// Set implements Store. A non-positive ttl stores without expiry.
func (s *BadgerStore) Set(_ context.Context, tmdbID int64, posterURL string, ttl time.Duration) error {
	data, err := json.Marshal(record{URL: posterURL, FetchedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal poster: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(storeKey(badgerKeyPrefix, tmdbID)), data)
		if ttl > 0 {
			e = e.WithTTL(ttl)
		}
		return txn.SetEntry(e)
	})
}

// gcDiscardRatio is the fraction of stale data a value log file needs
// before it is rewritten.
const gcDiscardRatio = 0.5

// RunGC rewrites value log files until nothing is left to reclaim. Expired
// posters only free disk space once their log file is collected.
func (s *BadgerStore) RunGC() error {
	for {
		err := s.db.RunValueLogGC(gcDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run poster store GC: %w", err)
		}
	}
}

// Close implements Store.
func (s *BadgerStore) Close() error {
	if !s.ownsDB {
		return nil
	}
	return s.db.Close()
}
