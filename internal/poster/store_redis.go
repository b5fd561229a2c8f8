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

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "moviematch:poster:"

// RedisStore shares resolved posters between replicas.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to addr and verifies the connection.
func NewRedisStore(ctx context.Context, addr string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis at %s: %w", addr, err)
	}
	return &RedisStore{client: client}, nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, tmdbID int64) (string, error) {
	val, err := s.client.Get(ctx, storeKey(redisKeyPrefix, tmdbID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get poster: %w", err)
	}
	var rec record
	if err := json.Unmarshal(val, &rec); err != nil {
		return "", fmt.Errorf("decode poster: %w", err)
	}
	return rec.URL, nil
}

// Set implements Store. A non-positive ttl stores without expiry.
func (s *RedisStore) Set(ctx context.Context, tmdbID int64, posterURL string, ttl time.Duration) error {
	data, err := json.Marshal(record{URL: posterURL, FetchedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal poster: %w", err)
	}
	if ttl < 0 {
		ttl = 0
	}
	return s.client.Set(ctx, storeKey(redisKeyPrefix, tmdbID), data, ttl).Err()
}

// Close implements Store.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
