package geocache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of redis commands the store needs.
// Satisfied by *redis.Client; narrowed for easy mocking in tests.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisStore keeps the cache snapshot as a single value under one redis
// key, so several instances behind a load balancer share lookups.
type RedisStore struct {
	client RedisClient
	key    string
}

// NewRedisStore creates a RedisStore using the given client and key.
// An empty key falls back to SnapshotKey.
func NewRedisStore(client RedisClient, key string) *RedisStore {
	if key == "" {
		key = SnapshotKey
	}
	return &RedisStore{client: client, key: key}
}

// Load reads the snapshot value. A missing key is an empty snapshot.
func (s *RedisStore) Load(ctx context.Context) ([]Entry, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache snapshot from redis: %w", err)
	}

	var entries []Entry
	if err = json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode cache snapshot: %w", err)
	}

	return entries, nil
}

// Save replaces the snapshot value. Entries never expire; the cache has
// no staleness policy.
func (s *RedisStore) Save(ctx context.Context, entries []Entry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode cache snapshot: %w", err)
	}

	if err = s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write cache snapshot to redis: %w", err)
	}

	return nil
}
