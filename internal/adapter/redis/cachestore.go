package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/agora-gouv/agora-backend/internal/cache"
)

// CacheStore implements cache.Store on Redis. A missing key maps to
// StateUninitialized and an empty value to StateEmpty, so cached negatives
// survive the round trip.
type CacheStore struct {
	client *redis.Client
	prefix string
}

// NewCacheStore creates a cache store namespaced under prefix.
func NewCacheStore(client *redis.Client, prefix string) *CacheStore {
	return &CacheStore{client: client, prefix: prefix}
}

func (s *CacheStore) key(key string) string {
	return s.prefix + ":cache:" + key
}

func (s *CacheStore) Get(ctx context.Context, key string) ([]byte, cache.State, error) {
	payload, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, cache.StateUninitialized, nil
	}
	if err != nil {
		return nil, cache.StateUninitialized, fmt.Errorf("redis get: %w", err)
	}
	if len(payload) == 0 {
		return nil, cache.StateEmpty, nil
	}
	return payload, cache.StateValue, nil
}

func (s *CacheStore) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(key), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *CacheStore) Evict(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
