package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Lua scripts make refresh and remove atomic: both must check ownership and
// act in one step, or a lock that expired between the check and the write
// could be stolen back from its new holder.
var (
	refreshScript = redis.NewScript(`
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("PEXPIRE", KEYS[1], ARGV[2])
		end
		return 0
	`)
	removeScript = redis.NewScript(`
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("DEL", KEYS[1])
		end
		return 0
	`)
)

// LockStore implements lock.Store on Redis, one key per QaG holding the
// moderator id, expiring with the claim TTL.
type LockStore struct {
	client *redis.Client
	prefix string
}

// NewLockStore creates a lock store namespaced under prefix.
func NewLockStore(client *redis.Client, prefix string) *LockStore {
	return &LockStore{client: client, prefix: prefix}
}

func (s *LockStore) key(qagID uuid.UUID) string {
	return s.prefix + ":modlock:" + qagID.String()
}

func (s *LockStore) Holder(ctx context.Context, qagID uuid.UUID) (uuid.UUID, bool, error) {
	raw, err := s.client.Get(ctx, s.key(qagID)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("redis get: %w", err)
	}

	holder, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("parse lock holder %q: %w", raw, err)
	}
	return holder, true, nil
}

func (s *LockStore) SetIfAbsent(ctx context.Context, qagID, holder uuid.UUID, ttl time.Duration) (bool, error) {
	won, err := s.client.SetNX(ctx, s.key(qagID), holder.String(), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx: %w", err)
	}
	return won, nil
}

func (s *LockStore) Refresh(ctx context.Context, qagID, holder uuid.UUID, ttl time.Duration) (bool, error) {
	res, err := refreshScript.Run(ctx, s.client,
		[]string{s.key(qagID)}, holder.String(), ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("redis refresh script: %w", err)
	}
	return res == 1, nil
}

func (s *LockStore) Remove(ctx context.Context, qagID, holder uuid.UUID) error {
	if err := removeScript.Run(ctx, s.client,
		[]string{s.key(qagID)}, holder.String()).Err(); err != nil {
		return fmt.Errorf("redis remove script: %w", err)
	}
	return nil
}
