package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Registry is the moderation-lock API used by the QaG service. Unlike the
// cache layer, lock store failures are surfaced: a moderation queue built on
// an unreachable lock store would hand the same items to every moderator.
type Registry struct {
	store Store
	ttl   time.Duration
}

// NewRegistry creates a registry with the given claim TTL.
func NewRegistry(store Store, ttl time.Duration) *Registry {
	return &Registry{store: store, ttl: ttl}
}

// TTL returns the configured claim duration.
func (r *Registry) TTL() time.Duration { return r.ttl }

// Acquire claims the lock on a QaG for a moderator. Re-acquiring one's own
// lock succeeds and refreshes the TTL, so reloading the queue keeps the
// moderator's claims alive.
func (r *Registry) Acquire(ctx context.Context, qagID, moderatorID uuid.UUID) (bool, error) {
	won, err := r.store.SetIfAbsent(ctx, qagID, moderatorID, r.ttl)
	if err != nil {
		return false, fmt.Errorf("acquire lock: %w", err)
	}
	if won {
		return true, nil
	}

	refreshed, err := r.store.Refresh(ctx, qagID, moderatorID, r.ttl)
	if err != nil {
		return false, fmt.Errorf("refresh lock: %w", err)
	}
	return refreshed, nil
}

// Release drops the moderator's claim. Releasing a lock one does not hold
// is a no-op.
func (r *Registry) Release(ctx context.Context, qagID, moderatorID uuid.UUID) error {
	if err := r.store.Remove(ctx, qagID, moderatorID); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}

// HolderOf reports who currently holds the lock on a QaG, if anyone.
func (r *Registry) HolderOf(ctx context.Context, qagID uuid.UUID) (uuid.UUID, bool, error) {
	holder, held, err := r.store.Holder(ctx, qagID)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("read lock holder: %w", err)
	}
	return holder, held, nil
}

// FilterClaimable returns, in input order, the ids that are unlocked or
// already held by the requesting moderator.
func (r *Registry) FilterClaimable(ctx context.Context, ids []uuid.UUID, moderatorID uuid.UUID) ([]uuid.UUID, error) {
	claimable := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		holder, held, err := r.store.Holder(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("read lock holder: %w", err)
		}
		if !held || holder == moderatorID {
			claimable = append(claimable, id)
		}
	}
	return claimable, nil
}
