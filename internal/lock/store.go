// Package lock implements soft moderation locks: claiming a QaG in the
// moderation queue hides it from other moderators for the lock TTL, without
// blocking the decision path. Locks expire on their own; a crashed moderator
// session never strands an item.
package lock

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store is the backing store of moderation locks, keyed by QaG id.
type Store interface {
	// Holder reports the current lock holder, if any.
	Holder(ctx context.Context, qagID uuid.UUID) (uuid.UUID, bool, error)
	// SetIfAbsent claims the lock for holder unless it is already held.
	// It reports whether the claim won.
	SetIfAbsent(ctx context.Context, qagID, holder uuid.UUID, ttl time.Duration) (bool, error)
	// Refresh extends the lock if holder still owns it.
	Refresh(ctx context.Context, qagID, holder uuid.UUID, ttl time.Duration) (bool, error)
	// Remove releases the lock if holder owns it. Removing a lock held by
	// someone else, or no lock at all, is a no-op.
	Remove(ctx context.Context, qagID, holder uuid.UUID) error
}
