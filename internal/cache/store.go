package cache

import (
	"context"
	"time"
)

// State is the tri-state outcome of a cache read. Collapsing "never
// computed" and "computed, empty result" into one state causes either
// stampedes (negatives never cached) or permanently stale negatives;
// the two are kept distinct through the whole read path.
type State int

const (
	// StateUninitialized means no entry exists: compute and populate.
	StateUninitialized State = iota
	// StateEmpty means an entry exists and its value is the empty result.
	StateEmpty
	// StateValue means an entry exists with a non-empty payload.
	StateValue
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateEmpty:
		return "empty"
	case StateValue:
		return "value"
	}
	return "unknown"
}

// Store is the backing store of the cache layer. A nil or zero-length
// payload passed to Set records a cached negative; Get reports it as
// StateEmpty, distinct from the missing-entry StateUninitialized.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, State, error)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	Evict(ctx context.Context, key string) error
}
