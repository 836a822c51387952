package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agora-gouv/agora-backend/internal/domain"
)

// QagCache is the JSON codec layer between services and the backing Store.
// Every store failure is recoverable: reads degrade to StateUninitialized
// (the caller recomputes from the durable store) and writes are logged and
// dropped. The durable store stays authoritative throughout.
type QagCache struct {
	store    Store
	log      *slog.Logger
	tableTTL time.Duration
	listTTL  time.Duration
}

// NewQagCache creates the cache layer over the given backing store.
func NewQagCache(log *slog.Logger, store Store, tableTTL, listTTL time.Duration) *QagCache {
	return &QagCache{
		store:    store,
		log:      log.With("component", "qag_cache"),
		tableTTL: tableTTL,
		listTTL:  listTTL,
	}
}

// ---------------------------------------------------------------------------
// Derived lists
// ---------------------------------------------------------------------------

// GetList reads a derived list entry. StateUninitialized is returned both
// for a missing entry and for any backing failure or decode error.
func (c *QagCache) GetList(ctx context.Context, key Key) ([]domain.QagWithSupportCount, State) {
	payload, state, err := c.store.Get(ctx, key.String())
	if err != nil {
		c.log.WarnContext(ctx, "cache read failed, falling back to store",
			slog.String("key", key.String()),
			slog.String("error", err.Error()),
		)
		return nil, StateUninitialized
	}

	switch state {
	case StateEmpty:
		return []domain.QagWithSupportCount{}, StateEmpty
	case StateValue:
		var list []domain.QagWithSupportCount
		if err := json.Unmarshal(payload, &list); err != nil {
			c.log.WarnContext(ctx, "cache entry undecodable, evicting",
				slog.String("key", key.String()),
				slog.String("error", err.Error()),
			)
			_ = c.store.Evict(ctx, key.String())
			return nil, StateUninitialized
		}
		return list, StateValue
	}

	return nil, StateUninitialized
}

// SetList populates a derived list entry. An empty list is stored as an
// explicit negative so later reads see StateEmpty, not a miss.
func (c *QagCache) SetList(ctx context.Context, key Key, list []domain.QagWithSupportCount) {
	var payload []byte
	if len(list) > 0 {
		var err error
		payload, err = json.Marshal(list)
		if err != nil {
			c.log.WarnContext(ctx, "cache encode failed",
				slog.String("key", key.String()),
				slog.String("error", err.Error()),
			)
			return
		}
	}

	if err := c.store.Set(ctx, key.String(), payload, c.listTTL); err != nil {
		c.log.WarnContext(ctx, "cache write failed",
			slog.String("key", key.String()),
			slog.String("error", err.Error()),
		)
	}
}

// Evict drops a single entry. Failures are logged and swallowed; the entry
// TTL bounds the staleness window in that case.
func (c *QagCache) Evict(ctx context.Context, key Key) {
	if err := c.store.Evict(ctx, key.String()); err != nil {
		c.log.WarnContext(ctx, "cache evict failed",
			slog.String("key", key.String()),
			slog.String("error", err.Error()),
		)
	}
}

// ---------------------------------------------------------------------------
// Whole-table snapshot
// ---------------------------------------------------------------------------

// GetTable reads the whole-table QaG snapshot. The second return reports
// whether the snapshot was initialized; an initialized empty table is a
// valid snapshot.
func (c *QagCache) GetTable(ctx context.Context) (map[uuid.UUID]domain.Qag, bool) {
	payload, state, err := c.store.Get(ctx, TableKey().String())
	if err != nil {
		c.log.WarnContext(ctx, "table cache read failed, falling back to store",
			slog.String("error", err.Error()),
		)
		return nil, false
	}

	switch state {
	case StateEmpty:
		return map[uuid.UUID]domain.Qag{}, true
	case StateValue:
		var items []domain.Qag
		if err := json.Unmarshal(payload, &items); err != nil {
			c.log.WarnContext(ctx, "table cache entry undecodable, evicting",
				slog.String("error", err.Error()),
			)
			_ = c.store.Evict(ctx, TableKey().String())
			return nil, false
		}
		table := make(map[uuid.UUID]domain.Qag, len(items))
		for _, q := range items {
			table[q.ID] = q
		}
		return table, true
	}

	return nil, false
}

// SetTable replaces the whole-table snapshot with the given item set.
func (c *QagCache) SetTable(ctx context.Context, items []domain.Qag) {
	var payload []byte
	if len(items) > 0 {
		var err error
		payload, err = json.Marshal(items)
		if err != nil {
			c.log.WarnContext(ctx, "table cache encode failed",
				slog.String("error", err.Error()),
			)
			return
		}
	}

	if err := c.store.Set(ctx, TableKey().String(), payload, c.tableTTL); err != nil {
		c.log.WarnContext(ctx, "table cache write failed",
			slog.String("error", err.Error()),
		)
	}
}

// EvictTable drops the whole-table snapshot after a structural change.
func (c *QagCache) EvictTable(ctx context.Context) {
	c.Evict(ctx, TableKey())
}

// EvictAllDerivedFor drops every derived entry that could contain the item:
// the four thematique-scoped and unscoped popular/latest variants. Supported
// lists are user-scoped and evicted by the support path, which knows the user.
func (c *QagCache) EvictAllDerivedFor(ctx context.Context, thematiqueID uuid.UUID) {
	c.Evict(ctx, PopularKey(nil))
	c.Evict(ctx, PopularKey(&thematiqueID))
	c.Evict(ctx, LatestKey(nil))
	c.Evict(ctx, LatestKey(&thematiqueID))
}
