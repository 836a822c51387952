package support

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agora-gouv/agora-backend/internal/cache"
	"github.com/agora-gouv/agora-backend/internal/domain"
)

// Insert records one citizen support on one QaG. The qagID is accepted as
// an opaque string: malformed and unknown ids alike are reported as
// ineligible rather than as errors. The outcome enum covers every
// non-failure path; the error is reserved for store failures.
//
// An item is ineligible once a response exists or once the status left
// OPEN / MODERATED_ACCEPTED. The eligibility checks read the durable store,
// never the cache. Uniqueness is enforced by the store constraint: two
// concurrent inserts of the same pair resolve to one INSERTED and one
// DUPLICATE, never two rows.
func (s *Service) Insert(ctx context.Context, qagID string, userID uuid.UUID) (domain.SupportResult, error) {
	id, err := uuid.Parse(qagID)
	if err != nil {
		return domain.SupportIneligible, nil
	}

	item, err := s.qags.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.SupportIneligible, nil
	}
	if err != nil {
		return "", fmt.Errorf("get qag: %w", err)
	}

	responded, err := s.responses.ExistsByQagID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("check response: %w", err)
	}
	if responded {
		return domain.SupportIneligible, nil
	}

	supported, err := s.supports.IsSupported(ctx, id, userID)
	if err != nil {
		return "", fmt.Errorf("check support: %w", err)
	}
	if supported {
		return domain.SupportDuplicate, nil
	}

	if !item.Status.AcceptsSupport() {
		return domain.SupportIneligible, nil
	}

	if err := s.supports.Insert(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Lost the race against an identical insert.
			return domain.SupportDuplicate, nil
		}
		if errors.Is(err, domain.ErrNotFound) {
			// Lost the race against a delete.
			return domain.SupportIneligible, nil
		}
		return "", fmt.Errorf("insert support: %w", err)
	}

	s.evictAfterInsert(ctx, item, userID)

	s.log.InfoContext(ctx, "support recorded",
		slog.String("qag_id", id.String()),
		slog.String("user_id", userID.String()),
	)

	return domain.SupportInserted, nil
}

// evictAfterInsert performs the conservative invalidation of a new support:
// the user's supported lists always change, while the popular lists are
// only dropped when their cached snapshot actually contains the item.
func (s *Service) evictAfterInsert(ctx context.Context, item *domain.Qag, userID uuid.UUID) {
	s.evictPopularIfContains(ctx, cache.PopularKey(nil), item.ID)
	s.evictPopularIfContains(ctx, cache.PopularKey(&item.ThematiqueID), item.ID)

	s.cache.Evict(ctx, cache.SupportedKey(userID, nil))
	s.cache.Evict(ctx, cache.SupportedKey(userID, &item.ThematiqueID))
}

func (s *Service) evictPopularIfContains(ctx context.Context, key cache.Key, qagID uuid.UUID) {
	list, state := s.cache.GetList(ctx, key)
	if state != cache.StateValue {
		return
	}
	for _, entry := range list {
		if entry.Qag.ID == qagID {
			s.cache.Evict(ctx, key)
			return
		}
	}
}
