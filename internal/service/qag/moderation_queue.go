package qag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agora-gouv/agora-backend/internal/domain"
)

// GetModerationQueue returns the oldest OPEN items awaiting a decision:
// items that already received a response or are claimed by another moderator
// are skipped. Each returned item is claimed for the requesting moderator,
// so a second moderator loading the queue gets disjoint work. Claims are
// soft: they expire with the lock TTL and never block a decision.
func (s *Service) GetModerationQueue(ctx context.Context, moderatorID uuid.UUID) ([]domain.Qag, error) {
	// Over-fetch so the page survives filtering out responded and
	// foreign-claimed items.
	candidates, err := s.qags.OpenForModeration(ctx, s.queueSize*3)
	if err != nil {
		return nil, fmt.Errorf("list open qags: %w", err)
	}
	if len(candidates) == 0 {
		return []domain.Qag{}, nil
	}

	ids := make([]uuid.UUID, len(candidates))
	for i, item := range candidates {
		ids[i] = item.ID
	}

	responded, err := s.responses.ExistingQagIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("check responses: %w", err)
	}

	eligible := make([]uuid.UUID, 0, len(ids))
	byID := make(map[uuid.UUID]domain.Qag, len(candidates))
	for _, item := range candidates {
		if responded[item.ID] {
			continue
		}
		eligible = append(eligible, item.ID)
		byID[item.ID] = item
	}

	claimable, err := s.locks.FilterClaimable(ctx, eligible, moderatorID)
	if err != nil {
		return nil, fmt.Errorf("filter locked qags: %w", err)
	}

	queue := make([]domain.Qag, 0, s.queueSize)
	for _, id := range claimable {
		if len(queue) == s.queueSize {
			break
		}
		won, err := s.locks.Acquire(ctx, id, moderatorID)
		if err != nil {
			return nil, fmt.Errorf("claim qag: %w", err)
		}
		if !won {
			// Lost a race with another moderator between filter and claim.
			continue
		}
		queue = append(queue, byID[id])
	}

	s.log.InfoContext(ctx, "moderation queue served",
		slog.String("moderator_id", moderatorID.String()),
		slog.Int("items", len(queue)),
	)

	return queue, nil
}
