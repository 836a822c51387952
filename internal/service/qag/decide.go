package qag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agora-gouv/agora-backend/internal/domain"
)

// Decide applies a moderation decision: OPEN → MODERATED_ACCEPTED or
// MODERATED_REJECTED, or archival of any non-terminal item. The transition
// is validated against the current status; a concurrent delete surfaces as
// ErrNotFound. On success the moderator's claim is released and the caches
// invalidated.
func (s *Service) Decide(ctx context.Context, qagID, moderatorID uuid.UUID, newStatus domain.QagStatus) (*domain.Qag, error) {
	if !newStatus.IsValid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}

	current, err := s.qags.GetByID(ctx, qagID)
	if err != nil {
		return nil, fmt.Errorf("get qag: %w", err)
	}

	if !current.Status.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("%s to %s: %w", current.Status, newStatus, domain.ErrInvalidTransition)
	}

	affected, err := s.qags.UpdateStatus(ctx, qagID, newStatus)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	if affected == 0 {
		// Deleted between the read and the update.
		return nil, domain.ErrNotFound
	}

	if err := s.locks.Release(ctx, qagID, moderatorID); err != nil {
		s.log.WarnContext(ctx, "release claim failed, lock will expire on its own",
			slog.String("qag_id", qagID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.cache.EvictTable(ctx)
	s.cache.EvictAllDerivedFor(ctx, current.ThematiqueID)

	s.log.InfoContext(ctx, "qag status decided",
		slog.String("qag_id", qagID.String()),
		slog.String("moderator_id", moderatorID.String()),
		slog.String("from", current.Status.String()),
		slog.String("to", newStatus.String()),
	)

	updated := *current
	updated.Status = newStatus
	return &updated, nil
}
