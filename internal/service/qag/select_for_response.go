package qag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agora-gouv/agora-backend/internal/domain"
)

// SelectForResponse forces an item into SELECTED_FOR_RESPONSE regardless of
// its current status. Selecting an already selected item is a no-op, so the
// operation can be retried safely.
func (s *Service) SelectForResponse(ctx context.Context, qagID, moderatorID uuid.UUID) (*domain.Qag, error) {
	current, err := s.qags.GetByID(ctx, qagID)
	if err != nil {
		return nil, fmt.Errorf("get qag: %w", err)
	}

	if current.Status == domain.QagStatusSelectedForResponse {
		return current, nil
	}

	affected, err := s.qags.UpdateStatus(ctx, qagID, domain.QagStatusSelectedForResponse)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	if affected == 0 {
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

	s.log.InfoContext(ctx, "qag selected for response",
		slog.String("qag_id", qagID.String()),
		slog.String("previous_status", current.Status.String()),
	)

	updated := *current
	updated.Status = domain.QagStatusSelectedForResponse
	return &updated, nil
}
