package qag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agora-gouv/agora-backend/internal/domain"
)

// DeleteQag removes an item and, by cascade, its supports and response.
// The pre-delete snapshot is returned. A zero-row delete after a successful
// read means another actor removed the item first; the caller sees
// ErrNotFound either way.
func (s *Service) DeleteQag(ctx context.Context, qagID uuid.UUID) (*domain.Qag, error) {
	snapshot, err := s.qags.GetByID(ctx, qagID)
	if err != nil {
		return nil, fmt.Errorf("get qag: %w", err)
	}

	affected, err := s.qags.Delete(ctx, qagID)
	if err != nil {
		return nil, fmt.Errorf("delete qag: %w", err)
	}
	if affected == 0 {
		return nil, domain.ErrNotFound
	}

	s.cache.EvictTable(ctx)
	s.cache.EvictAllDerivedFor(ctx, snapshot.ThematiqueID)

	s.log.InfoContext(ctx, "qag deleted",
		slog.String("qag_id", qagID.String()),
		slog.String("status", snapshot.Status.String()),
	)

	return snapshot, nil
}
