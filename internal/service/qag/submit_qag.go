package qag

import (
	"context"
	"fmt"
	"strings"

	"log/slog"

	"github.com/agora-gouv/agora-backend/internal/domain"
)

// SubmitQag records a citizen submission. The stored item starts in OPEN
// and enters the moderation queue.
func (s *Service) SubmitQag(ctx context.Context, input SubmitQagInput) (*domain.Qag, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.thematiques.GetByID(ctx, input.ThematiqueID); err != nil {
		return nil, fmt.Errorf("get thematique: %w", err)
	}

	created, err := s.qags.Insert(ctx, domain.QagInserting{
		ThematiqueID: input.ThematiqueID,
		Title:        strings.TrimSpace(input.Title),
		Description:  strings.TrimSpace(input.Description),
		AuthorID:     input.AuthorID,
		Username:     strings.TrimSpace(input.Username),
	})
	if err != nil {
		return nil, fmt.Errorf("insert qag: %w", err)
	}

	s.cache.EvictTable(ctx)
	s.cache.EvictAllDerivedFor(ctx, created.ThematiqueID)

	s.log.InfoContext(ctx, "qag submitted",
		slog.String("qag_id", created.ID.String()),
		slog.String("thematique_id", created.ThematiqueID.String()),
	)

	return created, nil
}
