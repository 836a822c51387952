package qag

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agora-gouv/agora-backend/internal/domain"
)

// ArchiveOld ends the life of items posted before cutoff. Rejected items
// are anonymized as they archive: author id and username are cleared and
// the description blanked, leaving only the title on record. All other
// non-terminal items archive with their content intact. Both bulk UPDATEs
// run in one transaction so a rejected item can never archive without
// losing its author fields.
func (s *Service) ArchiveOld(ctx context.Context, cutoff time.Time) (*domain.ArchiveResult, error) {
	var anonymized, archived int64
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		if anonymized, err = s.qags.AnonymizeRejectedBefore(ctx, cutoff); err != nil {
			return fmt.Errorf("anonymize rejected qags: %w", err)
		}
		if archived, err = s.qags.ArchiveBefore(ctx, cutoff); err != nil {
			return fmt.Errorf("archive qags: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if anonymized > 0 || archived > 0 {
		s.evictEverything(ctx)
	}

	s.log.InfoContext(ctx, "archival run completed",
		slog.Time("cutoff", cutoff),
		slog.Int64("anonymized", anonymized),
		slog.Int64("archived", archived),
	)

	return &domain.ArchiveResult{
		Anonymized: int(anonymized),
		Archived:   int(archived),
	}, nil
}

// evictEverything drops the whole-table snapshot and the derived lists of
// every thematique. User-scoped supported lists cannot be enumerated; their
// TTL bounds the staleness window.
func (s *Service) evictEverything(ctx context.Context) {
	s.cache.EvictTable(ctx)

	thematiques, err := s.thematiques.GetAll(ctx)
	if err != nil {
		s.log.WarnContext(ctx, "list thematiques for eviction failed, derived lists expire by TTL",
			slog.String("error", err.Error()),
		)
		return
	}
	for _, them := range thematiques {
		s.cache.EvictAllDerivedFor(ctx, them.ID)
	}
}
