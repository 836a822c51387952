package support

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CountFor returns the live support count of one QaG.
func (s *Service) CountFor(ctx context.Context, qagID uuid.UUID) (int, error) {
	count, err := s.supports.CountByQag(ctx, qagID)
	if err != nil {
		return 0, fmt.Errorf("count supports: %w", err)
	}
	return count, nil
}

// IsSupportedBy reports whether the user already supports the QaG.
func (s *Service) IsSupportedBy(ctx context.Context, qagID, userID uuid.UUID) (bool, error) {
	supported, err := s.supports.IsSupported(ctx, qagID, userID)
	if err != nil {
		return false, fmt.Errorf("check support: %w", err)
	}
	return supported, nil
}

// CountsGrouped returns the support count of every QaG having at least one.
func (s *Service) CountsGrouped(ctx context.Context) (map[uuid.UUID]int, error) {
	counts, err := s.supports.CountsGrouped(ctx)
	if err != nil {
		return nil, fmt.Errorf("group support counts: %w", err)
	}
	return counts, nil
}
