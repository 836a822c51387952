package qag

import (
	"context"
	"fmt"

	"github.com/agora-gouv/agora-backend/internal/domain"
)

// Thematiques returns all thematiques, for the submission form and the
// list filters.
func (s *Service) Thematiques(ctx context.Context) ([]domain.Thematique, error) {
	items, err := s.thematiques.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get thematiques: %w", err)
	}
	return items, nil
}
