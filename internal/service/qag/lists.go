package qag

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/agora-gouv/agora-backend/internal/cache"
	"github.com/agora-gouv/agora-backend/internal/domain"
)

// PopularQags returns the most supported visible QaGs, optionally within a
// thematique, through the derived-list cache.
func (s *Service) PopularQags(ctx context.Context, thematiqueID *uuid.UUID) ([]domain.QagWithSupportCount, error) {
	return s.listThrough(ctx, cache.PopularKey(thematiqueID), func(ctx context.Context) ([]domain.QagWithSupportCount, error) {
		return s.qags.Popular(ctx, thematiqueID)
	})
}

// LatestQags returns the most recent visible QaGs, optionally within a
// thematique, through the derived-list cache.
func (s *Service) LatestQags(ctx context.Context, thematiqueID *uuid.UUID) ([]domain.QagWithSupportCount, error) {
	return s.listThrough(ctx, cache.LatestKey(thematiqueID), func(ctx context.Context) ([]domain.QagWithSupportCount, error) {
		return s.qags.Latest(ctx, thematiqueID)
	})
}

// SupportedQags returns the visible QaGs the user supports, optionally
// within a thematique, through the derived-list cache.
func (s *Service) SupportedQags(ctx context.Context, userID uuid.UUID, thematiqueID *uuid.UUID) ([]domain.QagWithSupportCount, error) {
	return s.listThrough(ctx, cache.SupportedKey(userID, thematiqueID), func(ctx context.Context) ([]domain.QagWithSupportCount, error) {
		return s.qags.Supported(ctx, userID, thematiqueID)
	})
}

// listThrough is the shared read-through: a cached value or cached empty
// result is served as-is; only an uninitialized entry recomputes from the
// durable store and populates the cache.
func (s *Service) listThrough(
	ctx context.Context,
	key cache.Key,
	compute func(ctx context.Context) ([]domain.QagWithSupportCount, error),
) ([]domain.QagWithSupportCount, error) {
	if list, state := s.cache.GetList(ctx, key); state != cache.StateUninitialized {
		return list, nil
	}

	list, err := compute(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s list: %w", key.Kind, err)
	}

	s.cache.SetList(ctx, key, list)
	return list, nil
}
