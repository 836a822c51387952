package qag

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/agora-gouv/agora-backend/internal/domain"
)

// Details is the full view of one QaG: the item itself, its live support
// count, the official response if one was published, and whether the
// requesting user supports it.
type Details struct {
	Qag          domain.Qag
	SupportCount int
	Response     *domain.Response
	// IsSupportedByUser is false when the request is anonymous.
	IsSupportedByUser bool
}

// GetQag returns one QaG by id. The item is read through the whole-table
// cache; support count and response always come from the durable store.
// userID is nil for anonymous requests.
func (s *Service) GetQag(ctx context.Context, qagID uuid.UUID, userID *uuid.UUID) (*Details, error) {
	item, err := s.getCached(ctx, qagID)
	if err != nil {
		return nil, err
	}

	count, err := s.supports.CountByQag(ctx, qagID)
	if err != nil {
		return nil, fmt.Errorf("count supports: %w", err)
	}

	response, err := s.responses.GetByQagID(ctx, qagID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get response: %w", err)
	}

	details := &Details{
		Qag:          *item,
		SupportCount: count,
		Response:     response,
	}

	if userID != nil {
		supported, err := s.supports.IsSupported(ctx, qagID, *userID)
		if err != nil {
			return nil, fmt.Errorf("check support: %w", err)
		}
		details.IsSupportedByUser = supported
	}

	return details, nil
}

// getCached resolves one item through the whole-table snapshot, populating
// the snapshot from the durable store on a cold cache.
func (s *Service) getCached(ctx context.Context, qagID uuid.UUID) (*domain.Qag, error) {
	if table, ok := s.cache.GetTable(ctx); ok {
		item, found := table[qagID]
		if !found {
			return nil, domain.ErrNotFound
		}
		return &item, nil
	}

	all, err := s.qags.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all qags: %w", err)
	}
	s.cache.SetTable(ctx, all)

	for i := range all {
		if all[i].ID == qagID {
			return &all[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
