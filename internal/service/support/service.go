// Package support implements support aggregation: citizens backing a QaG,
// the counters surfaced on lists and details, and the cache invalidation a
// new support triggers.
package support

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agora-gouv/agora-backend/internal/cache"
	"github.com/agora-gouv/agora-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type supportRepo interface {
	Insert(ctx context.Context, qagID, userID uuid.UUID) error
	IsSupported(ctx context.Context, qagID, userID uuid.UUID) (bool, error)
	CountByQag(ctx context.Context, qagID uuid.UUID) (int, error)
	CountsGrouped(ctx context.Context) (map[uuid.UUID]int, error)
}

type qagGetter interface {
	GetByID(ctx context.Context, qagID uuid.UUID) (*domain.Qag, error)
}

type responseChecker interface {
	ExistsByQagID(ctx context.Context, qagID uuid.UUID) (bool, error)
}

type listCache interface {
	GetList(ctx context.Context, key cache.Key) ([]domain.QagWithSupportCount, cache.State)
	Evict(ctx context.Context, key cache.Key)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the support business logic.
type Service struct {
	supports  supportRepo
	qags      qagGetter
	responses responseChecker
	cache     listCache
	log       *slog.Logger
}

// NewService creates a new support service.
func NewService(
	log *slog.Logger,
	supports supportRepo,
	qags qagGetter,
	responses responseChecker,
	listCache listCache,
) *Service {
	return &Service{
		supports:  supports,
		qags:      qags,
		responses: responses,
		cache:     listCache,
		log:       log.With("service", "support"),
	}
}
