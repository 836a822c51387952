// Package qag implements the QaG lifecycle: citizen submission, the
// moderation queue with soft claims, status decisions, selection for a
// government response, archival and the cached list read path.
package qag

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agora-gouv/agora-backend/internal/cache"
	"github.com/agora-gouv/agora-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type qagRepo interface {
	GetByID(ctx context.Context, qagID uuid.UUID) (*domain.Qag, error)
	GetAll(ctx context.Context) ([]domain.Qag, error)
	OpenForModeration(ctx context.Context, limit int) ([]domain.Qag, error)
	Popular(ctx context.Context, thematiqueID *uuid.UUID) ([]domain.QagWithSupportCount, error)
	Latest(ctx context.Context, thematiqueID *uuid.UUID) ([]domain.QagWithSupportCount, error)
	Supported(ctx context.Context, userID uuid.UUID, thematiqueID *uuid.UUID) ([]domain.QagWithSupportCount, error)
	Insert(ctx context.Context, ins domain.QagInserting) (*domain.Qag, error)
	UpdateStatus(ctx context.Context, qagID uuid.UUID, status domain.QagStatus) (int64, error)
	Delete(ctx context.Context, qagID uuid.UUID) (int64, error)
	ArchiveBefore(ctx context.Context, cutoff time.Time) (int64, error)
	AnonymizeRejectedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type responseRepo interface {
	GetByQagID(ctx context.Context, qagID uuid.UUID) (*domain.Response, error)
	ExistingQagIDs(ctx context.Context, qagIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

type thematiqueRepo interface {
	GetByID(ctx context.Context, thematiqueID uuid.UUID) (*domain.Thematique, error)
	GetAll(ctx context.Context) ([]domain.Thematique, error)
}

type supportCounter interface {
	CountByQag(ctx context.Context, qagID uuid.UUID) (int, error)
	IsSupported(ctx context.Context, qagID, userID uuid.UUID) (bool, error)
}

type listCache interface {
	GetList(ctx context.Context, key cache.Key) ([]domain.QagWithSupportCount, cache.State)
	SetList(ctx context.Context, key cache.Key, list []domain.QagWithSupportCount)
	Evict(ctx context.Context, key cache.Key)
	GetTable(ctx context.Context) (map[uuid.UUID]domain.Qag, bool)
	SetTable(ctx context.Context, items []domain.Qag)
	EvictTable(ctx context.Context)
	EvictAllDerivedFor(ctx context.Context, thematiqueID uuid.UUID)
}

type lockRegistry interface {
	Acquire(ctx context.Context, qagID, moderatorID uuid.UUID) (bool, error)
	Release(ctx context.Context, qagID, moderatorID uuid.UUID) error
	FilterClaimable(ctx context.Context, ids []uuid.UUID, moderatorID uuid.UUID) ([]uuid.UUID, error)
}

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the QaG business logic.
type Service struct {
	qags        qagRepo
	responses   responseRepo
	thematiques thematiqueRepo
	supports    supportCounter
	cache       listCache
	locks       lockRegistry
	tx          txRunner
	log         *slog.Logger
	queueSize   int
}

// NewService creates a new QaG service. queueSize caps the moderation queue
// page handed to one moderator.
func NewService(
	log *slog.Logger,
	qags qagRepo,
	responses responseRepo,
	thematiques thematiqueRepo,
	supports supportCounter,
	listCache listCache,
	locks lockRegistry,
	tx txRunner,
	queueSize int,
) *Service {
	return &Service{
		qags:        qags,
		responses:   responses,
		thematiques: thematiques,
		supports:    supports,
		cache:       listCache,
		locks:       locks,
		tx:          tx,
		log:         log.With("service", "qag"),
		queueSize:   queueSize,
	}
}
