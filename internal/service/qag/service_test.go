package qag

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/agora-gouv/agora-backend/internal/cache"
	"github.com/agora-gouv/agora-backend/internal/domain"
)

//go:generate moq -out qag_repo_mock_test.go -pkg qag . qagRepo
//go:generate moq -out deps_mock_test.go -pkg qag . responseRepo thematiqueRepo supportCounter lockRegistry listCache txRunner

type mocks struct {
	qags        *qagRepoMock
	responses   *responseRepoMock
	thematiques *thematiqueRepoMock
	supports    *supportCounterMock
	cache       *listCacheMock
	locks       *lockRegistryMock
	tx          *txRunnerMock
}

// newTestService wires a Service over mocks with passive defaults: cold
// cache, no locks held, every claim won. Tests override what they exercise.
func newTestService(t *testing.T, queueSize int) (*Service, *mocks) {
	t.Helper()

	m := &mocks{
		qags:        &qagRepoMock{},
		responses:   &responseRepoMock{},
		thematiques: &thematiqueRepoMock{},
		supports:    &supportCounterMock{},
		cache:       &listCacheMock{},
		locks:       &lockRegistryMock{},
		tx:          &txRunnerMock{},
	}

	m.cache.GetListFunc = func(context.Context, cache.Key) ([]domain.QagWithSupportCount, cache.State) {
		return nil, cache.StateUninitialized
	}
	m.cache.SetListFunc = func(context.Context, cache.Key, []domain.QagWithSupportCount) {}
	m.cache.EvictFunc = func(context.Context, cache.Key) {}
	m.cache.GetTableFunc = func(context.Context) (map[uuid.UUID]domain.Qag, bool) {
		return nil, false
	}
	m.cache.SetTableFunc = func(context.Context, []domain.Qag) {}
	m.cache.EvictTableFunc = func(context.Context) {}
	m.cache.EvictAllDerivedForFunc = func(context.Context, uuid.UUID) {}

	m.locks.AcquireFunc = func(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
		return true, nil
	}
	m.locks.ReleaseFunc = func(context.Context, uuid.UUID, uuid.UUID) error {
		return nil
	}
	m.locks.FilterClaimableFunc = func(_ context.Context, ids []uuid.UUID, _ uuid.UUID) ([]uuid.UUID, error) {
		return ids, nil
	}

	m.tx.RunInTxFunc = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(log, m.qags, m.responses, m.thematiques, m.supports, m.cache, m.locks, m.tx, queueSize)
	return svc, m
}

func openQag(them uuid.UUID) domain.Qag {
	author := uuid.New()
	username := "citoyen"
	return domain.Qag{
		ID:           uuid.New(),
		ThematiqueID: them,
		Title:        "Quand le plan vélo sera-t-il financé ?",
		Description:  "Les aménagements promis n'ont pas commencé.",
		AuthorID:     &author,
		Username:     &username,
		PostDate:     time.Date(2025, 5, 12, 9, 0, 0, 0, time.UTC),
		Status:       domain.QagStatusOpen,
	}
}
