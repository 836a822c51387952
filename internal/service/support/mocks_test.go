package support

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/agora-gouv/agora-backend/internal/cache"
	"github.com/agora-gouv/agora-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// supportRepo
// ---------------------------------------------------------------------------

var _ supportRepo = &supportRepoMock{}

type supportRepoMock struct {
	InsertFunc        func(ctx context.Context, qagID, userID uuid.UUID) error
	IsSupportedFunc   func(ctx context.Context, qagID, userID uuid.UUID) (bool, error)
	CountByQagFunc    func(ctx context.Context, qagID uuid.UUID) (int, error)
	CountsGroupedFunc func(ctx context.Context) (map[uuid.UUID]int, error)

	calls struct {
		Insert []struct {
			Ctx    context.Context
			QagID  uuid.UUID
			UserID uuid.UUID
		}
		IsSupported []struct {
			Ctx    context.Context
			QagID  uuid.UUID
			UserID uuid.UUID
		}
		CountByQag []struct {
			Ctx   context.Context
			QagID uuid.UUID
		}
		CountsGrouped []struct {
			Ctx context.Context
		}
	}
	lockInsert        sync.RWMutex
	lockIsSupported   sync.RWMutex
	lockCountByQag    sync.RWMutex
	lockCountsGrouped sync.RWMutex
}

func (mock *supportRepoMock) Insert(ctx context.Context, qagID, userID uuid.UUID) error {
	if mock.InsertFunc == nil {
		panic("supportRepoMock.InsertFunc: method is nil but supportRepo.Insert was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		QagID  uuid.UUID
		UserID uuid.UUID
	}{Ctx: ctx, QagID: qagID, UserID: userID}
	mock.lockInsert.Lock()
	mock.calls.Insert = append(mock.calls.Insert, callInfo)
	mock.lockInsert.Unlock()
	return mock.InsertFunc(ctx, qagID, userID)
}

func (mock *supportRepoMock) InsertCalls() []struct {
	Ctx    context.Context
	QagID  uuid.UUID
	UserID uuid.UUID
} {
	mock.lockInsert.RLock()
	calls := mock.calls.Insert
	mock.lockInsert.RUnlock()
	return calls
}

func (mock *supportRepoMock) IsSupported(ctx context.Context, qagID, userID uuid.UUID) (bool, error) {
	if mock.IsSupportedFunc == nil {
		panic("supportRepoMock.IsSupportedFunc: method is nil but supportRepo.IsSupported was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		QagID  uuid.UUID
		UserID uuid.UUID
	}{Ctx: ctx, QagID: qagID, UserID: userID}
	mock.lockIsSupported.Lock()
	mock.calls.IsSupported = append(mock.calls.IsSupported, callInfo)
	mock.lockIsSupported.Unlock()
	return mock.IsSupportedFunc(ctx, qagID, userID)
}

func (mock *supportRepoMock) IsSupportedCalls() []struct {
	Ctx    context.Context
	QagID  uuid.UUID
	UserID uuid.UUID
} {
	mock.lockIsSupported.RLock()
	calls := mock.calls.IsSupported
	mock.lockIsSupported.RUnlock()
	return calls
}

func (mock *supportRepoMock) CountByQag(ctx context.Context, qagID uuid.UUID) (int, error) {
	if mock.CountByQagFunc == nil {
		panic("supportRepoMock.CountByQagFunc: method is nil but supportRepo.CountByQag was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		QagID uuid.UUID
	}{Ctx: ctx, QagID: qagID}
	mock.lockCountByQag.Lock()
	mock.calls.CountByQag = append(mock.calls.CountByQag, callInfo)
	mock.lockCountByQag.Unlock()
	return mock.CountByQagFunc(ctx, qagID)
}

func (mock *supportRepoMock) CountByQagCalls() []struct {
	Ctx   context.Context
	QagID uuid.UUID
} {
	mock.lockCountByQag.RLock()
	calls := mock.calls.CountByQag
	mock.lockCountByQag.RUnlock()
	return calls
}

func (mock *supportRepoMock) CountsGrouped(ctx context.Context) (map[uuid.UUID]int, error) {
	if mock.CountsGroupedFunc == nil {
		panic("supportRepoMock.CountsGroupedFunc: method is nil but supportRepo.CountsGrouped was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockCountsGrouped.Lock()
	mock.calls.CountsGrouped = append(mock.calls.CountsGrouped, callInfo)
	mock.lockCountsGrouped.Unlock()
	return mock.CountsGroupedFunc(ctx)
}

func (mock *supportRepoMock) CountsGroupedCalls() []struct {
	Ctx context.Context
} {
	mock.lockCountsGrouped.RLock()
	calls := mock.calls.CountsGrouped
	mock.lockCountsGrouped.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// qagGetter
// ---------------------------------------------------------------------------

var _ qagGetter = &qagGetterMock{}

type qagGetterMock struct {
	GetByIDFunc func(ctx context.Context, qagID uuid.UUID) (*domain.Qag, error)

	calls struct {
		GetByID []struct {
			Ctx   context.Context
			QagID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *qagGetterMock) GetByID(ctx context.Context, qagID uuid.UUID) (*domain.Qag, error) {
	if mock.GetByIDFunc == nil {
		panic("qagGetterMock.GetByIDFunc: method is nil but qagGetter.GetByID was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		QagID uuid.UUID
	}{Ctx: ctx, QagID: qagID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, qagID)
}

func (mock *qagGetterMock) GetByIDCalls() []struct {
	Ctx   context.Context
	QagID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// responseChecker
// ---------------------------------------------------------------------------

var _ responseChecker = &responseCheckerMock{}

type responseCheckerMock struct {
	ExistsByQagIDFunc func(ctx context.Context, qagID uuid.UUID) (bool, error)

	calls struct {
		ExistsByQagID []struct {
			Ctx   context.Context
			QagID uuid.UUID
		}
	}
	lockExistsByQagID sync.RWMutex
}

func (mock *responseCheckerMock) ExistsByQagID(ctx context.Context, qagID uuid.UUID) (bool, error) {
	if mock.ExistsByQagIDFunc == nil {
		panic("responseCheckerMock.ExistsByQagIDFunc: method is nil but responseChecker.ExistsByQagID was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		QagID uuid.UUID
	}{Ctx: ctx, QagID: qagID}
	mock.lockExistsByQagID.Lock()
	mock.calls.ExistsByQagID = append(mock.calls.ExistsByQagID, callInfo)
	mock.lockExistsByQagID.Unlock()
	return mock.ExistsByQagIDFunc(ctx, qagID)
}

func (mock *responseCheckerMock) ExistsByQagIDCalls() []struct {
	Ctx   context.Context
	QagID uuid.UUID
} {
	mock.lockExistsByQagID.RLock()
	calls := mock.calls.ExistsByQagID
	mock.lockExistsByQagID.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// listCache
// ---------------------------------------------------------------------------

var _ listCache = &listCacheMock{}

type listCacheMock struct {
	GetListFunc func(ctx context.Context, key cache.Key) ([]domain.QagWithSupportCount, cache.State)
	EvictFunc   func(ctx context.Context, key cache.Key)

	calls struct {
		GetList []struct {
			Ctx context.Context
			Key cache.Key
		}
		Evict []struct {
			Ctx context.Context
			Key cache.Key
		}
	}
	lockGetList sync.RWMutex
	lockEvict   sync.RWMutex
}

func (mock *listCacheMock) GetList(ctx context.Context, key cache.Key) ([]domain.QagWithSupportCount, cache.State) {
	if mock.GetListFunc == nil {
		panic("listCacheMock.GetListFunc: method is nil but listCache.GetList was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key cache.Key
	}{Ctx: ctx, Key: key}
	mock.lockGetList.Lock()
	mock.calls.GetList = append(mock.calls.GetList, callInfo)
	mock.lockGetList.Unlock()
	return mock.GetListFunc(ctx, key)
}

func (mock *listCacheMock) GetListCalls() []struct {
	Ctx context.Context
	Key cache.Key
} {
	mock.lockGetList.RLock()
	calls := mock.calls.GetList
	mock.lockGetList.RUnlock()
	return calls
}

func (mock *listCacheMock) Evict(ctx context.Context, key cache.Key) {
	if mock.EvictFunc == nil {
		panic("listCacheMock.EvictFunc: method is nil but listCache.Evict was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key cache.Key
	}{Ctx: ctx, Key: key}
	mock.lockEvict.Lock()
	mock.calls.Evict = append(mock.calls.Evict, callInfo)
	mock.lockEvict.Unlock()
	mock.EvictFunc(ctx, key)
}

func (mock *listCacheMock) EvictCalls() []struct {
	Ctx context.Context
	Key cache.Key
} {
	mock.lockEvict.RLock()
	calls := mock.calls.Evict
	mock.lockEvict.RUnlock()
	return calls
}
