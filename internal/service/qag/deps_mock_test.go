package qag

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/agora-gouv/agora-backend/internal/cache"
	"github.com/agora-gouv/agora-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// responseRepo
// ---------------------------------------------------------------------------

var _ responseRepo = &responseRepoMock{}

type responseRepoMock struct {
	GetByQagIDFunc     func(ctx context.Context, qagID uuid.UUID) (*domain.Response, error)
	ExistingQagIDsFunc func(ctx context.Context, qagIDs []uuid.UUID) (map[uuid.UUID]bool, error)

	calls struct {
		GetByQagID []struct {
			Ctx   context.Context
			QagID uuid.UUID
		}
		ExistingQagIDs []struct {
			Ctx    context.Context
			QagIDs []uuid.UUID
		}
	}
	lockGetByQagID     sync.RWMutex
	lockExistingQagIDs sync.RWMutex
}

func (mock *responseRepoMock) GetByQagID(ctx context.Context, qagID uuid.UUID) (*domain.Response, error) {
	if mock.GetByQagIDFunc == nil {
		panic("responseRepoMock.GetByQagIDFunc: method is nil but responseRepo.GetByQagID was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		QagID uuid.UUID
	}{Ctx: ctx, QagID: qagID}
	mock.lockGetByQagID.Lock()
	mock.calls.GetByQagID = append(mock.calls.GetByQagID, callInfo)
	mock.lockGetByQagID.Unlock()
	return mock.GetByQagIDFunc(ctx, qagID)
}

func (mock *responseRepoMock) GetByQagIDCalls() []struct {
	Ctx   context.Context
	QagID uuid.UUID
} {
	mock.lockGetByQagID.RLock()
	calls := mock.calls.GetByQagID
	mock.lockGetByQagID.RUnlock()
	return calls
}

func (mock *responseRepoMock) ExistingQagIDs(ctx context.Context, qagIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	if mock.ExistingQagIDsFunc == nil {
		panic("responseRepoMock.ExistingQagIDsFunc: method is nil but responseRepo.ExistingQagIDs was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		QagIDs []uuid.UUID
	}{Ctx: ctx, QagIDs: qagIDs}
	mock.lockExistingQagIDs.Lock()
	mock.calls.ExistingQagIDs = append(mock.calls.ExistingQagIDs, callInfo)
	mock.lockExistingQagIDs.Unlock()
	return mock.ExistingQagIDsFunc(ctx, qagIDs)
}

func (mock *responseRepoMock) ExistingQagIDsCalls() []struct {
	Ctx    context.Context
	QagIDs []uuid.UUID
} {
	mock.lockExistingQagIDs.RLock()
	calls := mock.calls.ExistingQagIDs
	mock.lockExistingQagIDs.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// thematiqueRepo
// ---------------------------------------------------------------------------

var _ thematiqueRepo = &thematiqueRepoMock{}

type thematiqueRepoMock struct {
	GetByIDFunc func(ctx context.Context, thematiqueID uuid.UUID) (*domain.Thematique, error)
	GetAllFunc  func(ctx context.Context) ([]domain.Thematique, error)

	calls struct {
		GetByID []struct {
			Ctx          context.Context
			ThematiqueID uuid.UUID
		}
		GetAll []struct {
			Ctx context.Context
		}
	}
	lockGetByID sync.RWMutex
	lockGetAll  sync.RWMutex
}

func (mock *thematiqueRepoMock) GetByID(ctx context.Context, thematiqueID uuid.UUID) (*domain.Thematique, error) {
	if mock.GetByIDFunc == nil {
		panic("thematiqueRepoMock.GetByIDFunc: method is nil but thematiqueRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		ThematiqueID uuid.UUID
	}{Ctx: ctx, ThematiqueID: thematiqueID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, thematiqueID)
}

func (mock *thematiqueRepoMock) GetByIDCalls() []struct {
	Ctx          context.Context
	ThematiqueID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *thematiqueRepoMock) GetAll(ctx context.Context) ([]domain.Thematique, error) {
	if mock.GetAllFunc == nil {
		panic("thematiqueRepoMock.GetAllFunc: method is nil but thematiqueRepo.GetAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetAll.Lock()
	mock.calls.GetAll = append(mock.calls.GetAll, callInfo)
	mock.lockGetAll.Unlock()
	return mock.GetAllFunc(ctx)
}

func (mock *thematiqueRepoMock) GetAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetAll.RLock()
	calls := mock.calls.GetAll
	mock.lockGetAll.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// supportCounter
// ---------------------------------------------------------------------------

var _ supportCounter = &supportCounterMock{}

type supportCounterMock struct {
	CountByQagFunc  func(ctx context.Context, qagID uuid.UUID) (int, error)
	IsSupportedFunc func(ctx context.Context, qagID, userID uuid.UUID) (bool, error)

	calls struct {
		CountByQag []struct {
			Ctx   context.Context
			QagID uuid.UUID
		}
		IsSupported []struct {
			Ctx    context.Context
			QagID  uuid.UUID
			UserID uuid.UUID
		}
	}
	lockCountByQag  sync.RWMutex
	lockIsSupported sync.RWMutex
}

func (mock *supportCounterMock) CountByQag(ctx context.Context, qagID uuid.UUID) (int, error) {
	if mock.CountByQagFunc == nil {
		panic("supportCounterMock.CountByQagFunc: method is nil but supportCounter.CountByQag was just called")
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

func (mock *supportCounterMock) CountByQagCalls() []struct {
	Ctx   context.Context
	QagID uuid.UUID
} {
	mock.lockCountByQag.RLock()
	calls := mock.calls.CountByQag
	mock.lockCountByQag.RUnlock()
	return calls
}

func (mock *supportCounterMock) IsSupported(ctx context.Context, qagID, userID uuid.UUID) (bool, error) {
	if mock.IsSupportedFunc == nil {
		panic("supportCounterMock.IsSupportedFunc: method is nil but supportCounter.IsSupported was just called")
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

func (mock *supportCounterMock) IsSupportedCalls() []struct {
	Ctx    context.Context
	QagID  uuid.UUID
	UserID uuid.UUID
} {
	mock.lockIsSupported.RLock()
	calls := mock.calls.IsSupported
	mock.lockIsSupported.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// lockRegistry
// ---------------------------------------------------------------------------

var _ lockRegistry = &lockRegistryMock{}

type lockRegistryMock struct {
	AcquireFunc         func(ctx context.Context, qagID, moderatorID uuid.UUID) (bool, error)
	ReleaseFunc         func(ctx context.Context, qagID, moderatorID uuid.UUID) error
	FilterClaimableFunc func(ctx context.Context, ids []uuid.UUID, moderatorID uuid.UUID) ([]uuid.UUID, error)

	calls struct {
		Acquire []struct {
			Ctx         context.Context
			QagID       uuid.UUID
			ModeratorID uuid.UUID
		}
		Release []struct {
			Ctx         context.Context
			QagID       uuid.UUID
			ModeratorID uuid.UUID
		}
		FilterClaimable []struct {
			Ctx         context.Context
			IDs         []uuid.UUID
			ModeratorID uuid.UUID
		}
	}
	lockAcquire         sync.RWMutex
	lockRelease         sync.RWMutex
	lockFilterClaimable sync.RWMutex
}

func (mock *lockRegistryMock) Acquire(ctx context.Context, qagID, moderatorID uuid.UUID) (bool, error) {
	if mock.AcquireFunc == nil {
		panic("lockRegistryMock.AcquireFunc: method is nil but lockRegistry.Acquire was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		QagID       uuid.UUID
		ModeratorID uuid.UUID
	}{Ctx: ctx, QagID: qagID, ModeratorID: moderatorID}
	mock.lockAcquire.Lock()
	mock.calls.Acquire = append(mock.calls.Acquire, callInfo)
	mock.lockAcquire.Unlock()
	return mock.AcquireFunc(ctx, qagID, moderatorID)
}

func (mock *lockRegistryMock) AcquireCalls() []struct {
	Ctx         context.Context
	QagID       uuid.UUID
	ModeratorID uuid.UUID
} {
	mock.lockAcquire.RLock()
	calls := mock.calls.Acquire
	mock.lockAcquire.RUnlock()
	return calls
}

func (mock *lockRegistryMock) Release(ctx context.Context, qagID, moderatorID uuid.UUID) error {
	if mock.ReleaseFunc == nil {
		panic("lockRegistryMock.ReleaseFunc: method is nil but lockRegistry.Release was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		QagID       uuid.UUID
		ModeratorID uuid.UUID
	}{Ctx: ctx, QagID: qagID, ModeratorID: moderatorID}
	mock.lockRelease.Lock()
	mock.calls.Release = append(mock.calls.Release, callInfo)
	mock.lockRelease.Unlock()
	return mock.ReleaseFunc(ctx, qagID, moderatorID)
}

func (mock *lockRegistryMock) ReleaseCalls() []struct {
	Ctx         context.Context
	QagID       uuid.UUID
	ModeratorID uuid.UUID
} {
	mock.lockRelease.RLock()
	calls := mock.calls.Release
	mock.lockRelease.RUnlock()
	return calls
}

func (mock *lockRegistryMock) FilterClaimable(ctx context.Context, ids []uuid.UUID, moderatorID uuid.UUID) ([]uuid.UUID, error) {
	if mock.FilterClaimableFunc == nil {
		panic("lockRegistryMock.FilterClaimableFunc: method is nil but lockRegistry.FilterClaimable was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		IDs         []uuid.UUID
		ModeratorID uuid.UUID
	}{Ctx: ctx, IDs: ids, ModeratorID: moderatorID}
	mock.lockFilterClaimable.Lock()
	mock.calls.FilterClaimable = append(mock.calls.FilterClaimable, callInfo)
	mock.lockFilterClaimable.Unlock()
	return mock.FilterClaimableFunc(ctx, ids, moderatorID)
}

func (mock *lockRegistryMock) FilterClaimableCalls() []struct {
	Ctx         context.Context
	IDs         []uuid.UUID
	ModeratorID uuid.UUID
} {
	mock.lockFilterClaimable.RLock()
	calls := mock.calls.FilterClaimable
	mock.lockFilterClaimable.RUnlock()
	return calls
}

// ---------------------------------------------------------------------------
// listCache
// ---------------------------------------------------------------------------

var _ listCache = &listCacheMock{}

type listCacheMock struct {
	GetListFunc            func(ctx context.Context, key cache.Key) ([]domain.QagWithSupportCount, cache.State)
	SetListFunc            func(ctx context.Context, key cache.Key, list []domain.QagWithSupportCount)
	EvictFunc              func(ctx context.Context, key cache.Key)
	GetTableFunc           func(ctx context.Context) (map[uuid.UUID]domain.Qag, bool)
	SetTableFunc           func(ctx context.Context, items []domain.Qag)
	EvictTableFunc         func(ctx context.Context)
	EvictAllDerivedForFunc func(ctx context.Context, thematiqueID uuid.UUID)

	calls struct {
		GetList []struct {
			Ctx context.Context
			Key cache.Key
		}
		SetList []struct {
			Ctx  context.Context
			Key  cache.Key
			List []domain.QagWithSupportCount
		}
		Evict []struct {
			Ctx context.Context
			Key cache.Key
		}
		GetTable []struct {
			Ctx context.Context
		}
		SetTable []struct {
			Ctx   context.Context
			Items []domain.Qag
		}
		EvictTable []struct {
			Ctx context.Context
		}
		EvictAllDerivedFor []struct {
			Ctx          context.Context
			ThematiqueID uuid.UUID
		}
	}
	lockGetList            sync.RWMutex
	lockSetList            sync.RWMutex
	lockEvict              sync.RWMutex
	lockGetTable           sync.RWMutex
	lockSetTable           sync.RWMutex
	lockEvictTable         sync.RWMutex
	lockEvictAllDerivedFor sync.RWMutex
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

func (mock *listCacheMock) SetList(ctx context.Context, key cache.Key, list []domain.QagWithSupportCount) {
	if mock.SetListFunc == nil {
		panic("listCacheMock.SetListFunc: method is nil but listCache.SetList was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Key  cache.Key
		List []domain.QagWithSupportCount
	}{Ctx: ctx, Key: key, List: list}
	mock.lockSetList.Lock()
	mock.calls.SetList = append(mock.calls.SetList, callInfo)
	mock.lockSetList.Unlock()
	mock.SetListFunc(ctx, key, list)
}

func (mock *listCacheMock) SetListCalls() []struct {
	Ctx  context.Context
	Key  cache.Key
	List []domain.QagWithSupportCount
} {
	mock.lockSetList.RLock()
	calls := mock.calls.SetList
	mock.lockSetList.RUnlock()
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

func (mock *listCacheMock) GetTable(ctx context.Context) (map[uuid.UUID]domain.Qag, bool) {
	if mock.GetTableFunc == nil {
		panic("listCacheMock.GetTableFunc: method is nil but listCache.GetTable was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetTable.Lock()
	mock.calls.GetTable = append(mock.calls.GetTable, callInfo)
	mock.lockGetTable.Unlock()
	return mock.GetTableFunc(ctx)
}

func (mock *listCacheMock) GetTableCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetTable.RLock()
	calls := mock.calls.GetTable
	mock.lockGetTable.RUnlock()
	return calls
}

func (mock *listCacheMock) SetTable(ctx context.Context, items []domain.Qag) {
	if mock.SetTableFunc == nil {
		panic("listCacheMock.SetTableFunc: method is nil but listCache.SetTable was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Items []domain.Qag
	}{Ctx: ctx, Items: items}
	mock.lockSetTable.Lock()
	mock.calls.SetTable = append(mock.calls.SetTable, callInfo)
	mock.lockSetTable.Unlock()
	mock.SetTableFunc(ctx, items)
}

func (mock *listCacheMock) SetTableCalls() []struct {
	Ctx   context.Context
	Items []domain.Qag
} {
	mock.lockSetTable.RLock()
	calls := mock.calls.SetTable
	mock.lockSetTable.RUnlock()
	return calls
}

func (mock *listCacheMock) EvictTable(ctx context.Context) {
	if mock.EvictTableFunc == nil {
		panic("listCacheMock.EvictTableFunc: method is nil but listCache.EvictTable was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockEvictTable.Lock()
	mock.calls.EvictTable = append(mock.calls.EvictTable, callInfo)
	mock.lockEvictTable.Unlock()
	mock.EvictTableFunc(ctx)
}

func (mock *listCacheMock) EvictTableCalls() []struct {
	Ctx context.Context
} {
	mock.lockEvictTable.RLock()
	calls := mock.calls.EvictTable
	mock.lockEvictTable.RUnlock()
	return calls
}

func (mock *listCacheMock) EvictAllDerivedFor(ctx context.Context, thematiqueID uuid.UUID) {
	if mock.EvictAllDerivedForFunc == nil {
		panic("listCacheMock.EvictAllDerivedForFunc: method is nil but listCache.EvictAllDerivedFor was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		ThematiqueID uuid.UUID
	}{Ctx: ctx, ThematiqueID: thematiqueID}
	mock.lockEvictAllDerivedFor.Lock()
	mock.calls.EvictAllDerivedFor = append(mock.calls.EvictAllDerivedFor, callInfo)
	mock.lockEvictAllDerivedFor.Unlock()
	mock.EvictAllDerivedForFunc(ctx, thematiqueID)
}

func (mock *listCacheMock) EvictAllDerivedForCalls() []struct {
	Ctx          context.Context
	ThematiqueID uuid.UUID
} {
	mock.lockEvictAllDerivedFor.RLock()
	calls := mock.calls.EvictAllDerivedFor
	mock.lockEvictAllDerivedFor.RUnlock()
	return calls
}

// Ensure, that txRunnerMock does implement txRunner.
// If this is not the case, regenerate this file with moq.
var _ txRunner = &txRunnerMock{}

type txRunnerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txRunnerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txRunnerMock.RunInTxFunc: method is nil but txRunner.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txRunnerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
