package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryLock struct {
	holder    uuid.UUID
	expiresAt time.Time
}

// MemoryStore is a process-local lock store used when Redis is not
// configured, and in tests. Expired locks are dropped lazily.
type MemoryStore struct {
	mu    sync.Mutex
	locks map[uuid.UUID]memoryLock
	now   func() time.Time
}

// NewMemoryStore creates an empty in-process lock store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		locks: make(map[uuid.UUID]memoryLock),
		now:   time.Now,
	}
}

// live returns the lock for qagID if it exists and has not expired.
// Callers must hold s.mu.
func (s *MemoryStore) live(qagID uuid.UUID) (memoryLock, bool) {
	l, ok := s.locks[qagID]
	if !ok {
		return memoryLock{}, false
	}
	if s.now().After(l.expiresAt) {
		delete(s.locks, qagID)
		return memoryLock{}, false
	}
	return l, true
}

func (s *MemoryStore) Holder(_ context.Context, qagID uuid.UUID) (uuid.UUID, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.live(qagID)
	if !ok {
		return uuid.Nil, false, nil
	}
	return l.holder, true, nil
}

func (s *MemoryStore) SetIfAbsent(_ context.Context, qagID, holder uuid.UUID, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.live(qagID); ok {
		return false, nil
	}
	s.locks[qagID] = memoryLock{holder: holder, expiresAt: s.now().Add(ttl)}
	return true, nil
}

func (s *MemoryStore) Refresh(_ context.Context, qagID, holder uuid.UUID, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.live(qagID)
	if !ok || l.holder != holder {
		return false, nil
	}
	s.locks[qagID] = memoryLock{holder: holder, expiresAt: s.now().Add(ttl)}
	return true, nil
}

func (s *MemoryStore) Remove(_ context.Context, qagID, holder uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if l, ok := s.live(qagID); ok && l.holder == holder {
		delete(s.locks, qagID)
	}
	return nil
}
