package scheduling

import "sync"

// providerLockStore holds a map of provider IDs to their commit locks. BookSlot
// serializes its re-validation and insert per provider, so booking load on one
// provider never throttles another.
type providerLockStore struct {
	locks map[string]*sync.Mutex
	mu    sync.Mutex
}

func newProviderLockStore() *providerLockStore {
	return &providerLockStore{
		locks: make(map[string]*sync.Mutex),
	}
}

// getLock returns the lock for a given provider, creating one if it doesn't exist.
func (s *providerLockStore) getLock(providerID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[providerID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[providerID] = lock
	}
	return lock
}
