package quest

import "sync"

// userLockStore hands out one mutex per user so read-detect-write runs
// serialized per user. The engine's snapshot read cannot see writes that race
// it; this lock closes that window inside a single process, and the
// repository's version check covers multi-process deployments.
type userLockStore struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newUserLockStore() *userLockStore {
	return &userLockStore{locks: make(map[string]*sync.Mutex)}
}

// get returns the mutex for a given user, creating one if it doesn't exist.
func (s *userLockStore) get(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.locks[userID]
	if !exists {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}
