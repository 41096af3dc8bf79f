// internal/storage/memory.go
package storage

import "sync"

// MemoryStore keeps values in process memory. Used in tests and as the
// throwaway driver when durability is not wanted.
type MemoryStore struct {
	mtx  sync.RWMutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	value, ok := s.data[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.data[key] = value
	return nil
}

func (s *MemoryStore) Remove(key string) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	delete(s.data, key)
	return nil
}
