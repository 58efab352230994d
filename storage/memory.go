package storage

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// MemStore is an in-memory Store used by tests and examples.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]common.Hash
}

func NewMemStore() *MemStore {
	return &MemStore{
		data: make(map[string]common.Hash),
	}
}

func (s *MemStore) GetStorageAt(pointer uint16, subKey common.Hash) common.Hash {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[string(storageKey(pointer, subKey))]
}

func (s *MemStore) SetStorageAt(pointer uint16, subKey common.Hash, value common.Hash) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[string(storageKey(pointer, subKey))] = value
}

// Len reports the number of distinct addresses ever written, including
// addresses holding the zero word.
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
