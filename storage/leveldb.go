package storage

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/syndtr/goleveldb/leveldb"
)

// LevelDBStore is a persistent Store backed by LevelDB.
type LevelDBStore struct {
	db *leveldb.DB
}

// NewLevelDBStore creates or opens a LevelDB database at the specified path.
func NewLevelDBStore(path string) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("storage: open leveldb at %s: %w", path, err)
	}
	return &LevelDBStore{db: db}, nil
}

func (s *LevelDBStore) GetStorageAt(pointer uint16, subKey common.Hash) common.Hash {
	data, err := s.db.Get(storageKey(pointer, subKey), nil)
	if err == leveldb.ErrNotFound {
		return common.Hash{}
	}
	if err != nil {
		panic(fmt.Sprintf("storage: leveldb read: %v", err))
	}
	return common.BytesToHash(data)
}

func (s *LevelDBStore) SetStorageAt(pointer uint16, subKey common.Hash, value common.Hash) {
	if err := s.db.Put(storageKey(pointer, subKey), value.Bytes(), nil); err != nil {
		panic(fmt.Sprintf("storage: leveldb write: %v", err))
	}
}

// Close closes the database connection.
func (s *LevelDBStore) Close() error {
	return s.db.Close()
}
