package storage

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	bolt "go.etcd.io/bbolt"
)

var boltBucket = []byte("slots")

// BoltStore is a persistent Store backed by a single-file bbolt database. All
// words live in one bucket keyed by the flattened (pointer, subKey) address.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore creates or opens a bbolt database at the specified path.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("storage: open bolt at %s: %w", path, err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(boltBucket)
		return err
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: create bolt bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) GetStorageAt(pointer uint16, subKey common.Hash) common.Hash {
	var value common.Hash
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(boltBucket).Get(storageKey(pointer, subKey))
		if data != nil {
			value = common.BytesToHash(data)
		}
		return nil
	})
	if err != nil {
		panic(fmt.Sprintf("storage: bolt read: %v", err))
	}
	return value
}

func (s *BoltStore) SetStorageAt(pointer uint16, subKey common.Hash, value common.Hash) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(boltBucket).Put(storageKey(pointer, subKey), value.Bytes())
	})
	if err != nil {
		panic(fmt.Sprintf("storage: bolt write: %v", err))
	}
}

// Close closes the database file.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
