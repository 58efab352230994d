package storage

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
)

// Store is the flat key-value contract the host execution environment exposes
// to contract storage. Every address is a (pointer, subKey) pair: a small
// integer partition id plus a 256-bit derived key. Reads of never-written
// addresses return the zero word; there is no delete primitive and no
// existence check.
//
// Both calls are point operations. Host-level failures are fatal to the
// invocation and surface as panics from the backend rather than errors, so the
// addressing layer above stays errorless.
type Store interface {
	GetStorageAt(pointer uint16, subKey common.Hash) common.Hash
	SetStorageAt(pointer uint16, subKey common.Hash, value common.Hash)
}

// storageKey flattens a (pointer, subKey) address into the byte key the
// persistent backends use: 2-byte big-endian pointer followed by the subkey.
func storageKey(pointer uint16, subKey common.Hash) []byte {
	key := make([]byte, 2+common.HashLength)
	binary.BigEndian.PutUint16(key[:2], pointer)
	copy(key[2:], subKey[:])
	return key
}
