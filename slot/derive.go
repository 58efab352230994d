// Package slot implements hierarchical, collision-resistant storage addressing
// over the host's flat key-value store. Contract code derives a tree of slots
// from keyword paths and namespace pointers, then reads and writes 256-bit
// words through them.
package slot

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Hash derives a subkey from arbitrary bytes via keccak256.
func Hash(data ...[]byte) common.Hash {
	return crypto.Keccak256Hash(data...)
}

// DeriveChild computes the subkey of a child one level below parent:
// keccak256(parent || keccak256(extension)). Hashing the extension before
// concatenation domain-separates hierarchy levels, so a crafted extension
// cannot collide with a longer unhashed parent path. The ordering and the
// inner hash are part of the storage layout; changing either relocates every
// derived slot.
func DeriveChild(parent common.Hash, extension []byte) common.Hash {
	return crypto.Keccak256Hash(parent[:], crypto.Keccak256(extension))
}
