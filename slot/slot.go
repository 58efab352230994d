package slot

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/youngslohmlife/opnet-storage/storage"
)

// Slot is an addressable handle into the host store: a namespace pointer plus
// a derived subkey. Slots are immutable values; selecting a child never
// mutates the parent, and two slots address the same storage location iff
// their (pointer, subKey) pairs are equal.
type Slot struct {
	store   storage.Store
	pointer uint16
	subKey  common.Hash
}

// Wrap builds a slot under namespace pointer 0 whose subkey is the hash of the
// given bytes.
func Wrap(store storage.Store, data []byte) Slot {
	return Slot{store: store, pointer: 0, subKey: Hash(data)}
}

// ForKeyword builds a slot under namespace pointer 0 from a keyword string.
func ForKeyword(store storage.Store, keyword string) Slot {
	return Wrap(store, []byte(keyword))
}

// At builds the root slot of a namespace: the given pointer with a zero
// subkey. Namespace pointers come from an Allocator at contract construction.
func At(store storage.Store, pointer uint16) Slot {
	return Slot{store: store, pointer: pointer}
}

// Select derives the child slot one level below s for the given extension
// bytes. The namespace pointer is inherited; the subkey is re-derived
// deterministically, so the same parent and extension always map to the same
// storage location.
func (s Slot) Select(extension []byte) Slot {
	return Slot{store: s.store, pointer: s.pointer, subKey: DeriveChild(s.subKey, extension)}
}

// Keyword derives the child slot for a keyword string.
func (s Slot) Keyword(keyword string) Slot {
	return s.Select([]byte(keyword))
}

// Get reads the word stored at this slot. Never-written slots read as the
// zero word.
func (s Slot) Get() common.Hash {
	return s.store.GetStorageAt(s.pointer, s.subKey)
}

// Set writes the word stored at this slot, overwriting unconditionally.
func (s Slot) Set(value common.Hash) {
	s.store.SetStorageAt(s.pointer, s.subKey, value)
}

// Nullify writes the zero word. The host store has no delete primitive; the
// zero word is the logical "absent" sentinel and Nullify is idempotent.
func (s Slot) Nullify() {
	s.Set(common.Hash{})
}

// Pointer returns the slot's namespace pointer.
func (s Slot) Pointer() uint16 {
	return s.pointer
}

// SubKey returns the slot's derived subkey.
func (s Slot) SubKey() common.Hash {
	return s.subKey
}

// Equal reports whether s and other address the same storage location.
func (s Slot) Equal(other Slot) bool {
	return s.pointer == other.pointer && s.subKey == other.subKey
}
