package slot

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// WordCodec is implemented by record types that marshal themselves to and
// from an ordered run of storage words. EncodeWords and DecodeWords must be
// inverses: DecodeWords(EncodeWords(x)) restores x for every valid x. How
// fields pack into words is the record's own business; the storage layer
// treats each word as opaque payload and does not validate word counts before
// decode.
type WordCodec interface {
	EncodeWords() []common.Hash
	DecodeWords(words []common.Hash) error
}

// StructValue marshals a record to and from the list anchored at one slot.
// Inner is the in-memory instance; storage is only touched by LoadStruct and
// Save.
type StructValue[T WordCodec] struct {
	slot  Slot
	Inner T
}

// NewStruct binds inner to the list anchored at s without touching storage.
// Use it for records that have never been saved; LoadStruct is the read path.
func NewStruct[T WordCodec](s Slot, inner T) *StructValue[T] {
	return &StructValue[T]{slot: s, Inner: inner}
}

// LoadStruct reads the word run stored at s and decodes it into inner, which
// is typically a pointer to a fresh record. Decode failures are the record
// type's to signal.
func LoadStruct[T WordCodec](s Slot, inner T) (*StructValue[T], error) {
	if err := inner.DecodeWords(s.GetAll()); err != nil {
		return nil, fmt.Errorf("slot: decode struct at %x: %w", s.SubKey(), err)
	}
	return &StructValue[T]{slot: s, Inner: inner}, nil
}

// Slot returns the list anchor the struct is stored under.
func (v *StructValue[T]) Slot() Slot {
	return v.slot
}

// Save encodes Inner and overwrites the list elements in place. When the
// encoded word count differs from the stored length the length word is
// rewritten to match, so shrinking leaves stale words beyond the new length
// that are no longer addressed through the list.
func (v *StructValue[T]) Save() {
	words := v.Inner.EncodeWords()
	for i, word := range words {
		v.slot.SelectIndex(uint32(i)).Set(word)
	}
	if stored := v.slot.Length(); stored != uint32(len(words)) {
		v.slot.LengthSlot().Set(wordFromUint64(uint64(len(words))))
	}
}
