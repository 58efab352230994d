package slot

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// lengthKeyword is the reserved child keyword holding a list's element count.
const lengthKeyword = "length"

// LengthSlot returns the reserved child slot holding the list's length.
func (s Slot) LengthSlot() Slot {
	return s.Keyword(lengthKeyword)
}

// Length reads the list's element count. An uninitialised list reads as
// length 0.
func (s Slot) Length() uint32 {
	word := s.LengthSlot().Get()
	return uint32(new(uint256.Int).SetBytes(word[:]).Uint64())
}

// SelectIndex returns the slot of element i, derived from the element's
// decimal index. Indices beyond the current length resolve to valid slots
// that read as the zero word; keeping them consistent with the length field
// is the caller's responsibility.
func (s Slot) SelectIndex(i uint32) Slot {
	return s.Keyword(strconv.FormatUint(uint64(i), 10))
}

// Extend grows the list by one element and returns the slot of the new last
// element. This is a read-then-write of the length field with no
// compare-and-swap; the host's serial execution per invocation stands in for
// locking.
func (s Slot) Extend() Slot {
	n := s.Length()
	s.LengthSlot().Set(wordFromUint64(uint64(n) + 1))
	return s.SelectIndex(n)
}

// Append extends the list and stores value in the new last element.
func (s Slot) Append(value common.Hash) {
	s.Extend().Set(value)
}

// GetAll reads every element in index order into a snapshot. The result is
// eagerly materialised; later writes to the list do not affect it.
func (s Slot) GetAll() []common.Hash {
	n := s.Length()
	words := make([]common.Hash, n)
	for i := uint32(0); i < n; i++ {
		words[i] = s.SelectIndex(i).Get()
	}
	return words
}

func wordFromUint64(v uint64) common.Hash {
	return common.Hash(uint256.NewInt(v).Bytes32())
}
