package slot

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Scalar enumerates the fixed-width kinds a Value can narrow a storage word
// to. Narrowing truncates high bits and widening zero-extends; neither
// saturates nor errors. Callers needing the full 256-bit width read the raw
// word through Slot.Get instead.
type Scalar interface {
	bool | uint8 | uint16 | uint32 | uint64
}

// Value is a typed read-modify-write cache around one slot. The cache holds
// the word from the last Load or Set and is never refreshed implicitly.
type Value[T Scalar] struct {
	slot  Slot
	cache common.Hash
}

// NewValue wraps a slot with a zeroed cache.
func NewValue[T Scalar](s Slot) *Value[T] {
	return &Value[T]{slot: s}
}

// Slot returns the wrapped slot.
func (v *Value[T]) Slot() Slot {
	return v.slot
}

// Load refreshes the cache from storage.
func (v *Value[T]) Load() *Value[T] {
	v.cache = v.slot.Get()
	return v
}

// Save writes the cached word to storage.
func (v *Value[T]) Save() *Value[T] {
	v.slot.Set(v.cache)
	return v
}

// Set widens val into the cache and saves it.
func (v *Value[T]) Set(val T) *Value[T] {
	v.cache = widen(val)
	return v.Save()
}

// Word returns the cached word unnarrowed.
func (v *Value[T]) Word() common.Hash {
	return v.cache
}

// Unwrap narrows the cached word to T, truncating high bits.
func (v *Value[T]) Unwrap() T {
	// Uint64 takes the low limb, which already truncates to 64 bits; the
	// per-kind conversions below truncate the rest.
	low := new(uint256.Int).SetBytes(v.cache[:]).Uint64()
	var out T
	switch ptr := any(&out).(type) {
	case *bool:
		*ptr = low&1 != 0
	case *uint8:
		*ptr = uint8(low)
	case *uint16:
		*ptr = uint16(low)
	case *uint32:
		*ptr = uint32(low)
	case *uint64:
		*ptr = low
	}
	return out
}

func widen[T Scalar](val T) common.Hash {
	var low uint64
	switch v := any(val).(type) {
	case bool:
		if v {
			low = 1
		}
	case uint8:
		low = uint64(v)
	case uint16:
		low = uint64(v)
	case uint32:
		low = uint64(v)
	case uint64:
		low = v
	}
	return wordFromUint64(low)
}
