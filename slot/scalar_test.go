package slot

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/youngslohmlife/opnet-storage/storage"
)

func TestValueRoundTripUint64(t *testing.T) {
	store := storage.NewMemStore()
	s := ForKeyword(store, "supply")

	NewValue[uint64](s).Set(18_446_744_073_709_551_615)
	if got := NewValue[uint64](s).Load().Unwrap(); got != 18_446_744_073_709_551_615 {
		t.Fatalf("round trip uint64: got %d", got)
	}
}

func TestValueRoundTripNarrowKinds(t *testing.T) {
	store := storage.NewMemStore()

	s8 := ForKeyword(store, "u8")
	NewValue[uint8](s8).Set(0xAB)
	if got := NewValue[uint8](s8).Load().Unwrap(); got != 0xAB {
		t.Fatalf("round trip uint8: got %#x", got)
	}

	s16 := ForKeyword(store, "u16")
	NewValue[uint16](s16).Set(0xBEEF)
	if got := NewValue[uint16](s16).Load().Unwrap(); got != 0xBEEF {
		t.Fatalf("round trip uint16: got %#x", got)
	}

	s32 := ForKeyword(store, "u32")
	NewValue[uint32](s32).Set(0xDEADBEEF)
	if got := NewValue[uint32](s32).Load().Unwrap(); got != 0xDEADBEEF {
		t.Fatalf("round trip uint32: got %#x", got)
	}

	sb := ForKeyword(store, "flag")
	NewValue[bool](sb).Set(true)
	if !NewValue[bool](sb).Load().Unwrap() {
		t.Fatalf("round trip bool: got false")
	}
}

func TestValueNarrowingTruncates(t *testing.T) {
	store := storage.NewMemStore()
	s := ForKeyword(store, "wide")
	s.Set(common.HexToHash("0x0102"))

	if got := NewValue[uint8](s).Load().Unwrap(); got != 0x02 {
		t.Fatalf("narrow to uint8: got %#x want 0x02", got)
	}
	if got := NewValue[uint16](s).Load().Unwrap(); got != 0x0102 {
		t.Fatalf("narrow to uint16: got %#x want 0x0102", got)
	}

	// Bool truncates to the low bit: an even word reads as false.
	s.Set(common.HexToHash("0x02"))
	if NewValue[bool](s).Load().Unwrap() {
		t.Fatalf("narrow even word to bool: got true")
	}
}

func TestValueCacheIsExplicit(t *testing.T) {
	store := storage.NewMemStore()
	s := ForKeyword(store, "cached")

	v := NewValue[uint32](s)
	v.Set(7)

	// A write behind the cache is invisible until Load.
	s.Set(common.HexToHash("0x09"))
	if got := v.Unwrap(); got != 7 {
		t.Fatalf("cache refreshed implicitly: got %d", got)
	}
	if got := v.Load().Unwrap(); got != 9 {
		t.Fatalf("load did not refresh: got %d", got)
	}
}

func TestValueSaveWritesCache(t *testing.T) {
	store := storage.NewMemStore()
	s := ForKeyword(store, "saved")

	v := NewValue[uint16](s)
	if s.Get() != (common.Hash{}) {
		t.Fatalf("slot written before save")
	}
	v.Save()
	if s.Get() != (common.Hash{}) {
		t.Fatalf("zero cache saved a non-zero word")
	}
	v.Set(0x1234)
	if got := s.Get(); got != common.HexToHash("0x1234") {
		t.Fatalf("set did not persist: got %x", got)
	}
}
