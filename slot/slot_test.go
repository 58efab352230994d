package slot

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/youngslohmlife/opnet-storage/storage"
)

func TestWrapIsDeterministic(t *testing.T) {
	store := storage.NewMemStore()
	a := Wrap(store, []byte("region"))
	b := Wrap(store, []byte("region"))
	if !a.Equal(b) {
		t.Fatalf("wrap not deterministic: (%d, %x) vs (%d, %x)", a.Pointer(), a.SubKey(), b.Pointer(), b.SubKey())
	}
	if a.Pointer() != 0 {
		t.Fatalf("wrap pointer: got %d want 0", a.Pointer())
	}
}

func TestAtStartsAtZeroSubKey(t *testing.T) {
	store := storage.NewMemStore()
	root := At(store, 5)
	if root.Pointer() != 5 {
		t.Fatalf("pointer: got %d want 5", root.Pointer())
	}
	if root.SubKey() != (common.Hash{}) {
		t.Fatalf("fresh slot subkey not zero: %x", root.SubKey())
	}
}

func TestSelectDoesNotMutateParent(t *testing.T) {
	store := storage.NewMemStore()
	parent := ForKeyword(store, "parent")
	before := parent.SubKey()

	child := parent.Keyword("child")
	if parent.SubKey() != before {
		t.Fatalf("select mutated parent")
	}
	if child.Equal(parent) {
		t.Fatalf("child addressed the parent's location")
	}
	if !child.Equal(parent.Keyword("child")) {
		t.Fatalf("re-derivation gave a different slot")
	}
}

func TestSelectDistinctExtensions(t *testing.T) {
	store := storage.NewMemStore()
	parent := ForKeyword(store, "accounts")
	if parent.Select([]byte{1}).Equal(parent.Select([]byte{2})) {
		t.Fatalf("distinct extensions selected the same slot")
	}
}

func TestGetSetNullify(t *testing.T) {
	store := storage.NewMemStore()
	s := ForKeyword(store, "counter")

	if s.Get() != (common.Hash{}) {
		t.Fatalf("unwritten slot not zero")
	}

	value := common.HexToHash("0x64")
	s.Set(value)
	if s.Get() != value {
		t.Fatalf("get after set: got %x want %x", s.Get(), value)
	}

	s.Nullify()
	if s.Get() != (common.Hash{}) {
		t.Fatalf("nullify did not zero the slot")
	}
	s.Nullify()
	if s.Get() != (common.Hash{}) {
		t.Fatalf("second nullify changed observable state")
	}
}

func TestBalancesScenario(t *testing.T) {
	store := storage.NewMemStore()
	balances := ForKeyword(store, "balances")

	alice := []byte{0xaa, 0x01}
	bob := []byte{0xbb, 0x02}

	if balances.Select(alice).Get() != (common.Hash{}) {
		t.Fatalf("never-written balance not zero")
	}

	balances.Select(alice).Set(common.HexToHash("0x64"))
	if got := balances.Select(alice).Get(); got != common.HexToHash("0x64") {
		t.Fatalf("balance after set: got %x", got)
	}
	if balances.Select(bob).Get() != (common.Hash{}) {
		t.Fatalf("unrelated address affected")
	}
}
