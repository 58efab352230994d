package main

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/youngslohmlife/opnet-storage/slot"
)

// resolvePath walks a /-separated keyword path down from root, deriving one
// child per segment. Empty segments are skipped so "a//b" and "/a/b" resolve
// like "a/b".
func resolvePath(root slot.Slot, path string) slot.Slot {
	current := root
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}
		current = current.Keyword(segment)
	}
	return current
}

// wordFromText parses a storage word from 0x-prefixed hex or a decimal
// integer.
func wordFromText(text string) (common.Hash, error) {
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		if len(text) > 2+2*common.HashLength {
			return common.Hash{}, fmt.Errorf("hex value longer than %d bytes", common.HashLength)
		}
		return common.HexToHash(text), nil
	}
	value, err := uint256.FromDecimal(text)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Hash(value.Bytes32()), nil
}
