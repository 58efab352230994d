package main

import (
	"github.com/youngslohmlife/opnet-storage/slot"
)

type regionPointer struct {
	Region  string
	Pointer uint16
}

// previewAllocations replays the deterministic pointer assignment a contract
// performs at construction: one pointer per region name, in argument order.
// The preview never touches the store; it only shows where each region would
// land.
func previewAllocations(regions []string) []regionPointer {
	alloc := slot.NewAllocator()
	out := make([]regionPointer, len(regions))
	for i, name := range regions {
		out[i] = regionPointer{Region: name, Pointer: alloc.Next()}
	}
	return out
}
