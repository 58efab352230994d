package slot

// Allocator issues sequential namespace pointers, one per logical storage
// region. A contract creates a single allocator during construction and calls
// Next in the same order on every deployment, so each region keeps a stable,
// deterministic pointer. Not safe for concurrent use; initialisation is
// synchronous by contract.
type Allocator struct {
	next uint16
}

// NewAllocator returns an allocator whose first Next call yields pointer 0.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns the next unused namespace pointer.
func (a *Allocator) Next() uint16 {
	pointer := a.next
	a.next++
	return pointer
}
