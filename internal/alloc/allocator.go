// Package alloc provides payload offset allocation for ICO container writing.
//
// Container payloads are packed contiguously after the directory table, so
// each directory entry's offset is the running end of everything allocated
// before it. The [Allocator] tracks that running end, starting from the base
// offset of the first payload.
package alloc

import "sync"

// Allocator hands out contiguous offsets within a container being written.
// Allocation is append-only: each payload lands at the current end offset,
// which then advances by the payload's size.
type Allocator struct {
	mu sync.Mutex

	// end is the current end-of-container offset (next allocation point)
	end uint64

	// base is the offset of the first payload
	// (immediately after the header and directory table)
	base uint64
}

// New creates an Allocator starting at the given base offset.
func New(base uint64) *Allocator {
	return &Allocator{
		end:  base,
		base: base,
	}
}

// Alloc reserves a block of the given size and returns its offset.
func (a *Allocator) Alloc(size uint64) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	off := a.end
	a.end += size
	return off
}

// End returns the current end-of-container offset.
func (a *Allocator) End() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.end
}

// Base returns the base offset (start of allocatable space).
func (a *Allocator) Base() uint64 {
	return a.base
}
