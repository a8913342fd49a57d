// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"sync"
	"unsafe"
)

// MemoryStats reports the allocations of a FrameMemory.
type MemoryStats struct {
	Allocations int
	Live        int
	Bytes       int
}

// FrameMemory is the allocation arena of a frame. Everything a frame
// builder allocates for one frame comes from it, and all of it is dropped
// together once the renderer is done with the frame.
//
// A FrameMemory is safe for concurrent use.
type FrameMemory struct {
	mu     sync.Mutex
	slabs  []any
	allocs int
	bytes  int
}

// NewFrameMemory returns an empty arena.
func NewFrameMemory() *FrameMemory { return &FrameMemory{} }

// Alloc returns a zeroed slice of n values of T owned by m.
func Alloc[T any](m *FrameMemory, n int) []T {
	s := make([]T, n)
	if m == nil {
		return s
	}
	var zero T
	m.mu.Lock()
	m.slabs = append(m.slabs, s)
	m.allocs++
	m.bytes += n * int(unsafe.Sizeof(zero))
	m.mu.Unlock()
	return s
}

// Stats returns the arena's counters.
func (m *FrameMemory) Stats() MemoryStats {
	if m == nil {
		return MemoryStats{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return MemoryStats{Allocations: m.allocs, Live: len(m.slabs), Bytes: m.bytes}
}

// Release drops every allocation. Slices handed out earlier must no longer
// be used by the frame's owner.
func (m *FrameMemory) Release() {
	if m == nil {
		return
	}
	m.mu.Lock()
	clear(m.slabs)
	m.slabs = m.slabs[:0]
	m.mu.Unlock()
}

// AssertMemoryReusable returns an error while any allocation is live.
func (m *FrameMemory) AssertMemoryReusable() error {
	if st := m.Stats(); st.Live > 0 {
		return fmt.Errorf("render: frame memory still has %d live allocations (%d bytes)", st.Live, st.Bytes)
	}
	return nil
}
