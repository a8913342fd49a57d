// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math/bits"
	"sync/atomic"
)

// tileDirtyMap tracks which tiles of a native surface need redrawing using
// an atomic bitmap, one bit per tile packed into uint64 words.
//
// Tile coordinates may be negative; the map covers the grid from
// (minX, minY) to (maxX, maxY) inclusive and ignores tiles outside it.
type tileDirtyMap struct {
	// Bit index = (y-minY)*cols + (x-minX).
	words      []atomic.Uint64
	minX, minY int32
	cols, rows int32
}

// newTileDirtyMap returns a clean map for the given inclusive tile range.
// It returns nil for an empty range.
func newTileDirtyMap(minX, minY, maxX, maxY int32) *tileDirtyMap {
	cols, rows := maxX-minX+1, maxY-minY+1
	if cols <= 0 || rows <= 0 {
		return nil
	}
	n := int(cols) * int(rows)
	return &tileDirtyMap{
		words: make([]atomic.Uint64, (n+63)/64),
		minX:  minX,
		minY:  minY,
		cols:  cols,
		rows:  rows,
	}
}

func (m *tileDirtyMap) index(x, y int32) (int, bool) {
	if m == nil {
		return 0, false
	}
	cx, cy := x-m.minX, y-m.minY
	if cx < 0 || cx >= m.cols || cy < 0 || cy >= m.rows {
		return 0, false
	}
	return int(cy)*int(m.cols) + int(cx), true
}

// Mark marks the tile at (x, y) dirty.
func (m *tileDirtyMap) Mark(x, y int32) {
	idx, ok := m.index(x, y)
	if !ok {
		return
	}
	m.words[idx/64].Or(1 << (idx & 63))
}

// IsDirty reports whether the tile at (x, y) is dirty.
func (m *tileDirtyMap) IsDirty(x, y int32) bool {
	idx, ok := m.index(x, y)
	if !ok {
		return false
	}
	return m.words[idx/64].Load()&(1<<(idx&63)) != 0
}

// Count returns the number of dirty tiles.
func (m *tileDirtyMap) Count() int {
	if m == nil {
		return 0
	}
	n := 0
	for i := range m.words {
		n += bits.OnesCount64(m.words[i].Load())
	}
	return n
}

// Clear marks every tile clean.
func (m *tileDirtyMap) Clear() {
	if m == nil {
		return
	}
	for i := range m.words {
		m.words[i].Store(0)
	}
}

// ForEachDirty calls fn for each dirty tile in row-major order without
// clearing it.
func (m *tileDirtyMap) ForEachDirty(fn func(x, y int32)) {
	if m == nil {
		return
	}
	total := int(m.cols) * int(m.rows)
	for wi := range m.words {
		word := m.words[wi].Load()
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			idx := wi*64 + bit
			if idx >= total {
				break
			}
			fn(m.minX+int32(idx%int(m.cols)), m.minY+int32(idx/int(m.cols)))
			word &^= 1 << bit
		}
	}
}
