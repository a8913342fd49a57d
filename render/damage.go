// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/compositor/geom"

// damageHistory is the number of past dirty rects the tracker keeps.
const damageHistory = 4

// BufferDamageTracker remembers the dirty rects of recent frames so a
// backbuffer of a given age can be brought up to date.
type BufferDamageTracker struct {
	rects [damageHistory]geom.DeviceIntRect
	// current is the slot the next pushed rect goes to. It walks backwards.
	current int
}

// PushDirtyRect records the dirty rect of the frame just rendered.
func (t *BufferDamageTracker) PushDirtyRect(r geom.DeviceIntRect) {
	t.rects[t.current] = r
	t.current = (t.current + damageHistory - 1) % damageHistory
}

// Slot returns the rect stored in slot i.
func (t *BufferDamageTracker) Slot(i int) geom.DeviceIntRect { return t.rects[i%damageHistory] }

// DamageRect returns the region of a backbuffer of the given age that is
// out of date. It returns false when the whole buffer must be redrawn:
// age 0 means the contents are undefined, and ages beyond the history are
// not tracked. Age 1 is fully valid and yields an empty rect.
func (t *BufferDamageTracker) DamageRect(age int) (geom.DeviceIntRect, bool) {
	switch {
	case age <= 0 || age > damageHistory:
		return geom.DeviceIntRect{}, false
	case age == 1:
		return geom.DeviceIntRect{}, true
	}
	var damage geom.DeviceIntRect
	for i := 1; i < age; i++ {
		damage = damage.Union(t.rects[(t.current+i)%damageHistory])
	}
	return damage, true
}

// Reset forgets all history.
func (t *BufferDamageTracker) Reset() { *t = BufferDamageTracker{} }
