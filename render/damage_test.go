// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/compositor/geom"
)

func TestDamageTrackerAges(t *testing.T) {
	var tr BufferDamageTracker
	r := geom.IntRect(0, 0, 64, 64)
	tr.PushDirtyRect(r)

	assert.Equal(t, r, tr.Slot(0))

	_, ok := tr.DamageRect(0)
	assert.False(t, ok, "age 0 invalidates the buffer")

	d, ok := tr.DamageRect(1)
	require.True(t, ok)
	assert.True(t, d.IsEmpty())

	d, ok = tr.DamageRect(2)
	require.True(t, ok)
	assert.Equal(t, r, d)

	_, ok = tr.DamageRect(5)
	assert.False(t, ok, "ages beyond history are untracked")
}

func TestDamageTrackerUnionsOlderFrames(t *testing.T) {
	var tr BufferDamageTracker
	a := geom.IntRect(0, 0, 10, 10)
	b := geom.IntRect(20, 20, 10, 10)
	c := geom.IntRect(50, 0, 5, 5)
	tr.PushDirtyRect(a)
	tr.PushDirtyRect(b)
	tr.PushDirtyRect(c)

	tests := []struct {
		age  int
		want geom.DeviceIntRect
	}{
		{2, c},
		{3, c.Union(b)},
		{4, c.Union(b).Union(a)},
	}
	for _, tt := range tests {
		got, ok := tr.DamageRect(tt.age)
		require.True(t, ok, "age %d", tt.age)
		assert.Equal(t, tt.want, got, "age %d", tt.age)
	}
}

func TestDamageTrackerRingWraps(t *testing.T) {
	var tr BufferDamageTracker
	for i := range int32(6) {
		tr.PushDirtyRect(geom.IntRect(i*10, 0, 1, 1))
	}
	// The newest rect is the most recent push.
	d, ok := tr.DamageRect(2)
	require.True(t, ok)
	assert.Equal(t, geom.IntRect(50, 0, 1, 1), d)

	d, ok = tr.DamageRect(4)
	require.True(t, ok)
	assert.Equal(t, geom.IntRect(30, 0, 21, 1), d)

	tr.Reset()
	d, ok = tr.DamageRect(4)
	require.True(t, ok)
	assert.True(t, d.IsEmpty())
}
