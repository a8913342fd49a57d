// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/style"
)

func colorTile(kind CompositeTileKind, rect geom.DeviceIntRect, z int, r float32) CompositeTile {
	c := style.ColorF{R: r, A: 1}
	return CompositeTile{Kind: kind, Color: &c, Rect: rect, Clip: rect, Dirty: rect, Z: z}
}

func TestCompositeOrderAndOcclusion(t *testing.T) {
	opts := DefaultOptions()
	opts.ClearColor = nil
	r, dev := newTestRenderer(t, opts)

	state := &CompositeState{Tiles: []CompositeTile{
		colorTile(TileAlpha, geom.IntRect(0, 0, 10, 10), 3, 0.3),
		colorTile(TileOpaque, geom.IntRect(0, 0, 100, 100), 0, 0.1), // covered by z 2
		colorTile(TileOpaque, geom.IntRect(0, 0, 100, 100), 2, 0.2),
		{Kind: TileClear, Rect: geom.IntRect(50, 50, 10, 10), Clip: geom.IntRect(50, 50, 10, 10), Z: 4},
		colorTile(TileAlpha, geom.IntRect(0, 0, 10, 10), 1, 0.05), // below the opaque tile
	}}
	errs := &RenderErrors{}
	r.compositeSimple(state, geom.IntRectFromSize(fbSize), nil, errs)
	require.True(t, errs.empty())

	draws := dev.Draws()
	require.Len(t, draws, 3)
	assert.Equal(t, float32(0.2), draws[0].Color.R)
	assert.Equal(t, BlendModeNone, draws[0].Blend)
	assert.Equal(t, BlendModePremultipliedDestOut, draws[1].Blend)
	assert.Equal(t, style.ColorF{A: 1}, draws[1].Color)
	assert.Equal(t, float32(0.3), draws[2].Color.R)
	assert.Equal(t, BlendModePremultipliedAlpha, draws[2].Blend)
	assert.Empty(t, dev.OpsOf(OpClear), "no clear color")
}

func TestCompositeEmptyDirtyRectDrawsNothing(t *testing.T) {
	r, dev := newTestRenderer(t, DefaultOptions())
	state := &CompositeState{Tiles: []CompositeTile{colorTile(TileOpaque, geom.IntRect(0, 0, 10, 10), 0, 1)}}
	empty := geom.DeviceIntRect{}
	r.compositeSimple(state, geom.IntRectFromSize(fbSize), &empty, &RenderErrors{})
	assert.Empty(t, dev.Ops())
}

func TestCompositeDirtyRect(t *testing.T) {
	s := CompositeState{Tiles: []CompositeTile{
		{Kind: TileOpaque, Dirty: geom.IntRect(0, 0, 10, 10)},
		{Kind: TileAlpha, Dirty: geom.IntRect(240, 240, 40, 40)},
		{Kind: TileClear, Dirty: geom.IntRect(100, 100, 10, 10)},
	}}
	assert.Equal(t, geom.IntRect(0, 0, 256, 256), s.DirtyRect(geom.IntRectFromSize(fbSize)))
}

func TestOccluded(t *testing.T) {
	r := geom.IntRect(0, 0, 10, 10)
	assert.True(t, occluded(r, []geom.DeviceIntRect{geom.IntRect(0, 0, 5, 10), geom.IntRect(5, 0, 5, 10)}))
	assert.False(t, occluded(r, []geom.DeviceIntRect{geom.IntRect(0, 0, 5, 10)}))
	assert.Len(t, subtractRect(r, geom.IntRect(2, 2, 2, 2)), 4)
}
