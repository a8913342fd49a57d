// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/compositor/displaylist"
	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/resources"
	"github.com/gogpu/compositor/style"
)

// NativeSurfaceID names a surface of the native compositor.
type NativeSurfaceID uint64

// NativeTileID names a tile of a native surface by its grid position.
type NativeTileID struct {
	Surface NativeSurfaceID `yaml:"surface"`
	X       int32           `yaml:"x"`
	Y       int32           `yaml:"y"`
}

func (t NativeTileID) String() string {
	return fmt.Sprintf("tile(%d:%d,%d)", t.Surface, t.X, t.Y)
}

// NativeSurfaceInfo is what a bind returns: where to draw the tile.
type NativeSurfaceInfo struct {
	Origin geom.DeviceIntPoint
	FBO    uint32
}

// WindowVisibility is the occlusion state the native compositor reports.
type WindowVisibility struct {
	Visible  bool
	Occluded bool
}

// NativeCompositor is an OS compositor that owns final surface composition.
// The renderer allocates surfaces and tiles on it, draws into bound tiles
// and queues surfaces in z-order each frame.
type NativeCompositor interface {
	CreateSurface(id NativeSurfaceID, offset geom.DeviceIntPoint, tileSize geom.DeviceIntSize, opaque bool)
	CreateExternalSurface(id NativeSurfaceID, opaque bool)
	CreateBackdropSurface(id NativeSurfaceID, color style.ColorF)
	DestroySurface(id NativeSurfaceID)
	CreateTile(id NativeTileID)
	DestroyTile(id NativeTileID)
	AttachExternalImage(id NativeSurfaceID, image resources.ExternalImageID)
	InvalidateTile(id NativeTileID, valid geom.DeviceIntRect)
	Bind(id NativeTileID, dirty, valid geom.DeviceIntRect) NativeSurfaceInfo
	Unbind()
	AddSurface(id NativeSurfaceID, transform geom.Transform3D, clip geom.DeviceIntRect, rendering displaylist.ImageRendering)
	BeginFrame()
	EndFrame()
	StartCompositing(clear style.ColorF, dirty, opaque []geom.DeviceIntRect)
	EnableNativeCompositor(enable bool)
	WindowVisibility() WindowVisibility
	Deinit()
}

// NativeSurfaceKind says what a native surface shows.
type NativeSurfaceKind uint8

// NativeSurfaceKind values.
const (
	// NativeTiled surfaces hold picture cache tiles drawn by the renderer.
	NativeTiled NativeSurfaceKind = iota
	// NativeExternal surfaces show an external image directly.
	NativeExternal
	// NativeBackdrop surfaces are a solid color.
	NativeBackdrop
)

// NativeTile is one tile of a tiled surface in a frame.
type NativeTile struct {
	ID NativeTileID `yaml:"id"`
	// LocalDirty is the part of the tile redrawn this frame; empty when the
	// tile is unchanged.
	LocalDirty geom.DeviceIntRect `yaml:"dirty"`
	Valid      geom.DeviceIntRect `yaml:"valid"`
}

// NativeSurface describes a native surface as a frame wants it.
type NativeSurface struct {
	ID        NativeSurfaceID            `yaml:"id"`
	Kind      NativeSurfaceKind          `yaml:"kind"`
	Offset    geom.DeviceIntPoint        `yaml:"offset"`
	TileSize  geom.DeviceIntSize         `yaml:"tile_size"`
	Opaque    bool                       `yaml:"opaque"`
	Tiles     []NativeTile               `yaml:"tiles,omitempty"`
	Transform geom.Transform3D           `yaml:"-"`
	Clip      geom.DeviceIntRect         `yaml:"clip"`
	Rendering displaylist.ImageRendering `yaml:"rendering"`

	// External surfaces.
	Image         resources.ExternalImageID `yaml:"image,omitempty"`
	UpdatePending bool                      `yaml:"update_pending,omitempty"`
	// Backdrop surfaces.
	Color style.ColorF `yaml:"color"`
}

type nativeSurfaceState struct {
	kind  NativeSurfaceKind
	tiles map[NativeTileID]struct{}
	dirty *tileDirtyMap
}

// nativeBridge drives a NativeCompositor. It only ever destroys surfaces
// and tiles it created itself.
type nativeBridge struct {
	c        NativeCompositor
	surfaces map[NativeSurfaceID]*nativeSurfaceState
	bound    bool
	enabled  bool
}

func newNativeBridge(c NativeCompositor) *nativeBridge {
	return &nativeBridge{c: c, surfaces: make(map[NativeSurfaceID]*nativeSurfaceState)}
}

func (b *nativeBridge) enable(on bool) {
	if b.enabled == on {
		return
	}
	b.enabled = on
	b.c.EnableNativeCompositor(on)
}

// allocated reports whether the bridge created surface id.
func (b *nativeBridge) allocated(id NativeSurfaceID) bool {
	_, ok := b.surfaces[id]
	return ok
}

func (b *nativeBridge) createSurface(s NativeSurface) *nativeSurfaceState {
	st := &nativeSurfaceState{kind: s.Kind, tiles: make(map[NativeTileID]struct{})}
	switch s.Kind {
	case NativeExternal:
		b.c.CreateExternalSurface(s.ID, s.Opaque)
	case NativeBackdrop:
		b.c.CreateBackdropSurface(s.ID, s.Color)
	default:
		b.c.CreateSurface(s.ID, s.Offset, s.TileSize, s.Opaque)
	}
	b.surfaces[s.ID] = st
	slogger().Info("render: native surface created", "id", s.ID, "kind", s.Kind)
	return st
}

func (b *nativeBridge) destroySurface(id NativeSurfaceID) {
	st, ok := b.surfaces[id]
	if !ok {
		return
	}
	for t := range st.tiles {
		b.c.DestroyTile(t)
	}
	b.c.DestroySurface(id)
	delete(b.surfaces, id)
}

// sync creates the surfaces and tiles of want that do not exist yet and
// destroys allocated ones no longer wanted. Surfaces in keep survive.
func (b *nativeBridge) sync(want []NativeSurface, keep ...NativeSurfaceID) {
	live := make(map[NativeSurfaceID]bool, len(want)+len(keep))
	for _, id := range keep {
		live[id] = true
	}
	for _, s := range want {
		live[s.ID] = true
		st, ok := b.surfaces[s.ID]
		if !ok {
			st = b.createSurface(s)
		}
		if s.Kind != NativeTiled {
			continue
		}

		wantTiles := make(map[NativeTileID]struct{}, len(s.Tiles))
		minX, minY, maxX, maxY := int32(0), int32(0), int32(-1), int32(-1)
		for i, t := range s.Tiles {
			wantTiles[t.ID] = struct{}{}
			if _, ok := st.tiles[t.ID]; !ok {
				b.c.CreateTile(t.ID)
				st.tiles[t.ID] = struct{}{}
			}
			if i == 0 {
				minX, minY, maxX, maxY = t.ID.X, t.ID.Y, t.ID.X, t.ID.Y
				continue
			}
			minX, minY = min(minX, t.ID.X), min(minY, t.ID.Y)
			maxX, maxY = max(maxX, t.ID.X), max(maxY, t.ID.Y)
		}
		for t := range st.tiles {
			if _, ok := wantTiles[t]; !ok {
				b.c.DestroyTile(t)
				delete(st.tiles, t)
			}
		}
		st.dirty = newTileDirtyMap(minX, minY, maxX, maxY)
	}
	for id := range b.surfaces {
		if !live[id] {
			b.destroySurface(id)
		}
	}
}

// beginFrame starts a native frame: it invalidates changed tiles and
// external surfaces with new content, then queues every surface in z-order.
// extra surfaces are queued after the frame's own.
func (b *nativeBridge) beginFrame(surfaces []NativeSurface, extra ...NativeSurface) {
	b.c.BeginFrame()
	keep := make([]NativeSurfaceID, len(extra))
	for i, s := range extra {
		keep[i] = s.ID
	}
	b.sync(surfaces, keep...)

	for _, s := range surfaces {
		st := b.surfaces[s.ID]
		switch s.Kind {
		case NativeTiled:
			st.dirty.Clear()
			for _, t := range s.Tiles {
				if t.LocalDirty.IsEmpty() {
					continue
				}
				b.c.InvalidateTile(t.ID, t.Valid)
				st.dirty.Mark(t.ID.X, t.ID.Y)
			}
			slogger().Debug("render: native tiles invalidated", "surface", s.ID, "count", st.dirty.Count())
		case NativeExternal:
			if s.UpdatePending {
				b.c.AttachExternalImage(s.ID, s.Image)
			}
		}
	}
	for _, s := range surfaces {
		b.c.AddSurface(s.ID, s.Transform, s.Clip, s.Rendering)
	}
	for _, s := range extra {
		b.c.AddSurface(s.ID, s.Transform, s.Clip, s.Rendering)
	}
}

// needsDraw reports whether tile was invalidated this frame.
func (b *nativeBridge) needsDraw(tile NativeTileID) bool {
	st, ok := b.surfaces[tile.Surface]
	return ok && st.dirty.IsDirty(tile.X, tile.Y)
}

// drawTile binds tile, runs draw and unbinds, whether or not draw fails.
func (b *nativeBridge) drawTile(tile NativeTileID, dirty, valid geom.DeviceIntRect, draw func(NativeSurfaceInfo) error) error {
	st, ok := b.surfaces[tile.Surface]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSurface, tile)
	}
	if _, ok := st.tiles[tile]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSurface, tile)
	}
	info := b.c.Bind(tile, dirty, valid)
	b.bound = true
	defer func() {
		b.c.Unbind()
		b.bound = false
	}()
	return draw(info)
}

func (b *nativeBridge) startCompositing(clear style.ColorF, dirty []geom.DeviceIntRect) {
	b.c.StartCompositing(clear, dirty, nil)
}

func (b *nativeBridge) endFrame() { b.c.EndFrame() }

// deinit destroys everything the bridge allocated and shuts the compositor down.
func (b *nativeBridge) deinit() {
	for id := range b.surfaces {
		b.destroySurface(id)
	}
	b.c.Deinit()
}
