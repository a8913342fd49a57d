// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"cmp"
	"image"
	"image/color"
	"image/draw"
	"math"
	"slices"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/style"
)

// overlaySurfaceID is the native surface the debug overlay draws into.
const overlaySurfaceID NativeSurfaceID = math.MaxUint64

const (
	overlayMargin  = 8
	overlayPadding = 4
	overlayLineH   = 13
)

var overlayBackground = color.RGBA{A: 160}

// debugOverlay renders profiler and debug text on top of the frame.
type debugOverlay struct {
	printer *message.Printer
	face    font.Face

	texture     TextureID
	textureSize geom.DeviceIntSize

	// nativeSize is the size the overlay surface was created at.
	nativeSize geom.DeviceIntSize
}

func newDebugOverlay(locale string) *debugOverlay {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &debugOverlay{printer: message.NewPrinter(tag), face: basicfont.Face7x13}
}

// ensureNative creates the overlay surface at framebuffer size, recreating
// it when the framebuffer was resized.
func (o *debugOverlay) ensureNative(b *nativeBridge, fb geom.DeviceIntSize) {
	if b.allocated(overlaySurfaceID) {
		if o.nativeSize == fb {
			return
		}
		b.destroySurface(overlaySurfaceID)
	}
	st := b.createSurface(NativeSurface{ID: overlaySurfaceID, Kind: NativeTiled, TileSize: fb})
	tile := NativeTileID{Surface: overlaySurfaceID}
	b.c.CreateTile(tile)
	st.tiles[tile] = struct{}{}
	st.dirty = newTileDirtyMap(0, 0, 0, 0)
	o.nativeSize = fb
}

// nativeSurface is the overlay as queued on the native compositor.
func (o *debugOverlay) nativeSurface() NativeSurface {
	return NativeSurface{
		ID:        overlaySurfaceID,
		Kind:      NativeTiled,
		TileSize:  o.nativeSize,
		Transform: geom.Identity(),
		Clip:      geom.IntRectFromSize(o.nativeSize),
	}
}

// teardownNative destroys the native overlay surface.
func (o *debugOverlay) teardownNative(b *nativeBridge) {
	if b != nil {
		b.destroySurface(overlaySurfaceID)
	}
	o.nativeSize = geom.DeviceIntSize{}
}

func (o *debugOverlay) destroy(dev Device) {
	if o.texture != 0 {
		dev.DestroyTexture(o.texture)
		o.texture = 0
	}
}

// lines returns the text the overlay shows for the current flags.
func (o *debugOverlay) lines(r *Renderer, f *Frame, st *RendererStats) []string {
	p := o.printer
	flags := r.opts.DebugFlags
	var out []string
	if flags.Has(DebugProfiler) {
		out = append(out,
			p.Sprintf("Draw calls: %d", st.TotalDrawCalls),
			p.Sprintf("Color targets: %d  Alpha targets: %d", st.ColorTargetCount, st.AlphaTargetCount),
			p.Sprintf("Picture tiles: %d", st.PictureTileCount),
			p.Sprintf("Texture upload: %.2f MB", st.TextureUploadMB),
			p.Sprintf("CPU: update %v  passes %v", st.UpdateTime, st.PassTime),
		)
	}
	if flags.Has(DebugTextureCache) {
		out = append(out, p.Sprintf("Cache textures: %d (created %d, reused %d)",
			r.textures.Len(), st.TexturesCreated, st.TexturesReused))
	}
	if flags.Has(DebugGPUCache) {
		out = append(out, p.Sprintf("GPU cache frame: %d", uint64(r.gpuCacheID)))
	}
	if flags.Has(DebugEpochs) {
		keys := make([]epochKey, 0, len(r.epochs))
		for k := range r.epochs {
			keys = append(keys, k)
		}
		slices.SortFunc(keys, func(a, b epochKey) int {
			if c := cmp.Compare(a.pipeline.Namespace, b.pipeline.Namespace); c != 0 {
				return c
			}
			return cmp.Compare(a.pipeline.Index, b.pipeline.Index)
		})
		for _, k := range keys {
			out = append(out, p.Sprintf("%s: epoch %d", k.pipeline, uint32(r.epochs[k])))
		}
	}
	if flags.Has(DebugWindowVisibility) && r.native != nil {
		v := r.native.c.WindowVisibility()
		out = append(out, p.Sprintf("Window visible: %t occluded: %t", v.Visible, v.Occluded))
	}
	for _, it := range f.DebugItems {
		if it.Text != "" {
			out = append(out, it.Text)
		}
	}
	return out
}

// rasterize draws lines in white on a translucent panel.
func (o *debugOverlay) rasterize(lines []string) *image.RGBA {
	w := 0
	for _, l := range lines {
		w = max(w, font.MeasureString(o.face, l).Ceil())
	}
	img := image.NewRGBA(image.Rect(0, 0, w+2*overlayPadding, len(lines)*overlayLineH+2*overlayPadding))
	draw.Draw(img, img.Bounds(), image.NewUniform(overlayBackground), image.Point{}, draw.Src)

	d := font.Drawer{Dst: img, Src: image.White, Face: o.face}
	ascent := o.face.Metrics().Ascent
	for i, l := range lines {
		d.Dot = fixed.Point26_6{
			X: fixed.I(overlayPadding),
			Y: fixed.I(overlayPadding+i*overlayLineH) + ascent,
		}
		d.DrawString(l)
	}
	return img
}

// draw renders the overlay into the bound target of size fb.
func (o *debugOverlay) draw(r *Renderer, f *Frame, st *RendererStats, fb geom.DeviceIntSize) error {
	for _, it := range f.DebugItems {
		if it.Rect == nil {
			continue
		}
		call := DrawCall{
			Shader:    ShaderBrushSolid,
			Blend:     BlendModePremultipliedAlpha,
			Rect:      *it.Rect,
			Color:     it.Color.ToColorF().Premultiplied(),
			Instances: 1,
		}
		if err := r.draw(call); err != nil {
			return err
		}
	}

	lines := o.lines(r, f, st)
	if len(lines) == 0 {
		return nil
	}
	img := o.rasterize(lines)
	size := geom.DeviceIntSize{Width: int32(img.Rect.Dx()), Height: int32(img.Rect.Dy())}
	if o.texture == 0 || o.textureSize != size {
		o.destroy(r.dev)
		d := DefaultTextureDescriptor(size.Width, size.Height, gputypes.TextureFormatRGBA8Unorm)
		d.Label = "debug overlay"
		id, err := r.dev.CreateTexture(d)
		if err != nil {
			return err
		}
		o.texture, o.textureSize = id, size
	}
	if err := r.dev.UploadTexture(o.texture, geom.IntRectFromSize(size), img.Pix); err != nil {
		return err
	}

	dst := geom.IntRect(overlayMargin, overlayMargin, size.Width, size.Height)
	dst, ok := dst.Intersection(geom.IntRectFromSize(fb))
	if !ok {
		return nil
	}
	return r.draw(DrawCall{
		Shader:    ShaderDebugOverlay,
		Blend:     BlendModePremultipliedAlpha,
		Rect:      dst,
		Color:     style.ColorF{R: 1, G: 1, B: 1, A: 1},
		Textures:  [3]TextureID{o.texture},
		Instances: 1,
	})
}
