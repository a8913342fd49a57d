// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"cmp"
	"slices"

	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/style"
)

// CompositorKind says who composites picture cache tiles into the window.
type CompositorKind uint8

// CompositorKind values.
const (
	// CompositorDraw composites by drawing tiles into the framebuffer.
	CompositorDraw CompositorKind = iota
	// CompositorNative hands tile surfaces to the OS compositor.
	CompositorNative
)

func (k CompositorKind) String() string {
	if k == CompositorNative {
		return "native"
	}
	return "draw"
}

// CompositeTileKind says how a tile composites.
type CompositeTileKind uint8

// CompositeTileKind values.
const (
	TileOpaque CompositeTileKind = iota
	TileAlpha
	// TileClear punches a hole through everything below it.
	TileClear
)

// CompositeTile is one picture cache tile placed in the framebuffer.
type CompositeTile struct {
	Kind CompositeTileKind `yaml:"kind"`
	// Surface is the tile texture. It is ignored when Color is set.
	Surface TileSurface   `yaml:"surface"`
	Color   *style.ColorF `yaml:"color,omitempty"`
	// Rect is the tile in device space, Clip the visible part of it.
	Rect geom.DeviceIntRect `yaml:"rect"`
	Clip geom.DeviceIntRect `yaml:"clip"`
	// Dirty is the part of Rect that changed this frame, in device space.
	Dirty geom.DeviceIntRect `yaml:"dirty"`
	// Z orders tiles back to front.
	Z int `yaml:"z"`
}

// Visible returns the part of the tile that can show.
func (t CompositeTile) Visible() (geom.DeviceIntRect, bool) {
	return t.Rect.Intersection(t.Clip)
}

// CompositeState is how a frame's tiles come together.
type CompositeState struct {
	Kind  CompositorKind  `yaml:"kind"`
	Tiles []CompositeTile `yaml:"tiles,omitempty"`
	// NativeSurfaces are listed in z-order, back to front.
	NativeSurfaces []NativeSurface `yaml:"native_surfaces,omitempty"`
	// DirtyRectsAreValid is false when tile dirty rects cannot be trusted,
	// such as after a scroll, so the whole framebuffer must be presented.
	DirtyRectsAreValid bool `yaml:"dirty_rects_valid"`
}

// DirtyRect returns the union of the dirty rects of every tile that is not
// a clear tile, limited to fb.
func (s *CompositeState) DirtyRect(fb geom.DeviceIntRect) geom.DeviceIntRect {
	var r geom.DeviceIntRect
	for _, t := range s.Tiles {
		if t.Kind == TileClear {
			continue
		}
		r = r.Union(t.Dirty)
	}
	r, _ = r.Intersection(fb)
	return r
}

// subtractRect returns the parts of r not covered by o, at most four.
func subtractRect(r, o geom.DeviceIntRect) []geom.DeviceIntRect {
	i, ok := r.Intersection(o)
	if !ok {
		return []geom.DeviceIntRect{r}
	}
	var out []geom.DeviceIntRect
	add := func(x0, y0, x1, y1 int32) {
		p := geom.DeviceIntRect{Min: geom.DeviceIntPoint{X: x0, Y: y0}, Max: geom.DeviceIntPoint{X: x1, Y: y1}}
		if !p.IsEmpty() {
			out = append(out, p)
		}
	}
	add(r.Min.X, r.Min.Y, r.Max.X, i.Min.Y)
	add(r.Min.X, i.Max.Y, r.Max.X, r.Max.Y)
	add(r.Min.X, i.Min.Y, i.Min.X, i.Max.Y)
	add(i.Max.X, i.Min.Y, r.Max.X, i.Max.Y)
	return out
}

// occluded reports whether the union of occluders covers r.
func occluded(r geom.DeviceIntRect, occluders []geom.DeviceIntRect) bool {
	rest := []geom.DeviceIntRect{r}
	for _, o := range occluders {
		var next []geom.DeviceIntRect
		for _, p := range rest {
			next = append(next, subtractRect(p, o)...)
		}
		rest = next
		if len(rest) == 0 {
			return true
		}
	}
	return false
}

// compositeSimple draws the frame's tiles into the bound framebuffer.
// Opaque tiles go front to back so later ones can be skipped when
// covered, clear tiles punch holes, and alpha tiles blend back to front.
// A non-nil dirty limits the work to that rect.
func (r *Renderer) compositeSimple(state *CompositeState, fb geom.DeviceIntRect, dirty *geom.DeviceIntRect, errs *RenderErrors) {
	if dirty != nil && dirty.IsEmpty() {
		return
	}
	if r.opts.ClearColor != nil {
		if err := r.dev.Clear(r.opts.ClearColor.ToColorF(), dirty); err != nil {
			errs.add(asRendererError(err, ErrorShaderBuild, "framebuffer clear"))
			return
		}
	}
	bounds := fb
	if dirty != nil {
		if b, ok := fb.Intersection(*dirty); ok {
			bounds = b
		} else {
			return
		}
	}

	tiles := slices.Clone(state.Tiles)
	slices.SortStableFunc(tiles, func(a, b CompositeTile) int { return cmp.Compare(a.Z, b.Z) })

	var occluders []geom.DeviceIntRect
	visible := make([]geom.DeviceIntRect, len(tiles))
	drawn := make([]bool, len(tiles))
	for i := len(tiles) - 1; i >= 0; i-- {
		v, ok := tiles[i].Visible()
		if ok {
			v, ok = v.Intersection(bounds)
		}
		if !ok || occluded(v, occluders) {
			continue
		}
		visible[i], drawn[i] = v, true
		if tiles[i].Kind == TileOpaque {
			occluders = append(occluders, v)
		}
	}

	draw := func(t CompositeTile, rect geom.DeviceIntRect, blend BlendMode) {
		call := DrawCall{Shader: ShaderComposite, Blend: blend, Rect: rect, Scissor: dirty, Instances: 1}
		switch {
		case t.Color != nil:
			call.Color = *t.Color
		case t.Kind == TileClear:
			call.Color = style.ColorF{A: 1}
		default:
			tex, ok := r.resolveTileSurface(t.Surface)
			if !ok {
				slogger().Warn("render: composite tile without texture", "texture", t.Surface.Texture)
				return
			}
			call.Textures[0] = tex
			call.Color = style.ColorF{R: 1, G: 1, B: 1, A: 1}
		}
		if err := r.draw(call); err != nil {
			errs.add(asRendererError(err, ErrorShaderBuild, "composite"))
		}
	}

	for i := len(tiles) - 1; i >= 0; i-- {
		if drawn[i] && tiles[i].Kind == TileOpaque {
			draw(tiles[i], visible[i], BlendModeNone)
		}
	}
	for i := range tiles {
		if drawn[i] && tiles[i].Kind == TileClear {
			draw(tiles[i], visible[i], BlendModePremultipliedDestOut)
		}
	}
	for i := range tiles {
		if drawn[i] && tiles[i].Kind == TileAlpha {
			draw(tiles[i], visible[i], BlendModePremultipliedAlpha)
		}
	}
}
