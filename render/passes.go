// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/style"
)

// drawPass draws the targets of one pass. A target that fails is skipped
// and the error recorded; the rest of the frame still draws.
func (r *Renderer) drawPass(p *RenderPass, nativePresent bool, errs *RenderErrors) {
	for i := range p.TextureCache {
		if err := r.drawTextureCacheTarget(&p.TextureCache[i]); err != nil {
			errs.add(asRendererError(err, ErrorShaderBuild, "texture cache target"))
		}
	}
	for i := range p.PictureCache {
		if err := r.drawPictureTarget(&p.PictureCache[i], nativePresent); err != nil {
			errs.add(asRendererError(err, ErrorShaderBuild, "picture cache target"))
		}
	}
	for i := range p.Alpha {
		r.stats.AlphaTargetCount++
		if err := r.drawAlphaTarget(&p.Alpha[i]); err != nil {
			errs.add(asRendererError(err, ErrorShaderBuild, "alpha target"))
		}
	}
	for i := range p.Color {
		r.stats.ColorTargetCount++
		if err := r.drawColorTarget(&p.Color[i]); err != nil {
			errs.add(asRendererError(err, ErrorShaderBuild, "color target"))
		}
	}
}

func (r *Renderer) bindCacheTexture(id CacheTextureID, layer int, size geom.DeviceIntSize) error {
	tex, ok := r.textures.Resolve(id)
	if !ok {
		return fmt.Errorf("render: target uses unknown cache texture %d", id)
	}
	if size.IsEmpty() {
		if d, ok := r.textures.Descriptor(id); ok {
			size = d.Size()
		}
	}
	return r.dev.BindDrawTarget(TextureDrawTarget(tex, layer, size))
}

func (r *Renderer) clearRects(color style.ColorF, rects []geom.DeviceIntRect) error {
	for i := range rects {
		if err := r.dev.Clear(color, &rects[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) drawBlits(blits []Blit) error {
	for _, b := range blits {
		src, ok := r.resolveSource(b.Source)
		if !ok {
			return fmt.Errorf("render: blit from unresolved source %+v", b.Source)
		}
		call := DrawCall{
			Shader:    ShaderBlit,
			Blend:     BlendModeNone,
			Rect:      b.DstRect,
			Color:     style.ColorF{R: 1, G: 1, B: 1, A: 1},
			Textures:  [3]TextureID{src},
			Instances: 1,
		}
		if err := r.draw(call); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) drawTextureCacheTarget(t *TextureCacheTarget) error {
	if err := r.bindCacheTexture(t.Texture, t.Layer, geom.DeviceIntSize{}); err != nil {
		return err
	}
	if err := r.clearRects(style.ColorF{}, t.Clears); err != nil {
		return err
	}
	if err := r.drawBlits(t.Blits); err != nil {
		return err
	}
	for _, b := range t.Batches {
		if err := r.drawBatch(b, nil, false, false); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) drawAlphaTarget(t *AlphaTarget) error {
	if err := r.bindCacheTexture(t.Texture, t.Layer, t.Size); err != nil {
		return err
	}
	if err := r.clearRects(style.ColorF{}, t.Clears); err != nil {
		return err
	}
	if r.opts.DebugFlags.Has(DebugDisableClipMasks) {
		return nil
	}
	for _, b := range t.Clips {
		if err := r.drawBatch(b, nil, false, false); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) drawColorTarget(t *ColorTarget) error {
	if err := r.bindCacheTexture(t.Texture, t.Layer, t.Size); err != nil {
		return err
	}
	if err := r.clearRects(style.ColorF{}, t.Clears); err != nil {
		return err
	}
	for i := range t.Containers {
		if err := r.drawContainer(&t.Containers[i], nil); err != nil {
			return err
		}
	}
	return r.drawBlits(t.Blits)
}

// drawPictureTarget redraws the dirty part of one picture cache tile,
// either into a cache texture or into a native compositor surface.
func (r *Renderer) drawPictureTarget(t *PictureCacheTarget, nativePresent bool) error {
	r.stats.PictureTileCount++
	switch t.Surface.Kind {
	case SurfaceNative:
		if !nativePresent {
			return nil
		}
		id := t.Surface.Native
		if !r.native.needsDraw(id) {
			return nil
		}
		return r.native.drawTile(id, t.DirtyRect, t.ValidRect, func(info NativeSurfaceInfo) error {
			return r.drawPictureContent(t, DrawTarget{Kind: DrawNative, Size: t.Size, Origin: info.Origin, FBO: info.FBO})
		})
	default:
		tex, ok := r.textures.Resolve(t.Surface.Texture)
		if !ok {
			return fmt.Errorf("render: picture tile uses unknown cache texture %d", t.Surface.Texture)
		}
		return r.drawPictureContent(t, TextureDrawTarget(tex, t.Surface.Layer, t.Size))
	}
}

func (r *Renderer) drawPictureContent(t *PictureCacheTarget, target DrawTarget) error {
	if err := r.dev.BindDrawTarget(target); err != nil {
		return err
	}
	scissor := t.DirtyRect
	if t.Clear != nil {
		if r.opts.ClearWithQuads {
			err := r.draw(DrawCall{
				Shader:    ShaderClearQuad,
				Blend:     BlendModeNone,
				Rect:      scissor,
				Scissor:   &scissor,
				Color:     *t.Clear,
				Instances: 1,
			})
			if err != nil {
				return err
			}
		} else if err := r.dev.Clear(*t.Clear, &scissor); err != nil {
			return err
		}
	}
	if t.Batches != nil {
		return r.drawContainer(t.Batches, &scissor)
	}

	task, ok := r.frame.Tasks.Task(*t.BlitFrom)
	if !ok {
		return fmt.Errorf("%w: %d blitted into picture tile", ErrUnknownTask, *t.BlitFrom)
	}
	src, ok := r.textures.Resolve(task.Target)
	if !ok {
		return fmt.Errorf("render: task %d in unknown cache texture %d", task.ID, task.Target)
	}
	return r.draw(DrawCall{
		Shader:    ShaderBlit,
		Blend:     BlendModeNone,
		Rect:      scissor,
		Scissor:   &scissor,
		Color:     style.ColorF{R: 1, G: 1, B: 1, A: 1},
		Textures:  [3]TextureID{src},
		Instances: 1,
	})
}

// drawContainer draws opaque batches front to back and then alpha batches
// in order, all limited to the intersection of scissor and the
// container's task scissor.
func (r *Renderer) drawContainer(c *AlphaBatchContainer, scissor *geom.DeviceIntRect) error {
	clip := scissor
	if c.TaskScissor != nil {
		s := *c.TaskScissor
		if clip != nil {
			var ok bool
			if s, ok = s.Intersection(*clip); !ok {
				return nil
			}
		}
		clip = &s
	}
	flags := r.opts.DebugFlags
	if !flags.Has(DebugDisableOpaquePass) {
		for i := len(c.OpaqueBatches) - 1; i >= 0; i-- {
			if err := r.drawBatch(c.OpaqueBatches[i], clip, true, false); err != nil {
				return err
			}
		}
	}
	if flags.Has(DebugDisableAlphaPass) {
		return nil
	}
	prevAdvanced := false
	for _, b := range c.AlphaBatches {
		advanced := b.Key.Blend.IsAdvanced()
		if err := r.drawBatch(b, clip, false, advanced && prevAdvanced); err != nil {
			return err
		}
		prevAdvanced = advanced
	}
	return nil
}

// drawBatch draws one batch. barrier asks for a blend barrier first when
// the device's advanced blending is not coherent.
func (r *Renderer) drawBatch(b AlphaBatch, scissor *geom.DeviceIntRect, opaque, barrier bool) error {
	flags := r.opts.DebugFlags
	switch {
	case b.Key.Shader == ShaderText && flags.Has(DebugDisableTextPrims),
		b.Key.Shader == ShaderBrushGradient && flags.Has(DebugDisableGradientPrims):
		return nil
	}
	if len(b.Rects) == 0 {
		return nil
	}

	call := DrawCall{Shader: b.Key.Shader, Blend: b.Key.Blend, Scissor: scissor, Color: b.Color}
	if opaque {
		call.Blend = BlendModeNone
	}
	for i, src := range b.Key.Textures {
		tex, ok := r.resolveSource(src)
		if !ok {
			return fmt.Errorf("render: %s batch with unresolved texture %+v", b.Key.Shader, src)
		}
		call.Textures[i] = tex
	}
	if flags.Has(DebugObscureImages) && call.Shader == ShaderBrushImage {
		call.Shader = ShaderBrushSolid
		call.Textures = [3]TextureID{}
		call.Color = style.ColorF{R: 0.5, G: 0.5, B: 0.5, A: 1}
	}

	if barrier && call.Blend.IsAdvanced() && !r.caps.SupportsCoherentAdvancedBlend && r.opts.AdvancedBlendBarriers {
		r.dev.BlendBarrier()
	}
	if flags.Has(DebugDisableBatching) {
		for _, rect := range b.Rects {
			call.Rect, call.Instances = rect, 1
			if err := r.draw(call); err != nil {
				return err
			}
		}
		return nil
	}
	call.Rect, call.Instances = b.Bounds(), len(b.Rects)
	return r.draw(call)
}
