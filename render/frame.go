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

// GPUCacheFrameID orders GPU cache updates. A frame may only reference
// updates that were applied before it is rendered.
type GPUCacheFrameID uint64

// CacheTextureID names a texture owned by the texture cache. Frames refer to
// textures by cache id; the TextureResolver maps them to device textures.
type CacheTextureID uint32

// DeferredResolveIndex indexes the external images resolved for a frame.
type DeferredResolveIndex uint32

// TextureSourceKind says where a batch input comes from.
type TextureSourceKind uint8

// TextureSourceKind values.
const (
	SourceNone TextureSourceKind = iota
	SourceCache
	SourceExternal
	SourceImage
)

// TextureSource is one texture input of a batch.
type TextureSource struct {
	Kind     TextureSourceKind    `yaml:"kind"`
	Cache    CacheTextureID       `yaml:"cache,omitempty"`
	External DeferredResolveIndex `yaml:"external,omitempty"`
	Image    resources.PackedKey  `yaml:"image,omitempty"`
}

// CacheSource returns a source reading texture cache texture id.
func CacheSource(id CacheTextureID) TextureSource {
	return TextureSource{Kind: SourceCache, Cache: id}
}

// ExternalSource returns a source reading deferred resolve i.
func ExternalSource(i DeferredResolveIndex) TextureSource {
	return TextureSource{Kind: SourceExternal, External: i}
}

// ImageSource returns a source reading the raw image key.
func ImageSource(key resources.ImageKey) TextureSource {
	return TextureSource{Kind: SourceImage, Image: key.Packed()}
}

// BatchKey groups primitives drawn with one shader, blend state and inputs.
type BatchKey struct {
	Shader   ShaderKind       `yaml:"shader"`
	Blend    BlendMode        `yaml:"blend"`
	Textures [3]TextureSource `yaml:"textures"`
}

// AlphaBatch is a run of instances sharing a BatchKey.
type AlphaBatch struct {
	Key   BatchKey             `yaml:"key"`
	Rects []geom.DeviceIntRect `yaml:"rects"`
	Color style.ColorF         `yaml:"color"`
}

// Bounds returns the union of the batch's instance rects.
func (b AlphaBatch) Bounds() geom.DeviceIntRect {
	var r geom.DeviceIntRect
	for _, ir := range b.Rects {
		r = r.Union(ir)
	}
	return r
}

// AlphaBatchContainer holds the opaque and transparent batches of a target
// region. Opaque batches are drawn front to back with blending off, alpha
// batches back to front.
type AlphaBatchContainer struct {
	OpaqueBatches []AlphaBatch        `yaml:"opaque,omitempty"`
	AlphaBatches  []AlphaBatch        `yaml:"alpha,omitempty"`
	TaskScissor   *geom.DeviceIntRect `yaml:"scissor,omitempty"`
}

// SurfaceKind says what backs a picture cache tile.
type SurfaceKind uint8

// SurfaceKind values.
const (
	SurfaceTexture SurfaceKind = iota
	SurfaceNative
)

// TileSurface is the storage of a picture cache tile.
type TileSurface struct {
	Kind    SurfaceKind    `yaml:"kind"`
	Texture CacheTextureID `yaml:"texture,omitempty"`
	Layer   int            `yaml:"layer,omitempty"`
	Native  NativeTileID   `yaml:"native,omitempty"`
}

// PictureCacheTarget redraws one picture cache tile.
type PictureCacheTarget struct {
	Surface TileSurface        `yaml:"surface"`
	Size    geom.DeviceIntSize `yaml:"size"`
	// DirtyRect is the part of the tile to redraw, ValidRect the part with
	// content. Both are in tile space.
	DirtyRect geom.DeviceIntRect `yaml:"dirty"`
	ValidRect geom.DeviceIntRect `yaml:"valid"`
	// Clear fills the dirty rect first when set.
	Clear *style.ColorF `yaml:"clear,omitempty"`
	// Exactly one of Batches and BlitFrom is set.
	Batches  *AlphaBatchContainer `yaml:"batches,omitempty"`
	BlitFrom *RenderTaskID        `yaml:"blit_from,omitempty"`
}

// Blit copies a region of a source into a target.
type Blit struct {
	Source  TextureSource      `yaml:"source"`
	SrcRect geom.DeviceIntRect `yaml:"src"`
	DstRect geom.DeviceIntRect `yaml:"dst"`
}

// TextureCacheTarget updates a texture cache layer.
type TextureCacheTarget struct {
	Texture CacheTextureID       `yaml:"texture"`
	Layer   int                  `yaml:"layer"`
	Clears  []geom.DeviceIntRect `yaml:"clears,omitempty"`
	Blits   []Blit               `yaml:"blits,omitempty"`
	Batches []AlphaBatch         `yaml:"batches,omitempty"`
}

// ColorTarget is an intermediate RGBA target.
type ColorTarget struct {
	Texture    CacheTextureID        `yaml:"texture"`
	Layer      int                   `yaml:"layer"`
	Size       geom.DeviceIntSize    `yaml:"size"`
	Clears     []geom.DeviceIntRect  `yaml:"clears,omitempty"`
	Containers []AlphaBatchContainer `yaml:"containers,omitempty"`
	Blits      []Blit                `yaml:"blits,omitempty"`
}

// AlphaTarget is an intermediate single-channel target holding clip masks.
type AlphaTarget struct {
	Texture CacheTextureID       `yaml:"texture"`
	Layer   int                  `yaml:"layer"`
	Size    geom.DeviceIntSize   `yaml:"size"`
	Clears  []geom.DeviceIntRect `yaml:"clears,omitempty"`
	Clips   []AlphaBatch         `yaml:"clips,omitempty"`
}

// RenderPass is one step of frame execution. Targets in a pass only read
// from targets of earlier passes.
type RenderPass struct {
	TextureCache []TextureCacheTarget `yaml:"texture_cache,omitempty"`
	PictureCache []PictureCacheTarget `yaml:"picture_cache,omitempty"`
	Alpha        []AlphaTarget        `yaml:"alpha,omitempty"`
	Color        []ColorTarget        `yaml:"color,omitempty"`
}

// DeferredResolve is an external image fetched through the external image
// handler when the frame starts rendering.
type DeferredResolve struct {
	Index     DeferredResolveIndex      `yaml:"index"`
	Image     resources.ExternalImageID `yaml:"image"`
	Channel   uint8                     `yaml:"channel"`
	Rendering displaylist.ImageRendering `yaml:"rendering"`
}

// DebugItem is a rect or text line a frame asks the overlay to draw.
type DebugItem struct {
	Rect  *geom.DeviceIntRect `yaml:"rect,omitempty"`
	Text  string              `yaml:"text,omitempty"`
	At    geom.DeviceIntPoint `yaml:"at"`
	Color style.ColorU        `yaml:"color"`
}

// Frame is a fully built frame, ready for the renderer.
type Frame struct {
	Passes     []RenderPass    `yaml:"passes"`
	Tasks      RenderTaskGraph `yaml:"tasks"`
	GPUBufferF []float32       `yaml:"gpu_buffer_f,omitempty"`
	GPUBufferI []int32         `yaml:"gpu_buffer_i,omitempty"`
	Composite  CompositeState  `yaml:"composite"`

	DeferredResolves []DeferredResolve `yaml:"deferred_resolves,omitempty"`
	GPUCacheFrameID  GPUCacheFrameID   `yaml:"gpu_cache_frame_id"`
	DebugItems       []DebugItem       `yaml:"debug_items,omitempty"`

	// HasBeenRendered is set once the renderer drew the frame.
	HasBeenRendered bool `yaml:"rendered"`
	// MustBeDrawn marks frames whose texture cache updates later frames
	// depend on. Such a frame is drawn off-screen before it is replaced.
	MustBeDrawn bool `yaml:"must_be_drawn"`

	DeviceRect geom.DeviceIntRect                        `yaml:"device_rect"`
	Epochs     map[resources.PipelineID]resources.Epoch `yaml:"-"`
	Memory     *FrameMemory                              `yaml:"-"`
}

// Validate checks what the renderer cannot recover from mid-frame.
func (f *Frame) Validate() error {
	if _, err := f.Tasks.AssignPasses(); err != nil {
		return err
	}
	for i, p := range f.Passes {
		for j, t := range p.PictureCache {
			if (t.Batches == nil) == (t.BlitFrom == nil) {
				return fmt.Errorf("render: pass %d picture target %d: need exactly one of batches and blit", i, j)
			}
		}
	}
	return nil
}
