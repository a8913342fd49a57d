// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/style"
)

// DeviceHandle provides GPU device access from the host application.
//
// The compositor RECEIVES its device from the host, it does not create one.
// internal/halgpu turns a DeviceHandle into a Device.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, so any provider
// from the gpucontext ecosystem can be passed directly.
type DeviceHandle = gpucontext.DeviceProvider

// TextureID is a device texture handle. The zero value names no texture.
type TextureID uint32

// TextureFilter is the sampling filter of a texture.
type TextureFilter uint8

// TextureFilter values.
const (
	FilterNearest TextureFilter = iota
	FilterLinear
	FilterTrilinear
)

// TextureTarget is the binding target of a texture.
type TextureTarget uint8

// TextureTarget values.
const (
	Target2D TextureTarget = iota
	Target2DArray
	TargetRect
	TargetExternal
)

// TextureCategory says what a texture cache texture is used for.
type TextureCategory uint8

// TextureCategory values.
const (
	CategoryStandalone TextureCategory = iota
	CategoryAtlas
	CategoryPictureTile
	CategoryRenderTarget
)

// TextureDescriptor describes a texture to create.
type TextureDescriptor struct {
	// Label is an optional debug label. It does not take part in matching.
	Label    string                 `yaml:"label,omitempty"`
	Width    int32                  `yaml:"width"`
	Height   int32                  `yaml:"height"`
	Format   gputypes.TextureFormat `yaml:"format"`
	Filter   TextureFilter          `yaml:"filter"`
	Target   TextureTarget          `yaml:"target"`
	Shared   bool                   `yaml:"shared,omitempty"`
	HasDepth bool                   `yaml:"depth,omitempty"`
	Category TextureCategory        `yaml:"category"`
}

// DefaultTextureDescriptor returns a linear-filtered standalone 2D texture
// descriptor. Only the size and format need to be given.
func DefaultTextureDescriptor(width, height int32, format gputypes.TextureFormat) TextureDescriptor {
	return TextureDescriptor{
		Width:  width,
		Height: height,
		Format: format,
		Filter: FilterLinear,
		Target: Target2D,
	}
}

// Matches reports whether a texture created for d can serve o: every field
// but the label is equal.
func (d TextureDescriptor) Matches(o TextureDescriptor) bool {
	d.Label, o.Label = "", ""
	return d == o
}

// Size returns the texture size.
func (d TextureDescriptor) Size() geom.DeviceIntSize {
	return geom.DeviceIntSize{Width: d.Width, Height: d.Height}
}

func (d TextureDescriptor) String() string {
	return fmt.Sprintf("%dx%d fmt=%d filter=%d target=%d shared=%t depth=%t cat=%d",
		d.Width, d.Height, d.Format, d.Filter, d.Target, d.Shared, d.HasDepth, d.Category)
}

// DeviceCapabilities describes the capabilities of a GPU device.
type DeviceCapabilities struct {
	// MaxTextureSize is the maximum texture dimension supported.
	MaxTextureSize int32

	// SupportsAdvancedBlend indicates advanced blend equations are available.
	SupportsAdvancedBlend bool
	// SupportsCoherentAdvancedBlend indicates advanced blending needs no
	// barrier between overlapping draws.
	SupportsCoherentAdvancedBlend bool
	// SupportsDualSourceBlend indicates dual-source blend factors are available.
	SupportsDualSourceBlend bool
	// SupportsPartialClear indicates a region of a texture can be cleared.
	// Shared textures are zero-cleared on creation otherwise.
	SupportsPartialClear bool

	// VendorName is the GPU vendor name.
	VendorName string
	// DeviceName is the GPU device name.
	DeviceName string
}

// DrawTargetKind says where draws go.
type DrawTargetKind uint8

// DrawTargetKind values.
const (
	// DrawDefault is the window framebuffer.
	DrawDefault DrawTargetKind = iota
	// DrawTexture is a layer of a device texture.
	DrawTexture
	// DrawNative is a surface bound by the native compositor.
	DrawNative
)

// DrawTarget is a bound render destination.
type DrawTarget struct {
	Kind    DrawTargetKind
	Texture TextureID
	Layer   int
	Size    geom.DeviceIntSize
	// Origin and FBO come from a native compositor bind.
	Origin geom.DeviceIntPoint
	FBO    uint32
}

// DefaultTarget returns the framebuffer target of size s.
func DefaultTarget(s geom.DeviceIntSize) DrawTarget {
	return DrawTarget{Kind: DrawDefault, Size: s}
}

// TextureDrawTarget returns the draw target for a layer of texture id.
func TextureDrawTarget(id TextureID, layer int, s geom.DeviceIntSize) DrawTarget {
	return DrawTarget{Kind: DrawTexture, Texture: id, Layer: layer, Size: s}
}

// ShaderKind selects the program a DrawCall runs.
type ShaderKind uint8

// ShaderKind values.
const (
	ShaderBrushSolid ShaderKind = iota
	ShaderBrushImage
	ShaderBrushGradient
	ShaderText
	ShaderClipMask
	ShaderClearQuad
	ShaderComposite
	ShaderBlit
	ShaderDebugOverlay
)

var shaderNames = [...]string{
	ShaderBrushSolid:    "brush_solid",
	ShaderBrushImage:    "brush_image",
	ShaderBrushGradient: "brush_gradient",
	ShaderText:          "ps_text_run",
	ShaderClipMask:      "cs_clip_rectangle",
	ShaderClearQuad:     "ps_clear",
	ShaderComposite:     "composite",
	ShaderBlit:          "cs_blit",
	ShaderDebugOverlay:  "debug_overlay",
}

func (k ShaderKind) String() string {
	if int(k) < len(shaderNames) {
		return shaderNames[k]
	}
	return fmt.Sprintf("ShaderKind(%d)", k)
}

// DrawCall is one instanced draw.
type DrawCall struct {
	Shader ShaderKind
	Blend  BlendMode
	// Rect is the destination covered by the draw.
	Rect    geom.DeviceIntRect
	Scissor *geom.DeviceIntRect
	Color   style.ColorF
	// Textures are the bound inputs; unused slots are zero.
	Textures  [3]TextureID
	Instances int
}

// Device is the GPU capability the renderer draws with. A Device is owned
// by one Renderer and used from its goroutine only.
type Device interface {
	Capabilities() DeviceCapabilities

	CreateTexture(desc TextureDescriptor) (TextureID, error)
	DestroyTexture(id TextureID)
	// UploadTexture writes tightly packed pixels into rect of texture id.
	UploadTexture(id TextureID, rect geom.DeviceIntRect, data []byte) error

	BeginFrame() error
	BindDrawTarget(t DrawTarget) error
	// Clear fills the bound target with color, or only rect when non-nil.
	Clear(color style.ColorF, rect *geom.DeviceIntRect) error
	Draw(call DrawCall) error
	// BlendBarrier orders overlapping advanced blend draws.
	BlendBarrier()
	// ResetState drops cached bindings after foreign code touched the device.
	ResetState()
	EndFrame() error

	// CheckError returns the driver's pending error, wrapping
	// ErrOutOfMemory when the driver ran out of memory.
	CheckError() error
}

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used when the host has no GPU; halgpu.FromHandle rejects it.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo reports an unknown adapter for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
