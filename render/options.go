// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/compositor/style"
)

// Options configures a Renderer.
type Options struct {
	// ClearColor fills the framebuffer before composition. Nil skips the clear.
	ClearColor *style.ColorU
	DebugFlags DebugFlags

	// PartialPresent enables dirty rect tracking for presentation.
	PartialPresent bool
	// RequireBufferAge says the platform only preserves backbuffer
	// contents when it reports a buffer age.
	RequireBufferAge bool

	// MaxTextureSize caps texture allocations below the device limit. 0 uses
	// the device limit.
	MaxTextureSize int32

	// ClearWithQuads clears picture cache tiles with a drawn quad instead of
	// a scissored clear, for drivers where the latter is unreliable.
	ClearWithQuads bool
	// BatchedUpload packs texture uploads into staging buffers.
	BatchedUpload bool
	// AdvancedBlendBarriers issues a barrier between advanced blend batches
	// on devices without coherent advanced blending.
	AdvancedBlendBarriers bool

	// NativeCompositor enables the native compositor when the host supplied
	// one and a document asks for it.
	NativeCompositor bool

	// ChannelCapacity bounds the client message channel.
	ChannelCapacity int

	// MaxOOMFrames is the number of consecutive out of memory frames after
	// which rendering panics.
	MaxOOMFrames int

	// OverlayLocale formats numbers on the debug overlay, such as "en" or "de".
	OverlayLocale string
}

// DefaultOptions returns the options a Renderer uses when given none.
func DefaultOptions() Options {
	white := style.White
	return Options{
		ClearColor:            &white,
		AdvancedBlendBarriers: true,
		ChannelCapacity:       64,
		MaxOOMFrames:          5,
		OverlayLocale:         "en",
	}
}

// optionsFile is the TOML layout of Options.
type optionsFile struct {
	ClearColor            *style.ColorU `toml:"clear_color,omitempty"`
	DebugFlags            []string      `toml:"debug_flags,omitempty"`
	PartialPresent        *bool         `toml:"partial_present,omitempty"`
	RequireBufferAge      *bool         `toml:"require_buffer_age,omitempty"`
	MaxTextureSize        *int32        `toml:"max_texture_size,omitempty"`
	ClearWithQuads        *bool         `toml:"clear_with_quads,omitempty"`
	BatchedUpload         *bool         `toml:"batched_upload,omitempty"`
	AdvancedBlendBarriers *bool         `toml:"advanced_blend_barriers,omitempty"`
	NativeCompositor      *bool         `toml:"native_compositor,omitempty"`
	ChannelCapacity       *int          `toml:"channel_capacity,omitempty"`
	MaxOOMFrames          *int          `toml:"max_oom_frames,omitempty"`
	OverlayLocale         *string       `toml:"overlay_locale,omitempty"`
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// ParseOptions decodes TOML on top of DefaultOptions. Unknown keys are errors.
func ParseOptions(data []byte) (Options, error) {
	var f optionsFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return Options{}, fmt.Errorf("render: parse options: %w", err)
	}

	o := DefaultOptions()
	if f.ClearColor != nil {
		c := *f.ClearColor
		o.ClearColor = &c
	}
	flags, err := ParseDebugFlags(f.DebugFlags)
	if err != nil {
		return Options{}, err
	}
	o.DebugFlags = flags
	setIf(&o.PartialPresent, f.PartialPresent)
	setIf(&o.RequireBufferAge, f.RequireBufferAge)
	setIf(&o.MaxTextureSize, f.MaxTextureSize)
	setIf(&o.ClearWithQuads, f.ClearWithQuads)
	setIf(&o.BatchedUpload, f.BatchedUpload)
	setIf(&o.AdvancedBlendBarriers, f.AdvancedBlendBarriers)
	setIf(&o.NativeCompositor, f.NativeCompositor)
	setIf(&o.ChannelCapacity, f.ChannelCapacity)
	setIf(&o.MaxOOMFrames, f.MaxOOMFrames)
	setIf(&o.OverlayLocale, f.OverlayLocale)

	if o.ChannelCapacity <= 0 {
		return Options{}, fmt.Errorf("render: channel_capacity must be positive, got %d", o.ChannelCapacity)
	}
	if o.MaxOOMFrames <= 0 {
		return Options{}, fmt.Errorf("render: max_oom_frames must be positive, got %d", o.MaxOOMFrames)
	}
	return o, nil
}

// LoadOptions reads options from a TOML file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, &RendererError{Kind: ErrorIO, Op: path, Err: err}
	}
	return ParseOptions(data)
}

// EncodeTOML encodes o in the layout ParseOptions reads.
func (o Options) EncodeTOML() ([]byte, error) {
	f := optionsFile{
		ClearColor:            o.ClearColor,
		DebugFlags:            o.DebugFlags.Names(),
		PartialPresent:        &o.PartialPresent,
		RequireBufferAge:      &o.RequireBufferAge,
		MaxTextureSize:        &o.MaxTextureSize,
		ClearWithQuads:        &o.ClearWithQuads,
		BatchedUpload:         &o.BatchedUpload,
		AdvancedBlendBarriers: &o.AdvancedBlendBarriers,
		NativeCompositor:      &o.NativeCompositor,
		ChannelCapacity:       &o.ChannelCapacity,
		MaxOOMFrames:          &o.MaxOOMFrames,
		OverlayLocale:         &o.OverlayLocale,
	}
	return toml.Marshal(f)
}

// Parameter is a renderer parameter that can be changed at runtime.
type Parameter uint8

// Parameter values.
const (
	ParamBatchedUpload Parameter = iota
	ParamClearWithQuads
	ParamAdvancedBlendBarriers
)

func (p Parameter) String() string {
	switch p {
	case ParamBatchedUpload:
		return "batched-upload"
	case ParamClearWithQuads:
		return "clear-with-quads"
	case ParamAdvancedBlendBarriers:
		return "advanced-blend-barriers"
	}
	return fmt.Sprintf("Parameter(%d)", p)
}

func (o *Options) setParameter(p Parameter, v bool) {
	switch p {
	case ParamBatchedUpload:
		o.BatchedUpload = v
	case ParamClearWithQuads:
		o.ClearWithQuads = v
	case ParamAdvancedBlendBarriers:
		o.AdvancedBlendBarriers = v
	}
}
