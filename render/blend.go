// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/compositor/style"
)

// BlendKind is the blend equation family of a batch.
type BlendKind uint8

// BlendKind values.
const (
	BlendNone BlendKind = iota
	BlendAlpha
	BlendPremultipliedAlpha
	BlendPremultipliedDestOut
	BlendSubpixelDualSource
	BlendScreen
	BlendExclusion
	BlendPlusLighter
	BlendMultiplyDualSource
	BlendAdvanced
)

// BlendMode selects the blend state of a batch. Mode is meaningful only
// for BlendAdvanced.
type BlendMode struct {
	Kind BlendKind         `yaml:"kind"`
	Mode style.MixBlendMode `yaml:"mode,omitempty"`
}

// Simple blend modes.
var (
	BlendModeNone                  = BlendMode{Kind: BlendNone}
	BlendModeAlpha                 = BlendMode{Kind: BlendAlpha}
	BlendModePremultipliedAlpha    = BlendMode{Kind: BlendPremultipliedAlpha}
	BlendModePremultipliedDestOut  = BlendMode{Kind: BlendPremultipliedDestOut}
	BlendModeSubpixelDualSource    = BlendMode{Kind: BlendSubpixelDualSource}
	BlendModeScreen                = BlendMode{Kind: BlendScreen}
	BlendModeExclusion             = BlendMode{Kind: BlendExclusion}
	BlendModePlusLighter           = BlendMode{Kind: BlendPlusLighter}
	BlendModeMultiplyDualSource    = BlendMode{Kind: BlendMultiplyDualSource}
)

// Advanced returns the advanced blend mode for m.
func Advanced(m style.MixBlendMode) BlendMode {
	return BlendMode{Kind: BlendAdvanced, Mode: m}
}

// IsAdvanced reports whether b uses an advanced blend equation.
func (b BlendMode) IsAdvanced() bool { return b.Kind == BlendAdvanced }

// NeedsDualSource reports whether b needs dual-source blending.
func (b BlendMode) NeedsDualSource() bool {
	return b.Kind == BlendSubpixelDualSource || b.Kind == BlendMultiplyDualSource
}

func (b BlendMode) String() string {
	switch b.Kind {
	case BlendNone:
		return "none"
	case BlendAlpha:
		return "alpha"
	case BlendPremultipliedAlpha:
		return "premultiplied-alpha"
	case BlendPremultipliedDestOut:
		return "premultiplied-dest-out"
	case BlendSubpixelDualSource:
		return "subpixel-dual-source"
	case BlendScreen:
		return "screen"
	case BlendExclusion:
		return "exclusion"
	case BlendPlusLighter:
		return "plus-lighter"
	case BlendMultiplyDualSource:
		return "multiply-dual-source"
	case BlendAdvanced:
		return "advanced(" + b.Mode.String() + ")"
	}
	return fmt.Sprintf("BlendMode(%d)", b.Kind)
}

// FromMixBlendMode lowers a mix-blend-mode to a fixed-function blend mode.
// Coherent advanced blending is preferred, then a simple blend equivalent,
// then dual-source for multiply, then non-coherent advanced blending. It
// returns false when no blend state can express mode, in which case the
// caller composites through a mix-blend shader instead.
func FromMixBlendMode(mode style.MixBlendMode, advanced, coherent, dualSource bool) (BlendMode, bool) {
	if advanced && coherent {
		return Advanced(mode), true
	}
	switch mode {
	case style.MixBlendScreen:
		return BlendModeScreen, true
	case style.MixBlendExclusion:
		return BlendModeExclusion, true
	case style.MixBlendPlusLighter:
		return BlendModePlusLighter, true
	case style.MixBlendMultiply:
		if dualSource {
			return BlendModeMultiplyDualSource, true
		}
	}
	if advanced {
		return Advanced(mode), true
	}
	return BlendModeNone, false
}

func component(src, dst gputypes.BlendFactor) gputypes.BlendComponent {
	return gputypes.BlendComponent{SrcFactor: src, DstFactor: dst, Operation: gputypes.BlendOperationAdd}
}

// GPUBlendState returns the fixed-function state for b. It returns nil for
// BlendNone, and false for modes needing dual-source factors or an advanced
// equation, which WebGPU blend states cannot describe.
func (b BlendMode) GPUBlendState() (*gputypes.BlendState, bool) {
	var s gputypes.BlendState
	switch b.Kind {
	case BlendNone:
		return nil, true
	case BlendAlpha:
		s.Color = component(gputypes.BlendFactorSrcAlpha, gputypes.BlendFactorOneMinusSrcAlpha)
		s.Alpha = component(gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha)
	case BlendPremultipliedAlpha:
		s = gputypes.BlendStatePremultiplied()
	case BlendPremultipliedDestOut:
		s.Color = component(gputypes.BlendFactorZero, gputypes.BlendFactorOneMinusSrcAlpha)
		s.Alpha = component(gputypes.BlendFactorZero, gputypes.BlendFactorOneMinusSrcAlpha)
	case BlendScreen:
		s.Color = component(gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrc)
		s.Alpha = component(gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha)
	case BlendExclusion:
		s.Color = component(gputypes.BlendFactorOneMinusDst, gputypes.BlendFactorOneMinusSrc)
		s.Alpha = component(gputypes.BlendFactorOne, gputypes.BlendFactorOneMinusSrcAlpha)
	case BlendPlusLighter:
		s.Color = component(gputypes.BlendFactorOne, gputypes.BlendFactorOne)
		s.Alpha = component(gputypes.BlendFactorOne, gputypes.BlendFactorOne)
	default:
		return nil, false
	}
	return &s, true
}
