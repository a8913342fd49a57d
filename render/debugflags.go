// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"math/bits"
	"strings"
)

// DebugFlags is the set of renderer debugging switches.
type DebugFlags uint32

// DebugFlags bits.
const (
	DebugProfiler DebugFlags = 1 << iota
	DebugRenderTargets
	DebugTextureCache
	DebugGPUTimeQueries
	DebugGPUSampleQueries
	DebugDisableBatching
	DebugEpochs
	DebugEchoDriverMessages
	DebugShowOverdraw
	DebugGPUCache
	DebugTextureCacheClearEvicted
	DebugPictureCaching
	DebugPrimitives
	DebugZoom
	DebugSmallScreen
	DebugDisableOpaquePass
	DebugDisableAlphaPass
	DebugDisableClipMasks
	DebugDisableTextPrims
	DebugDisableGradientPrims
	DebugObscureImages
	DebugGlyphFlashing
	DebugSmartProfiler
	DebugInvalidation
	DebugTileCacheLogging
	DebugProfilerCapture
	DebugForcePictureInvalidation
	DebugWindowVisibility

	debugFlagCount = iota
)

var debugFlagNames = [debugFlagCount]string{
	"profiler",
	"render-target-dbg",
	"texture-cache-dbg",
	"gpu-time-queries",
	"gpu-sample-queries",
	"disable-batching",
	"epochs",
	"echo-driver-messages",
	"show-overdraw",
	"gpu-cache-dbg",
	"texture-cache-dbg-clear-evicted",
	"picture-caching-dbg",
	"primitive-dbg",
	"zoom-dbg",
	"small-screen",
	"disable-opaque-pass",
	"disable-alpha-pass",
	"disable-clip-masks",
	"disable-text-prims",
	"disable-gradient-prims",
	"obscure-images",
	"glyph-flashing",
	"smart-profiler",
	"invalidation-dbg",
	"tile-cache-logging-dbg",
	"profiler-capture",
	"force-picture-invalidation",
	"window-visibility-dbg",
}

// overlayFlags are the flags that draw onto the debug overlay.
const overlayFlags = DebugProfiler | DebugRenderTargets | DebugTextureCache |
	DebugEpochs | DebugGPUCache | DebugPictureCaching | DebugPrimitives |
	DebugZoom | DebugWindowVisibility

// Has reports whether every flag in o is set.
func (f DebugFlags) Has(o DebugFlags) bool { return f&o == o }

// NeedsOverlay reports whether any set flag renders on screen.
func (f DebugFlags) NeedsOverlay() bool { return f&overlayFlags != 0 }

// Names returns the names of the set flags in bit order.
func (f DebugFlags) Names() []string {
	names := make([]string, 0, bits.OnesCount32(uint32(f)))
	for i, name := range debugFlagNames {
		if f&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return names
}

func (f DebugFlags) String() string {
	if f == 0 {
		return "none"
	}
	return strings.Join(f.Names(), "|")
}

// ParseDebugFlag returns the flag called name.
func ParseDebugFlag(name string) (DebugFlags, error) {
	for i, n := range debugFlagNames {
		if n == name {
			return 1 << i, nil
		}
	}
	return 0, fmt.Errorf("render: unknown debug flag %q", name)
}

// ParseDebugFlags parses a list of flag names.
func ParseDebugFlags(names []string) (DebugFlags, error) {
	var f DebugFlags
	for _, n := range names {
		bit, err := ParseDebugFlag(strings.TrimSpace(n))
		if err != nil {
			return 0, err
		}
		f |= bit
	}
	return f, nil
}
