// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"time"

	"github.com/gogpu/compositor/geom"
)

// RendererStats is what one Render call did.
type RendererStats struct {
	TotalDrawCalls   int
	AlphaTargetCount int
	ColorTargetCount int
	PictureTileCount int
	TexturesCreated  int
	TexturesReused   int
	TextureUploadMB  float64

	ResourceUploadTime time.Duration
	GPUCacheUploadTime time.Duration

	// CPU time spent in each phase of the frame.
	UpdateTime    time.Duration
	PassTime      time.Duration
	CompositeTime time.Duration
	TotalTime     time.Duration
}

// RenderResults is returned by Render.
type RenderResults struct {
	Stats RendererStats
	// DirtyRects is the region to present when partial present is enabled.
	DirtyRects []geom.DeviceIntRect
	// Rendered is false when there was no document to render.
	Rendered bool
}
