// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/compositor/geom"

// presentPlan is the partial present decision for one frame.
type presentPlan struct {
	// dirtyRects is reported to the client for presentation.
	dirtyRects []geom.DeviceIntRect
	// drawRect limits composition; nil redraws the whole framebuffer.
	drawRect *geom.DeviceIntRect
}

// planPresent works out what part of a backbuffer of age bufferAge must be
// redrawn and presented. The frame's dirty rect is pushed onto the damage
// history after the damage of older frames is read.
func (r *Renderer) planPresent(state *CompositeState, fb geom.DeviceIntRect, bufferAge int) presentPlan {
	if !r.opts.PartialPresent {
		return presentPlan{}
	}
	defer func() { r.forceRedraw = false }()

	damage, haveHistory := r.damage.DamageRect(bufferAge)

	valid := state.DirtyRectsAreValid &&
		!r.forceRedraw &&
		!r.opts.DebugFlags.NeedsOverlay() &&
		(haveHistory || !r.opts.RequireBufferAge)

	combined := fb
	if valid {
		combined = state.DirtyRect(fb)
	}

	total := fb
	if valid && haveHistory {
		total = combined.Union(damage)
	}
	r.damage.PushDirtyRect(combined)

	var plan presentPlan
	if !combined.IsEmpty() {
		plan.dirtyRects = []geom.DeviceIntRect{combined}
	}
	plan.drawRect = &total
	slogger().Debug("render: partial present", "dirty", combined, "draw", total, "age", bufferAge)
	return plan
}
