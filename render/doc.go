// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws built frames on a GPU device and composites them to
// the window, either on the device or through a native compositor.
//
// # Key Principle
//
// The renderer RECEIVES a GPU device from the host application, it does NOT
// create its own. The host supplies a Device (see internal/halgpu for one on
// top of wgpu) and, optionally, a NativeCompositor and an
// ExternalImageHandler.
//
// # Threads
//
// Clients talk to the renderer only through its Channel. Every other
// Renderer method runs on the goroutine that owns the device:
//
//	r, err := render.NewRenderer(dev, render.DefaultOptions())
//	...
//	go builder.Run(ctx, r.Channel()) // sends PublishDocument and friends
//
//	for range vsync {
//	    if err := r.Update(); err != nil {
//	        log.Printf("update: %v", err)
//	    }
//	    res, err := r.Render(&size, bufferAge)
//	    ...
//	    swap(res.DirtyRects)
//	}
//
// # Frames
//
// A Frame is a list of passes. Each pass redraws texture cache layers,
// picture cache tiles, alpha (clip mask) targets and color targets, in that
// order. After the last pass the frame's CompositeState places the picture
// cache tiles on the framebuffer.
//
// With Options.PartialPresent set, Render tracks the dirty rects of the
// last frames and only redraws what the backbuffer of the given age lacks.
//
// # Errors
//
// Errors that do not stop a frame, such as a shader that failed to build
// for one target, are collected and returned as a *RenderErrors. A device
// that runs out of memory for Options.MaxOOMFrames consecutive frames makes
// Render panic.
package render
