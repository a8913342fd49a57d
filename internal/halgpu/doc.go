// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package halgpu implements render.Device on the gogpu/wgpu hardware
// abstraction layer.
//
// Every draw is a quad. Solid shaders (clears, brushes, clip masks) run
// the quad program and texture-sampling shaders (images, blits, composite)
// run the composite program; both are WGSL compiled to SPIR-V with naga at
// device creation. Render pipelines are built per program, blend mode and
// target format on first use and kept in an LRU cache.
//
// A Device is created from a host device with New or FromHandle, or on the
// noop backend with OpenNoop for headless use:
//
//	dev, err := halgpu.OpenNoop(halgpu.Config{})
//	if err != nil {
//	    return err
//	}
//	defer dev.Destroy()
//	r, err := render.NewRenderer(dev, render.DefaultOptions())
package halgpu
