// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides a generic LRU cache for GPU objects that are
// expensive to build and must be released when dropped.
//
// An evicted, deleted or purged entry is handed to the cache's release
// function, so a cache of render pipelines can destroy them on the device:
//
//	pipelines := cache.New[pipelineKey, hal.RenderPipeline](64, func(_ pipelineKey, p hal.RenderPipeline) {
//	    device.DestroyRenderPipeline(p)
//	})
//	p, err := pipelines.GetOrCreate(key, func() (hal.RenderPipeline, error) {
//	    return device.CreateRenderPipeline(desc)
//	})
//
// # Thread Safety
//
// Cache is safe for concurrent use. It must not be copied after creation.
// The release function runs with the cache locked and must not call back
// into the cache.
package cache
