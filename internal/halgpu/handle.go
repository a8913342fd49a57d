// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/compositor/render"
)

// ErrNoHALAccess is returned by FromHandle for handles that do not expose
// their HAL device and queue.
var ErrNoHALAccess = errors.New("halgpu: device handle does not expose HAL types")

// halProvider is implemented by gpucontext providers that give direct HAL
// access, such as the gogpu application window.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// FromHandle builds a Device on the GPU device of a host DeviceHandle. The
// host keeps ownership of the HAL device; Destroy releases only the objects
// the Device created. The handle's surface format is used for the default
// framebuffer unless cfg sets one.
func FromHandle(h render.DeviceHandle, cfg Config) (*Device, error) {
	if h == nil {
		return nil, ErrNoHALAccess
	}
	if _, null := h.(render.NullDeviceHandle); null || h.Device() == nil {
		return nil, fmt.Errorf("%w: null device", ErrNoHALAccess)
	}
	hp, ok := h.(halProvider)
	if !ok {
		return nil, ErrNoHALAccess
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNoHALAccess)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNoHALAccess)
	}
	if cfg.SurfaceFormat == gputypes.TextureFormatUndefined {
		cfg.SurfaceFormat = h.SurfaceFormat()
	}
	return New(device, queue, cfg)
}
