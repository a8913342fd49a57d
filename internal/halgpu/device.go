// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halgpu

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/internal/cache"
	"github.com/gogpu/compositor/render"
)

// Errors returned by Device.
var (
	// ErrNoFrame is returned by draw calls made outside BeginFrame/EndFrame.
	ErrNoFrame = errors.New("halgpu: no frame in progress")

	// ErrNoTarget is returned by Clear and Draw before BindDrawTarget.
	ErrNoTarget = errors.New("halgpu: no draw target bound")

	// ErrUnknownTexture is returned for texture ids the device did not create.
	ErrUnknownTexture = errors.New("halgpu: unknown texture")

	// ErrGPUTimeout is returned by EndFrame when the GPU does not finish a
	// frame within Config.SubmitTimeout.
	ErrGPUTimeout = errors.New("halgpu: timed out waiting for the GPU")
)

// Config configures a Device.
type Config struct {
	// SurfaceFormat is the format of the default framebuffer and of native
	// compositor surfaces. Zero selects BGRA8Unorm.
	SurfaceFormat gputypes.TextureFormat

	// MaxTextureSize is the largest texture side the device reports.
	// Zero takes the limit of gputypes.DefaultLimits.
	MaxTextureSize int32

	// MaxPipelines bounds the pipeline cache. Zero selects 64.
	MaxPipelines int

	// AdapterName is reported as the device name.
	AdapterName string

	// SubmitTimeout bounds the wait for a submitted frame. Zero selects
	// five seconds.
	SubmitTimeout time.Duration
}

// Device implements render.Device on a wgpu HAL device.
//
// Each frame records one command buffer. BindDrawTarget starts a render
// pass on the target, and EndFrame submits the buffer and polls the queue until it completes.
// The default framebuffer is an offscreen texture of the bound size, which
// the host reads with Framebuffer.
type Device struct {
	device  hal.Device
	queue   hal.Queue
	release func()
	timeout time.Duration

	caps   render.DeviceCapabilities
	format gputypes.TextureFormat

	modules    [programCount]hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	samplers   [2]hal.Sampler
	pipelines  *cache.Cache[pipelineKey, hal.RenderPipeline]

	textures    map[render.TextureID]*texture
	nextID      render.TextureID
	white       *texture
	framebuffer *texture
	native      map[uint32]*texture

	frame   *frameState
	pending error
}

// texture is a device texture with its default view.
type texture struct {
	desc render.TextureDescriptor
	tex  hal.Texture
	view hal.TextureView
}

// New wraps a HAL device and queue owned by the caller.
func New(device hal.Device, queue hal.Queue, cfg Config) (*Device, error) {
	if device == nil || queue == nil {
		return nil, errors.New("halgpu: nil device or queue")
	}
	if cfg.SurfaceFormat == gputypes.TextureFormatUndefined {
		cfg.SurfaceFormat = gputypes.TextureFormatBGRA8Unorm
	}
	if cfg.MaxTextureSize <= 0 {
		cfg.MaxTextureSize = int32(gputypes.DefaultLimits().MaxTextureDimension2D)
	}
	if cfg.MaxPipelines <= 0 {
		cfg.MaxPipelines = 64
	}
	if cfg.SubmitTimeout <= 0 {
		cfg.SubmitTimeout = defaultSubmitTimeout
	}

	d := &Device{
		device:  device,
		queue:   queue,
		timeout: cfg.SubmitTimeout,
		format:  cfg.SurfaceFormat,
		caps: render.DeviceCapabilities{
			MaxTextureSize:       cfg.MaxTextureSize,
			SupportsPartialClear: true,
			VendorName:           "wgpu",
			DeviceName:           cfg.AdapterName,
		},
		textures: make(map[render.TextureID]*texture),
		native:   make(map[uint32]*texture),
	}
	d.pipelines = cache.New(cfg.MaxPipelines, func(_ pipelineKey, p hal.RenderPipeline) {
		d.device.DestroyRenderPipeline(p)
	})

	if err := d.init(); err != nil {
		d.Destroy()
		return nil, err
	}
	slogger().Info("halgpu: device ready",
		"adapter", cfg.AdapterName, "format", fmt.Sprint(d.format), "max_texture", cfg.MaxTextureSize)
	return d, nil
}

// OpenNoop opens a device on the wgpu noop backend. It draws nothing and
// serves headless runs and tests. Destroy releases the backend.
func OpenNoop(cfg Config) (*Device, error) {
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return nil, fmt.Errorf("halgpu: create noop instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, errors.New("halgpu: noop backend has no adapter")
	}
	openDev, err := adapters[0].Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("halgpu: open noop device: %w", err)
	}
	if cfg.AdapterName == "" {
		cfg.AdapterName = adapters[0].Info.Name
	}
	d, err := New(openDev.Device, openDev.Queue, cfg)
	if err != nil {
		openDev.Device.Destroy()
		instance.Destroy()
		return nil, err
	}
	d.release = func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return d, nil
}

func (d *Device) init() error {
	for p := range programCount {
		m, err := buildModule(d.device, p, defaultSource(p))
		if err != nil {
			return err
		}
		d.modules[p] = m
	}
	if err := d.createLayouts(); err != nil {
		return err
	}

	white, err := d.newTexture(render.DefaultTextureDescriptor(1, 1, gputypes.TextureFormatRGBA8Unorm))
	if err != nil {
		return err
	}
	d.white = white
	return d.writeTexture(white, geom.IntRect(0, 0, 1, 1), []byte{0xFF, 0xFF, 0xFF, 0xFF})
}

// Destroy releases every GPU object of the device, and the HAL device
// itself when the device was opened by OpenNoop. Safe to call twice.
func (d *Device) Destroy() {
	if d.frame != nil {
		d.frame.discard(d)
		d.frame = nil
	}
	if d.pipelines != nil {
		d.pipelines.Purge()
	}
	for id, t := range d.textures {
		d.destroyTexture(t)
		delete(d.textures, id)
	}
	for fbo, t := range d.native {
		d.destroyTexture(t)
		delete(d.native, fbo)
	}
	for _, t := range []*texture{d.white, d.framebuffer} {
		if t != nil {
			d.destroyTexture(t)
		}
	}
	d.white, d.framebuffer = nil, nil
	for i, s := range d.samplers {
		if s != nil {
			d.device.DestroySampler(s)
			d.samplers[i] = nil
		}
	}
	if d.pipeLayout != nil {
		d.device.DestroyPipelineLayout(d.pipeLayout)
		d.pipeLayout = nil
	}
	if d.bindLayout != nil {
		d.device.DestroyBindGroupLayout(d.bindLayout)
		d.bindLayout = nil
	}
	for i, m := range d.modules {
		if m != nil {
			d.device.DestroyShaderModule(m)
			d.modules[i] = nil
		}
	}
	if d.release != nil {
		d.release()
		d.release = nil
	}
}

// Capabilities implements render.Device. WebGPU has neither advanced nor
// dual-source blending.
func (d *Device) Capabilities() render.DeviceCapabilities { return d.caps }

// SurfaceFormat returns the format of the framebuffer and native surfaces.
func (d *Device) SurfaceFormat() gputypes.TextureFormat { return d.format }

func bytesPerPixel(f gputypes.TextureFormat) int {
	switch f {
	case gputypes.TextureFormatR8Unorm:
		return 1
	case gputypes.TextureFormatRG32Float:
		return 8
	default:
		return 4
	}
}

func (d *Device) newTexture(desc render.TextureDescriptor) (*texture, error) {
	tex, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label: desc.Label,
		Size: hal.Extent3D{
			Width:              uint32(desc.Width),
			Height:             uint32(desc.Height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        desc.Format,
		Usage: gputypes.TextureUsageTextureBinding | gputypes.TextureUsageRenderAttachment |
			gputypes.TextureUsageCopyDst | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		// Allocation failures are the driver running out of memory.
		return nil, fmt.Errorf("create texture %s: %w: %w", desc, render.ErrOutOfMemory, err)
	}
	view, err := d.device.CreateTextureView(tex, &hal.TextureViewDescriptor{Label: desc.Label})
	if err != nil {
		d.device.DestroyTexture(tex)
		return nil, fmt.Errorf("create texture view %s: %w", desc, err)
	}
	return &texture{desc: desc, tex: tex, view: view}, nil
}

func (d *Device) destroyTexture(t *texture) {
	d.device.DestroyTextureView(t.view)
	d.device.DestroyTexture(t.tex)
}

// CreateTexture implements render.Device.
func (d *Device) CreateTexture(desc render.TextureDescriptor) (render.TextureID, error) {
	if desc.Width <= 0 || desc.Height <= 0 {
		return 0, fmt.Errorf("halgpu: empty texture %s", desc)
	}
	if desc.Width > d.caps.MaxTextureSize || desc.Height > d.caps.MaxTextureSize {
		return 0, render.MaxTextureSizeError(desc.Width, desc.Height, d.caps.MaxTextureSize)
	}
	t, err := d.newTexture(desc)
	if err != nil {
		d.fail(err)
		return 0, err
	}
	d.nextID++
	d.textures[d.nextID] = t
	return d.nextID, nil
}

// DestroyTexture implements render.Device.
func (d *Device) DestroyTexture(id render.TextureID) {
	t, ok := d.textures[id]
	if !ok {
		return
	}
	delete(d.textures, id)
	if d.frame != nil {
		// The frame's commands may still sample it.
		d.frame.doomed = append(d.frame.doomed, t)
		return
	}
	d.destroyTexture(t)
}

// UploadTexture implements render.Device.
func (d *Device) UploadTexture(id render.TextureID, rect geom.DeviceIntRect, data []byte) error {
	t, ok := d.textures[id]
	if !ok {
		return fmt.Errorf("%w %d", ErrUnknownTexture, id)
	}
	want := int(rect.Width()) * int(rect.Height()) * bytesPerPixel(t.desc.Format)
	if len(data) < want {
		return fmt.Errorf("halgpu: upload of %d bytes to %v, want %d", len(data), rect, want)
	}
	return d.writeTexture(t, rect, data[:want])
}

func (d *Device) writeTexture(t *texture, rect geom.DeviceIntRect, data []byte) error {
	w, h := uint32(rect.Width()), uint32(rect.Height())
	err := d.queue.WriteTexture(&hal.ImageCopyTexture{
		Texture:  t.tex,
		MipLevel: 0,
		Origin:   hal.Origin3D{X: uint32(rect.Min.X), Y: uint32(rect.Min.Y), Z: 0},
		Aspect:   gputypes.TextureAspectAll,
	}, data, &hal.ImageDataLayout{
		Offset:       0,
		BytesPerRow:  w * uint32(bytesPerPixel(t.desc.Format)),
		RowsPerImage: h,
	}, &hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1})
	if err != nil {
		return fmt.Errorf("halgpu: write texture %v: %w", rect, err)
	}
	return nil
}

// Framebuffer returns the texture the default target was last drawn into,
// or nil before the first present.
func (d *Device) Framebuffer() hal.Texture {
	if d.framebuffer == nil {
		return nil
	}
	return d.framebuffer.tex
}

// ResetState implements render.Device. The device caches no bindings
// across render passes, so only the current pass is closed.
func (d *Device) ResetState() {
	if d.frame != nil {
		d.frame.endPass()
	}
}

// BlendBarrier implements render.Device. WebGPU orders draws within a
// pass, so no barrier is needed.
func (d *Device) BlendBarrier() {}

// CheckError implements render.Device. It returns the first error recorded
// since the last call.
func (d *Device) CheckError() error {
	err := d.pending
	d.pending = nil
	return err
}

func (d *Device) fail(err error) {
	if d.pending == nil {
		d.pending = err
	}
}

var (
	_ render.Device          = (*Device)(nil)
	_ render.ShaderRefresher = (*Device)(nil)
	_ render.PoolDrainer     = (*Device)(nil)
)
