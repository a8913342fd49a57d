// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halgpu

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/render"
	"github.com/gogpu/compositor/style"
)

const (
	// defaultSubmitTimeout bounds the wait for a submitted frame.
	defaultSubmitTimeout = 5 * time.Second

	// submitPoll is the interval between completion polls.
	submitPoll = 100 * time.Microsecond
)

// frameState holds the command encoder of the frame being recorded and
// the transient objects its draws reference.
type frameState struct {
	encoder hal.CommandEncoder
	pass    hal.RenderPassEncoder
	target  *texture
	size    geom.DeviceIntSize

	buffers []hal.Buffer
	groups  []hal.BindGroup
	doomed  []*texture
	passes  int
	draws   int
}

func (f *frameState) endPass() {
	if f.pass != nil {
		f.pass.End()
		f.pass = nil
	}
}

// release destroys the frame's transient objects.
func (f *frameState) release(d *Device) {
	for _, g := range f.groups {
		d.device.DestroyBindGroup(g)
	}
	for _, b := range f.buffers {
		d.device.DestroyBuffer(b)
	}
	for _, t := range f.doomed {
		d.destroyTexture(t)
	}
	f.groups, f.buffers, f.doomed = nil, nil, nil
}

// discard abandons a frame without submitting it.
func (f *frameState) discard(d *Device) {
	f.endPass()
	f.encoder.DiscardEncoding()
	f.release(d)
}

// BeginFrame implements render.Device.
func (d *Device) BeginFrame() error {
	if d.frame != nil {
		return fmt.Errorf("halgpu: BeginFrame with a frame in progress")
	}
	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "compositor_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("compositor_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}
	d.frame = &frameState{encoder: encoder}
	return nil
}

// resolveTarget returns the texture t draws into, creating the default
// framebuffer or a native surface texture when the size changed.
func (d *Device) resolveTarget(t render.DrawTarget) (*texture, error) {
	switch t.Kind {
	case render.DrawTexture:
		tex, ok := d.textures[t.Texture]
		if !ok {
			return nil, fmt.Errorf("%w %d bound as target", ErrUnknownTexture, t.Texture)
		}
		return tex, nil
	case render.DrawNative:
		tex, err := d.sizedTarget(d.native[t.FBO], t.Size, fmt.Sprintf("native_surface_%d", t.FBO))
		if err != nil {
			return nil, err
		}
		d.native[t.FBO] = tex
		return tex, nil
	default:
		tex, err := d.sizedTarget(d.framebuffer, t.Size, "framebuffer")
		if err != nil {
			return nil, err
		}
		d.framebuffer = tex
		return tex, nil
	}
}

func (d *Device) sizedTarget(cur *texture, size geom.DeviceIntSize, label string) (*texture, error) {
	if cur != nil && cur.desc.Size() == size {
		return cur, nil
	}
	if size.IsEmpty() {
		return nil, fmt.Errorf("halgpu: empty %s target", label)
	}
	desc := render.DefaultTextureDescriptor(size.Width, size.Height, d.format)
	desc.Label = label
	tex, err := d.newTexture(desc)
	if err != nil {
		d.fail(err)
		return nil, err
	}
	if cur != nil {
		d.frame.doomed = append(d.frame.doomed, cur)
	}
	return tex, nil
}

// BindDrawTarget implements render.Device. It starts a render pass that
// keeps the target's contents.
func (d *Device) BindDrawTarget(t render.DrawTarget) error {
	if d.frame == nil {
		return ErrNoFrame
	}
	tex, err := d.resolveTarget(t)
	if err != nil {
		return err
	}
	d.frame.endPass()
	d.frame.target = tex
	d.frame.size = tex.desc.Size()
	d.beginPass(gputypes.LoadOpLoad, gputypes.Color{})
	return nil
}

func (d *Device) beginPass(load gputypes.LoadOp, clear gputypes.Color) {
	f := d.frame
	f.pass = f.encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "compositor_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{
			{
				View:       f.target.view,
				LoadOp:     load,
				StoreOp:    gputypes.StoreOpStore,
				ClearValue: clear,
			},
		},
	})
	f.passes++
}

// Clear implements render.Device. A full clear restarts the pass with a
// clear load op; a partial one draws a quad without blending.
func (d *Device) Clear(color style.ColorF, rect *geom.DeviceIntRect) error {
	if d.frame == nil {
		return ErrNoFrame
	}
	if d.frame.target == nil {
		return ErrNoTarget
	}
	if rect == nil {
		d.frame.endPass()
		d.beginPass(gputypes.LoadOpClear, gputypes.Color{
			R: float64(color.R), G: float64(color.G), B: float64(color.B), A: float64(color.A),
		})
		return nil
	}
	r := *rect
	return d.Draw(render.DrawCall{
		Shader:    render.ShaderClearQuad,
		Blend:     render.BlendModeNone,
		Rect:      r,
		Scissor:   &r,
		Color:     color,
		Instances: 1,
	})
}

// Draw implements render.Device.
func (d *Device) Draw(call render.DrawCall) error {
	f := d.frame
	if f == nil {
		return ErrNoFrame
	}
	if f.target == nil {
		return ErrNoTarget
	}
	if f.pass == nil {
		d.beginPass(gputypes.LoadOpLoad, gputypes.Color{})
	}

	prog := programFor(call.Shader)
	pipe, err := d.pipeline(pipelineKey{program: prog, blend: call.Blend, format: f.target.desc.Format})
	if err != nil {
		return err
	}
	src := d.white
	if prog == programComposite && call.Textures[0] != 0 {
		t, ok := d.textures[call.Textures[0]]
		if !ok {
			return fmt.Errorf("%w %d sampled by %s", ErrUnknownTexture, call.Textures[0], call.Shader)
		}
		src = t
	}

	group, err := d.quadBindGroup(call, src)
	if err != nil {
		return err
	}

	f.pass.SetPipeline(pipe)
	f.pass.SetBindGroup(0, group, nil)
	if x, y, w, h, ok := scissorRect(call.Scissor, f.size); ok {
		f.pass.SetScissorRect(x, y, w, h)
	} else if call.Scissor != nil {
		// Scissor lies outside the target.
		return nil
	} else {
		f.pass.SetScissorRect(0, 0, uint32(f.size.Width), uint32(f.size.Height))
	}
	f.pass.Draw(6, uint32(max(call.Instances, 1)), 0, 0)
	f.draws++
	return nil
}

// quadBindGroup uploads the uniform of call and binds it with src.
func (d *Device) quadBindGroup(call render.DrawCall, src *texture) (hal.BindGroup, error) {
	f := d.frame
	data := quadUniform(call, f.size)
	buf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "quad_uniform",
		Size:  uint64(len(data)),
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		err = fmt.Errorf("create quad uniform: %w: %w", render.ErrOutOfMemory, err)
		d.fail(err)
		return nil, err
	}
	f.buffers = append(f.buffers, buf)
	if err := d.queue.WriteBuffer(buf, 0, data); err != nil {
		err = fmt.Errorf("write quad uniform: %w", err)
		d.fail(err)
		return nil, err
	}

	sampler := d.samplers[1]
	if src.desc.Filter == render.FilterNearest {
		sampler = d.samplers[0]
	}
	group, err := d.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "quad_bind",
		Layout: d.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: buf.NativeHandle(), Offset: 0, Size: quadUniformSize,
			}},
			{Binding: 1, Resource: gputypes.TextureViewBinding{
				TextureView: src.view.NativeHandle(),
			}},
			{Binding: 2, Resource: gputypes.SamplerBinding{
				Sampler: sampler.NativeHandle(),
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create quad bind group: %w", err)
	}
	f.groups = append(f.groups, group)
	return group, nil
}

// quadUniform encodes the Quad uniform: the destination rect in clip
// space, the color, and the full source uv range.
func quadUniform(call render.DrawCall, size geom.DeviceIntSize) []byte {
	w, h := float32(max(size.Width, 1)), float32(max(size.Height, 1))
	r := call.Rect
	vals := [12]float32{
		float32(r.Min.X)/w*2 - 1, 1 - float32(r.Min.Y)/h*2,
		float32(r.Max.X)/w*2 - 1, 1 - float32(r.Max.Y)/h*2,
		call.Color.R, call.Color.G, call.Color.B, call.Color.A,
		0, 0, 1, 1,
	}
	buf := make([]byte, quadUniformSize)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// scissorRect clips s to the target and converts it to pass coordinates.
func scissorRect(s *geom.DeviceIntRect, size geom.DeviceIntSize) (x, y, w, h uint32, ok bool) {
	if s == nil {
		return 0, 0, 0, 0, false
	}
	c, ok := s.Intersection(geom.IntRectFromSize(size))
	if !ok {
		return 0, 0, 0, 0, false
	}
	return uint32(c.Min.X), uint32(c.Min.Y), uint32(c.Width()), uint32(c.Height()), true
}

// EndFrame implements render.Device. It submits the frame and waits for
// the GPU to finish it. A frame the GPU does not finish within the submit
// timeout fails with ErrGPUTimeout.
func (d *Device) EndFrame() error {
	f := d.frame
	if f == nil {
		return ErrNoFrame
	}
	d.frame = nil
	defer f.release(d)

	f.endPass()
	cmdBuf, err := f.encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer d.device.FreeCommandBuffer(cmdBuf)

	idx, err := d.queue.Submit([]hal.CommandBuffer{cmdBuf})
	if err != nil {
		d.fail(err)
		return fmt.Errorf("submit: %w", err)
	}
	if err := d.awaitSubmission(idx); err != nil {
		d.fail(err)
		return err
	}
	slogger().Debug("halgpu: frame submitted", "passes", f.passes, "draws", f.draws)
	return nil
}

// awaitSubmission polls the queue until submission idx is complete.
func (d *Device) awaitSubmission(idx uint64) error {
	deadline := time.Now().Add(d.timeout)
	for d.queue.PollCompleted() < idx {
		if !time.Now().Before(deadline) {
			return fmt.Errorf("%w: submission %d after %v", ErrGPUTimeout, idx, d.timeout)
		}
		time.Sleep(submitPoll)
	}
	return nil
}
