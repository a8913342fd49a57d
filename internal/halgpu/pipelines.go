// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/compositor/internal/cache"
	"github.com/gogpu/compositor/render"
)

// quadUniformSize is the byte size of the Quad uniform in both shaders:
// rect, color and uv, each a vec4<f32>.
const quadUniformSize = 48

// pipelineKey identifies a render pipeline variant.
type pipelineKey struct {
	program program
	blend   render.BlendMode
	format  gputypes.TextureFormat
}

func (k pipelineKey) label() string {
	return fmt.Sprintf("%s_%s_pipeline", k.program, k.blend)
}

// createLayouts builds the bind group layout shared by all pipelines:
// binding 0 the Quad uniform, 1 the source texture, 2 its sampler.
func (d *Device) createLayouts() error {
	bindLayout, err := d.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "quad_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group layout: %w", err)
	}
	d.bindLayout = bindLayout

	pipeLayout, err := d.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "quad_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{d.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	d.pipeLayout = pipeLayout

	for i, filter := range [...]gputypes.FilterMode{gputypes.FilterModeNearest, gputypes.FilterModeLinear} {
		s, err := d.device.CreateSampler(&hal.SamplerDescriptor{
			Label:        fmt.Sprintf("quad_sampler_%d", i),
			AddressModeU: gputypes.AddressModeClampToEdge,
			AddressModeV: gputypes.AddressModeClampToEdge,
			AddressModeW: gputypes.AddressModeClampToEdge,
			MagFilter:    filter,
			MinFilter:    filter,
			MipmapFilter: filter,
		})
		if err != nil {
			return fmt.Errorf("create sampler: %w", err)
		}
		d.samplers[i] = s
	}
	return nil
}

// pipeline returns the pipeline for key, building it on first use.
// Blend modes WebGPU cannot express draw with premultiplied alpha.
func (d *Device) pipeline(key pipelineKey) (hal.RenderPipeline, error) {
	return d.pipelines.GetOrCreate(key, func() (hal.RenderPipeline, error) {
		blend, ok := key.blend.GPUBlendState()
		if !ok {
			slogger().Debug("halgpu: blend mode falls back to premultiplied alpha", "blend", key.blend.String())
			premul := gputypes.BlendStatePremultiplied()
			blend = &premul
		}
		module := d.modules[key.program]
		p, err := d.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
			Label:  key.label(),
			Layout: d.pipeLayout,
			Vertex: hal.VertexState{
				Module:     module,
				EntryPoint: "vs_main",
			},
			Fragment: &hal.FragmentState{
				Module:     module,
				EntryPoint: "fs_main",
				Targets: []gputypes.ColorTargetState{
					{
						Format:    key.format,
						Blend:     blend,
						WriteMask: gputypes.ColorWriteMaskAll,
					},
				},
			},
			Primitive: gputypes.PrimitiveState{
				Topology: gputypes.PrimitiveTopologyTriangleList,
				CullMode: gputypes.CullModeNone,
			},
			Multisample: gputypes.MultisampleState{
				Count: 1,
				Mask:  0xFFFFFFFF,
			},
		})
		if err != nil {
			return nil, render.ShaderError(key.program.String(), err)
		}
		slogger().Debug("halgpu: pipeline built", "pipeline", key.label())
		return p, nil
	})
}

// DrainPools drops every cached pipeline. They are rebuilt on next use.
func (d *Device) DrainPools() {
	n := d.pipelines.Len()
	d.pipelines.Purge()
	slogger().Info("halgpu: pipelines drained", "count", n)
}

// PipelineStats returns statistics of the pipeline cache.
func (d *Device) PipelineStats() cache.Stats {
	return d.pipelines.Stats()
}
