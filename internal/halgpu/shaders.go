// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halgpu

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/compositor/render"
)

//go:embed shaders/quad.wgsl
var quadShaderSource string

//go:embed shaders/composite.wgsl
var compositeShaderSource string

// program is one of the device's shader modules.
type program uint8

const (
	// programQuad fills with the draw color.
	programQuad program = iota
	// programComposite samples the bound texture.
	programComposite
	programCount
)

var programNames = [programCount]string{
	programQuad:      "quad",
	programComposite: "composite",
}

func (p program) String() string { return programNames[p] }

// programFor returns the module that draws shader kind k.
func programFor(k render.ShaderKind) program {
	switch k {
	case render.ShaderBrushImage, render.ShaderBlit, render.ShaderComposite:
		return programComposite
	default:
		return programQuad
	}
}

// programForFile maps a shader source file name onto its module.
func programForFile(path string) (program, bool) {
	for p, name := range programNames {
		if filepath.Base(path) == name+".wgsl" {
			return program(p), true
		}
	}
	return 0, false
}

// compileWGSL compiles WGSL source to SPIR-V words.
func compileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, err
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("SPIR-V output of %d bytes is not word aligned", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}

// buildModule compiles source and creates the shader module for p.
func buildModule(device hal.Device, p program, source string) (hal.ShaderModule, error) {
	code, err := compileWGSL(source)
	if err != nil {
		return nil, render.ShaderError(p.String(), err)
	}
	m, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  p.String() + "_shader",
		Source: hal.ShaderSource{SPIRV: code},
	})
	if err != nil {
		return nil, render.ShaderError(p.String(), err)
	}
	return m, nil
}

func defaultSource(p program) string {
	if p == programComposite {
		return compositeShaderSource
	}
	return quadShaderSource
}

// RefreshShader rebuilds the module whose source file is path. The file
// name selects the module: quad.wgsl or composite.wgsl. Pipelines built
// from the old module are dropped. On failure the old module stays.
func (d *Device) RefreshShader(path string) error {
	p, ok := programForFile(path)
	if !ok {
		return render.ShaderError(filepath.Base(path), fmt.Errorf("no shader module is built from %s", path))
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return &render.RendererError{Kind: render.ErrorIO, Op: path, Err: err}
	}
	m, err := buildModule(d.device, p, string(src))
	if err != nil {
		return err
	}

	d.pipelines.Purge()
	if old := d.modules[p]; old != nil {
		d.device.DestroyShaderModule(old)
	}
	d.modules[p] = m
	slogger().Info("halgpu: shader refreshed", "module", p.String(), "path", path)
	return nil
}
