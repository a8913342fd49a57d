// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"sync"

	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/style"
)

// DeviceOpKind is the kind of a recorded device call.
type DeviceOpKind uint8

// DeviceOpKind values.
const (
	OpCreateTexture DeviceOpKind = iota
	OpDestroyTexture
	OpUploadTexture
	OpBeginFrame
	OpBindDrawTarget
	OpClear
	OpDraw
	OpBlendBarrier
	OpResetState
	OpEndFrame
)

var deviceOpNames = [...]string{
	OpCreateTexture:  "create",
	OpDestroyTexture: "destroy",
	OpUploadTexture:  "upload",
	OpBeginFrame:     "begin",
	OpBindDrawTarget: "bind",
	OpClear:          "clear",
	OpDraw:           "draw",
	OpBlendBarrier:   "barrier",
	OpResetState:     "reset",
	OpEndFrame:       "end",
}

func (k DeviceOpKind) String() string {
	if int(k) < len(deviceOpNames) {
		return deviceOpNames[k]
	}
	return fmt.Sprintf("DeviceOpKind(%d)", k)
}

// DeviceOp is one call made on a RecordingDevice.
type DeviceOp struct {
	Kind    DeviceOpKind
	Texture TextureID
	Desc    TextureDescriptor
	Target  DrawTarget
	Rect    *geom.DeviceIntRect
	Color   style.ColorF
	Call    DrawCall
	Bytes   int
}

// RecordingDevice is a Device that draws nothing and records every call.
// It backs headless rendering and tests.
type RecordingDevice struct {
	mu   sync.Mutex
	caps DeviceCapabilities
	ops  []DeviceOp

	textures map[TextureID]TextureDescriptor
	next     TextureID

	shaderErrs map[ShaderKind]error
	pending    error
	oom        bool
}

// NewRecordingDevice returns a device reporting caps.
func NewRecordingDevice(caps DeviceCapabilities) *RecordingDevice {
	return &RecordingDevice{caps: caps, textures: make(map[TextureID]TextureDescriptor)}
}

func (d *RecordingDevice) record(op DeviceOp) {
	d.ops = append(d.ops, op)
}

// Capabilities implements Device.
func (d *RecordingDevice) Capabilities() DeviceCapabilities { return d.caps }

// CreateTexture implements Device.
func (d *RecordingDevice) CreateTexture(desc TextureDescriptor) (TextureID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.caps.MaxTextureSize > 0 && (desc.Width > d.caps.MaxTextureSize || desc.Height > d.caps.MaxTextureSize) {
		return 0, MaxTextureSizeError(desc.Width, desc.Height, d.caps.MaxTextureSize)
	}
	d.next++
	d.textures[d.next] = desc
	d.record(DeviceOp{Kind: OpCreateTexture, Texture: d.next, Desc: desc})
	return d.next, nil
}

// DestroyTexture implements Device.
func (d *RecordingDevice) DestroyTexture(id TextureID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.textures, id)
	d.record(DeviceOp{Kind: OpDestroyTexture, Texture: id})
}

// UploadTexture implements Device.
func (d *RecordingDevice) UploadTexture(id TextureID, rect geom.DeviceIntRect, data []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.textures[id]; !ok {
		return fmt.Errorf("recording device: upload to unknown texture %d", id)
	}
	d.record(DeviceOp{Kind: OpUploadTexture, Texture: id, Rect: &rect, Bytes: len(data)})
	return nil
}

// BeginFrame implements Device.
func (d *RecordingDevice) BeginFrame() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record(DeviceOp{Kind: OpBeginFrame})
	return nil
}

// BindDrawTarget implements Device.
func (d *RecordingDevice) BindDrawTarget(t DrawTarget) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t.Kind == DrawTexture {
		if _, ok := d.textures[t.Texture]; !ok {
			return fmt.Errorf("recording device: bind of unknown texture %d", t.Texture)
		}
	}
	d.record(DeviceOp{Kind: OpBindDrawTarget, Target: t})
	return nil
}

// Clear implements Device.
func (d *RecordingDevice) Clear(color style.ColorF, rect *geom.DeviceIntRect) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	op := DeviceOp{Kind: OpClear, Color: color}
	if rect != nil {
		r := *rect
		op.Rect = &r
	}
	d.record(op)
	return nil
}

// Draw implements Device. It fails for shaders set with FailShader.
func (d *RecordingDevice) Draw(call DrawCall) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.shaderErrs[call.Shader]; err != nil {
		return ShaderError(call.Shader.String(), err)
	}
	d.record(DeviceOp{Kind: OpDraw, Call: call})
	return nil
}

// BlendBarrier implements Device.
func (d *RecordingDevice) BlendBarrier() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record(DeviceOp{Kind: OpBlendBarrier})
}

// ResetState implements Device.
func (d *RecordingDevice) ResetState() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record(DeviceOp{Kind: OpResetState})
}

// EndFrame implements Device.
func (d *RecordingDevice) EndFrame() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record(DeviceOp{Kind: OpEndFrame})
	return nil
}

// CheckError implements Device.
func (d *RecordingDevice) CheckError() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.oom {
		return ErrOutOfMemory
	}
	err := d.pending
	d.pending = nil
	return err
}

// FailShader makes every draw with shader k fail with err. A nil err
// clears the failure.
func (d *RecordingDevice) FailShader(k ShaderKind, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.shaderErrs == nil {
		d.shaderErrs = make(map[ShaderKind]error)
	}
	if err == nil {
		delete(d.shaderErrs, k)
		return
	}
	d.shaderErrs[k] = err
}

// SetOutOfMemory makes CheckError report ErrOutOfMemory until reset.
func (d *RecordingDevice) SetOutOfMemory(oom bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.oom = oom
}

// InjectError makes the next CheckError return err.
func (d *RecordingDevice) InjectError(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pending = err
}

// Ops returns a copy of the recorded calls.
func (d *RecordingDevice) Ops() []DeviceOp {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]DeviceOp(nil), d.ops...)
}

// OpsOf returns the recorded calls of kind k.
func (d *RecordingDevice) OpsOf(k DeviceOpKind) []DeviceOp {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []DeviceOp
	for _, op := range d.ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

// Draws returns the recorded draw calls.
func (d *RecordingDevice) Draws() []DrawCall {
	ops := d.OpsOf(OpDraw)
	out := make([]DrawCall, len(ops))
	for i, op := range ops {
		out[i] = op.Call
	}
	return out
}

// ResetOps forgets the recorded calls.
func (d *RecordingDevice) ResetOps() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ops = nil
}

// LiveTextures returns the number of textures not yet destroyed.
func (d *RecordingDevice) LiveTextures() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.textures)
}

var _ Device = (*RecordingDevice)(nil)
