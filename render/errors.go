// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"strings"
)

// Renderer errors.
var (
	// ErrOutOfMemory is reported by a Device whose driver ran out of memory.
	ErrOutOfMemory = errors.New("render: out of GPU memory")

	// ErrStaleGPUCache is returned when a frame references a GPU cache
	// frame id newer than the last applied cache update.
	ErrStaleGPUCache = errors.New("render: frame references unapplied GPU cache update")

	// ErrTaskCycle is returned when the render task graph is not acyclic.
	ErrTaskCycle = errors.New("render: render task graph has a cycle")

	// ErrUnknownTask is returned when a task names a child that does not exist.
	ErrUnknownTask = errors.New("render: unknown render task")

	// ErrChannelClosed is returned by Send after the channel was closed.
	ErrChannelClosed = errors.New("render: message channel closed")

	// ErrUnknownSurface is returned for native surface or tile ids the
	// bridge did not allocate.
	ErrUnknownSurface = errors.New("render: unknown native surface")

	// ErrNoDevice is returned by NewRenderer when no device is supplied.
	ErrNoDevice = errors.New("render: nil device")
)

// RendererErrorKind classifies a RendererError.
type RendererErrorKind uint8

// RendererErrorKind values.
const (
	ErrorShaderBuild RendererErrorKind = iota
	ErrorThread
	ErrorIO
	ErrorMaxTextureSize
	ErrorSoftwareRasterizer
	ErrorOutOfMemory
	// ErrorInvalidResource is a resource update or reference the renderer
	// could not apply.
	ErrorInvalidResource
)

func (k RendererErrorKind) String() string {
	switch k {
	case ErrorShaderBuild:
		return "shader build"
	case ErrorThread:
		return "thread"
	case ErrorIO:
		return "io"
	case ErrorMaxTextureSize:
		return "max texture size"
	case ErrorSoftwareRasterizer:
		return "software rasterizer"
	case ErrorOutOfMemory:
		return "out of memory"
	case ErrorInvalidResource:
		return "invalid resource"
	}
	return fmt.Sprintf("RendererErrorKind(%d)", k)
}

// RendererError is one error recorded while rendering a frame.
type RendererError struct {
	Kind RendererErrorKind
	// Op names what failed, such as a shader or a capture path.
	Op  string
	Err error
}

func (e *RendererError) Error() string {
	var b strings.Builder
	b.WriteString("render: ")
	b.WriteString(e.Kind.String())
	if e.Op != "" {
		b.WriteString(" ")
		b.WriteString(e.Op)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *RendererError) Unwrap() error { return e.Err }

// ShaderError returns a shader build failure for name.
func ShaderError(name string, err error) *RendererError {
	return &RendererError{Kind: ErrorShaderBuild, Op: name, Err: err}
}

// MaxTextureSizeError is the error for an allocation of size w×h on a
// device limited to limit.
func MaxTextureSizeError(w, h, limit int32) *RendererError {
	return &RendererError{
		Kind: ErrorMaxTextureSize,
		Op:   fmt.Sprintf("%dx%d", w, h),
		Err:  fmt.Errorf("exceeds device limit %d", limit),
	}
}

// IsKind reports whether err holds a RendererError of kind k.
func IsKind(err error, k RendererErrorKind) bool {
	var re *RendererError
	return errors.As(err, &re) && re.Kind == k
}

// RenderErrors is the list of errors a frame produced. Render returns it
// only when it is non-empty.
type RenderErrors struct {
	Errs []*RendererError
}

func (e *RenderErrors) Error() string {
	switch len(e.Errs) {
	case 0:
		return "render: no errors"
	case 1:
		return e.Errs[0].Error()
	}
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("render: %d errors: %s", len(e.Errs), strings.Join(msgs, "; "))
}

// Unwrap exposes every recorded error to errors.Is and errors.As.
func (e *RenderErrors) Unwrap() []error {
	out := make([]error, len(e.Errs))
	for i, err := range e.Errs {
		out[i] = err
	}
	return out
}

func (e *RenderErrors) add(err *RendererError) { e.Errs = append(e.Errs, err) }

// addAll records err, splitting errors.Join results into their parts.
func (e *RenderErrors) addAll(err error, kind RendererErrorKind, op string) {
	if err == nil {
		return
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		for _, part := range j.Unwrap() {
			e.addAll(part, kind, op)
		}
		return
	}
	e.add(asRendererError(err, kind, op))
}

func (e *RenderErrors) empty() bool { return len(e.Errs) == 0 }

// asRendererError converts err to a RendererError, classifying out of
// memory and defaulting to kind.
func asRendererError(err error, kind RendererErrorKind, op string) *RendererError {
	var re *RendererError
	if errors.As(err, &re) {
		return re
	}
	if errors.Is(err, ErrOutOfMemory) {
		kind = ErrorOutOfMemory
	}
	return &RendererError{Kind: kind, Op: op, Err: err}
}
