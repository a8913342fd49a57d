// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/resources"
	"github.com/gogpu/compositor/style"
)

// AllocationKind is what a texture cache allocation does to its id.
type AllocationKind uint8

// AllocationKind values.
const (
	// AllocNew binds a new texture to the id.
	AllocNew AllocationKind = iota
	// AllocReset replaces the texture of the id with one for a new descriptor.
	AllocReset
	// AllocFree releases the id.
	AllocFree
)

// TextureAllocation is one allocation change of the texture cache.
type TextureAllocation struct {
	ID   CacheTextureID    `yaml:"id"`
	Kind AllocationKind    `yaml:"kind"`
	Desc TextureDescriptor `yaml:"desc"`
}

// TextureUpload writes pixels into a cache texture. Data is tightly packed
// in Format; widened formats are converted before upload.
type TextureUpload struct {
	ID     CacheTextureID            `yaml:"id"`
	Rect   geom.DeviceIntRect        `yaml:"rect"`
	Format resources.WireImageFormat `yaml:"format"`
	Data   []byte                    `yaml:"data"`
}

// TextureUpdateList is a batch of texture cache changes, applied before the
// frame that depends on them.
type TextureUpdateList struct {
	Allocations []TextureAllocation `yaml:"allocations,omitempty"`
	Uploads     []TextureUpload     `yaml:"uploads,omitempty"`
}

// IsEmpty reports whether l changes nothing.
func (l TextureUpdateList) IsEmpty() bool {
	return len(l.Allocations) == 0 && len(l.Uploads) == 0
}

// TextureApplyStats reports the work of one Apply call.
type TextureApplyStats struct {
	Created       int
	Reused        int
	Destroyed     int
	UploadedBytes int
}

type cacheTexture struct {
	id   TextureID
	desc TextureDescriptor
}

// debugTextureColor is what new shared textures are cleared to while
// DebugTextureCache is set, so unused regions stand out.
var debugTextureColor = style.ColorF{R: 0, G: 0, B: 0.8, A: 1}

// TextureResolver owns the device textures behind texture cache ids.
type TextureResolver struct {
	dev      Device
	caps     DeviceCapabilities
	maxSize  int32
	textures map[CacheTextureID]cacheTexture
}

// NewTextureResolver returns a resolver creating textures on dev. A
// positive maxSize lowers the device texture size limit.
func NewTextureResolver(dev Device, maxSize int32) *TextureResolver {
	caps := dev.Capabilities()
	limit := caps.MaxTextureSize
	if maxSize > 0 && (limit <= 0 || maxSize < limit) {
		limit = maxSize
	}
	return &TextureResolver{
		dev:      dev,
		caps:     caps,
		maxSize:  limit,
		textures: make(map[CacheTextureID]cacheTexture),
	}
}

// MaxTextureSize returns the effective texture size limit.
func (r *TextureResolver) MaxTextureSize() int32 { return r.maxSize }

// Resolve returns the device texture behind a cache id.
func (r *TextureResolver) Resolve(id CacheTextureID) (TextureID, bool) {
	t, ok := r.textures[id]
	return t.id, ok
}

// Descriptor returns the descriptor id was allocated with.
func (r *TextureResolver) Descriptor(id CacheTextureID) (TextureDescriptor, bool) {
	t, ok := r.textures[id]
	return t.desc, ok
}

// Len returns the number of live cache textures.
func (r *TextureResolver) Len() int { return len(r.textures) }

// Apply performs a batch of allocations and uploads. Textures freed or
// reset in the batch are reused for new allocations with an identical
// descriptor; the rest are destroyed before anything new is created.
// Failed allocations and uploads are reported together; the remainder of
// the batch still takes effect.
func (r *TextureResolver) Apply(l TextureUpdateList, flags DebugFlags) (TextureApplyStats, error) {
	var (
		st      TextureApplyStats
		errs    []error
		pending []cacheTexture
		fresh   []TextureAllocation
	)

	for _, a := range l.Allocations {
		if a.Kind != AllocFree && a.Kind != AllocReset {
			continue
		}
		t, ok := r.textures[a.ID]
		if !ok {
			if a.Kind == AllocFree {
				errs = append(errs, fmt.Errorf("render: free of unknown cache texture %d", a.ID))
			}
			continue
		}
		delete(r.textures, a.ID)
		pending = append(pending, t)
	}

	for _, a := range l.Allocations {
		if a.Kind == AllocFree {
			continue
		}
		if _, live := r.textures[a.ID]; live {
			errs = append(errs, fmt.Errorf("render: cache texture %d allocated twice", a.ID))
			continue
		}
		if i := matchPending(pending, a.Desc); i >= 0 {
			r.textures[a.ID] = cacheTexture{id: pending[i].id, desc: a.Desc}
			pending = append(pending[:i], pending[i+1:]...)
			st.Reused++
			continue
		}
		fresh = append(fresh, a)
	}

	for _, t := range pending {
		r.dev.DestroyTexture(t.id)
		st.Destroyed++
	}

	for _, a := range fresh {
		if err := r.create(a, flags); err != nil {
			errs = append(errs, err)
			continue
		}
		st.Created++
	}

	for _, u := range l.Uploads {
		n, err := r.upload(u)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		st.UploadedBytes += n
	}

	slogger().Debug("render: texture cache updated",
		"created", st.Created, "reused", st.Reused, "destroyed", st.Destroyed, "bytes", st.UploadedBytes)
	return st, errors.Join(errs...)
}

func matchPending(pending []cacheTexture, d TextureDescriptor) int {
	for i, t := range pending {
		if t.desc.Matches(d) {
			return i
		}
	}
	return -1
}

func (r *TextureResolver) create(a TextureAllocation, flags DebugFlags) error {
	d := a.Desc
	if r.maxSize > 0 && (d.Width > r.maxSize || d.Height > r.maxSize) {
		return MaxTextureSizeError(d.Width, d.Height, r.maxSize)
	}
	if _, live := r.textures[a.ID]; live {
		return fmt.Errorf("render: cache texture %d allocated twice", a.ID)
	}
	id, err := r.dev.CreateTexture(d)
	if err != nil {
		return fmt.Errorf("render: create cache texture %d (%s): %w", a.ID, d, err)
	}
	r.textures[a.ID] = cacheTexture{id: id, desc: d}

	if !d.Shared {
		return nil
	}
	var color style.ColorF
	switch {
	case flags.Has(DebugTextureCache):
		color = debugTextureColor
	case !r.caps.SupportsPartialClear:
		// Regions are never cleared individually, so start from zero.
	default:
		return nil
	}
	if err := r.dev.BindDrawTarget(TextureDrawTarget(id, 0, d.Size())); err != nil {
		return err
	}
	return r.dev.Clear(color, nil)
}

func (r *TextureResolver) upload(u TextureUpload) (int, error) {
	t, ok := r.textures[u.ID]
	if !ok {
		return 0, fmt.Errorf("render: upload to unknown cache texture %d", u.ID)
	}
	data := u.Data
	if u.Format.Widened() {
		data = resources.WidenPixels(u.Format, data)
	}
	if err := r.dev.UploadTexture(t.id, u.Rect, data); err != nil {
		return 0, fmt.Errorf("render: upload to cache texture %d: %w", u.ID, err)
	}
	return len(data), nil
}

// Clear destroys every texture.
func (r *TextureResolver) Clear() {
	for id, t := range r.textures {
		r.dev.DestroyTexture(t.id)
		delete(r.textures, id)
	}
}
