// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/compositor/displaylist"
	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/resources"
)

// ExternalImageSourceKind says how a locked external image is delivered.
type ExternalImageSourceKind uint8

// ExternalImageSourceKind values.
const (
	// ExternalInvalid means the host could not provide the image.
	ExternalInvalid ExternalImageSourceKind = iota
	// ExternalNativeTexture is a texture on the renderer's device.
	ExternalNativeTexture
	// ExternalRawData is pixels the renderer uploads for this frame.
	ExternalRawData
)

// ExternalImage is what the host returns from a lock.
type ExternalImage struct {
	Kind ExternalImageSourceKind
	// UV is the normalized region of the source to sample.
	UV geom.LogicalRect

	Texture TextureID

	// Data, Size and Format describe ExternalRawData images.
	Data   []byte
	Size   geom.DeviceIntSize
	Format resources.WireImageFormat
}

// ExternalImageHandler resolves images owned by the host. Lock and Unlock
// are called from the render goroutine, in strict pairs, within one frame.
type ExternalImageHandler interface {
	Lock(id resources.ExternalImageID, channel uint8, rendering displaylist.ImageRendering) ExternalImage
	Unlock(id resources.ExternalImageID, channel uint8)
}

type resolvedExternal struct {
	texture TextureID
	uv      geom.LogicalRect
	// owned textures were uploaded for this frame and are destroyed after it.
	owned bool
}

// externalImages is the per-frame table of locked external images.
type externalImages struct {
	locked   []DeferredResolve
	resolved map[DeferredResolveIndex]resolvedExternal
}

// lockExternalImages locks every deferred resolve in index order.
func (r *Renderer) lockExternalImages(resolves []DeferredResolve, errs *RenderErrors) {
	r.externals.locked = r.externals.locked[:0]
	clear(r.externals.resolved)
	if len(resolves) == 0 {
		return
	}
	if r.externalHandler == nil {
		slogger().Warn("render: frame has external images but no handler", "count", len(resolves))
		return
	}
	for _, d := range resolves {
		img := r.externalHandler.Lock(d.Image, d.Channel, d.Rendering)
		r.externals.locked = append(r.externals.locked, d)
		// The handler may have used the device.
		r.dev.ResetState()

		res := resolvedExternal{uv: img.UV}
		switch img.Kind {
		case ExternalNativeTexture:
			res.texture = img.Texture
		case ExternalRawData:
			id, err := r.uploadExternal(img)
			if err != nil {
				errs.add(asRendererError(err, ErrorIO, "external image upload"))
				continue
			}
			res.texture, res.owned = id, true
		default:
			slogger().Warn("render: external image unavailable", "id", d.Image, "channel", d.Channel)
		}
		r.externals.resolved[d.Index] = res
	}
}

func (r *Renderer) uploadExternal(img ExternalImage) (TextureID, error) {
	d := DefaultTextureDescriptor(img.Size.Width, img.Size.Height, img.Format.TextureFormat())
	d.Label = "external"
	d.Target = TargetExternal
	id, err := r.dev.CreateTexture(d)
	if err != nil {
		return 0, err
	}
	data := img.Data
	if img.Format.Widened() {
		data = resources.WidenPixels(img.Format, data)
	}
	if err := r.dev.UploadTexture(id, geom.IntRectFromSize(img.Size), data); err != nil {
		r.dev.DestroyTexture(id)
		return 0, err
	}
	return id, nil
}

// unlockExternalImages unlocks in the order the images were locked.
func (r *Renderer) unlockExternalImages() {
	for _, res := range r.externals.resolved {
		if res.owned {
			r.dev.DestroyTexture(res.texture)
		}
	}
	for _, d := range r.externals.locked {
		r.externalHandler.Unlock(d.Image, d.Channel)
	}
	r.externals.locked = r.externals.locked[:0]
	clear(r.externals.resolved)
}
