// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/resources"
)

// ResourceUpdates is everything a frame needs applied before it renders.
type ResourceUpdates struct {
	TextureCache TextureUpdateList   `yaml:"texture_cache"`
	Commands     []resources.Command `yaml:"-"`
}

// IsEmpty reports whether u changes nothing.
func (u ResourceUpdates) IsEmpty() bool {
	return u.TextureCache.IsEmpty() && len(u.Commands) == 0
}

type fontEntry struct {
	bytes []byte
	index uint32
}

type imageEntry struct {
	desc     resources.WireImageDescriptor
	texture  TextureID
	external *resources.ExternalImageData
}

// resourceCache holds the fonts and images added by resource commands.
// Raw images live in their own device textures.
type resourceCache struct {
	dev       Device
	maxSize   int32
	fonts     map[resources.PackedKey]fontEntry
	instances map[resources.PackedKey]resources.CmdAddFontInstance
	images    map[resources.PackedKey]*imageEntry
}

func newResourceCache(dev Device, maxSize int32) *resourceCache {
	return &resourceCache{
		dev:       dev,
		maxSize:   maxSize,
		fonts:     make(map[resources.PackedKey]fontEntry),
		instances: make(map[resources.PackedKey]resources.CmdAddFontInstance),
		images:    make(map[resources.PackedKey]*imageEntry),
	}
}

// apply runs cmds in order and returns the number of bytes uploaded.
func (c *resourceCache) apply(cmds []resources.Command) (int, error) {
	var (
		total int
		errs  []error
	)
	for _, cmd := range cmds {
		n, err := c.applyOne(cmd)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		total += n
	}
	return total, errors.Join(errs...)
}

func (c *resourceCache) applyOne(cmd resources.Command) (int, error) {
	switch cmd := cmd.(type) {
	case resources.CmdAddFont:
		c.fonts[cmd.Key] = fontEntry{bytes: cmd.Bytes, index: cmd.Index}
	case resources.CmdDeleteFont:
		delete(c.fonts, cmd.Key)
	case resources.CmdAddFontInstance:
		if _, ok := c.fonts[cmd.FontKey]; !ok {
			return 0, fmt.Errorf("render: font instance %#x of unknown font %#x", cmd.Key, cmd.FontKey)
		}
		c.instances[cmd.Key] = cmd
	case resources.CmdDeleteFontInstance:
		delete(c.instances, cmd.Key)

	case resources.CmdAddImage:
		if old, ok := c.images[cmd.Key]; ok {
			c.release(old)
		}
		e := &imageEntry{desc: cmd.Descriptor, external: cmd.Data.External}
		c.images[cmd.Key] = e
		if e.external != nil {
			return 0, nil
		}
		return c.upload(e, cmd.Data.Raw, nil)

	case resources.CmdUpdateImage:
		e, ok := c.images[cmd.Key]
		if !ok {
			return 0, fmt.Errorf("render: update of unknown image %#x", cmd.Key)
		}
		if e.desc.Size != cmd.Descriptor.Size || e.desc.Format != cmd.Descriptor.Format {
			c.release(e)
			cmd.Dirty = nil
		}
		e.desc = cmd.Descriptor
		e.external = cmd.Data.External
		if e.external != nil {
			c.release(e)
			return 0, nil
		}
		return c.upload(e, cmd.Data.Raw, cmd.Dirty)

	case resources.CmdDeleteImage:
		if e, ok := c.images[cmd.Key]; ok {
			c.release(e)
			delete(c.images, cmd.Key)
		}

	default:
		return 0, fmt.Errorf("render: unknown resource command %T", cmd)
	}
	return 0, nil
}

func (c *resourceCache) upload(e *imageEntry, raw []byte, dirty *geom.DeviceIntRect) (int, error) {
	size := e.desc.Size
	if c.maxSize > 0 && (size.Width > c.maxSize || size.Height > c.maxSize) {
		return 0, MaxTextureSizeError(size.Width, size.Height, c.maxSize)
	}
	if e.texture == 0 {
		d := DefaultTextureDescriptor(size.Width, size.Height, e.desc.Format.TextureFormat())
		id, err := c.dev.CreateTexture(d)
		if err != nil {
			return 0, err
		}
		e.texture = id
	}

	rect := geom.IntRectFromSize(size)
	if dirty != nil {
		rect = *dirty
	}
	data := packRows(raw, e.desc, rect)
	if e.desc.Format.Widened() {
		data = resources.WidenPixels(e.desc.Format, data)
	}
	if err := c.dev.UploadTexture(e.texture, rect, data); err != nil {
		return 0, err
	}
	return len(data), nil
}

// packRows extracts rect from raw, the whole image laid out per d, as
// tightly packed rows.
func packRows(raw []byte, d resources.WireImageDescriptor, rect geom.DeviceIntRect) []byte {
	bpp := int32(d.Format.BytesPerPixel())
	row := rect.Width() * bpp
	stride := d.Size.Width * bpp
	if d.Stride != nil {
		stride = *d.Stride
	}
	if stride == row && d.Offset == 0 && rect.Min.X == 0 && rect.Min.Y == 0 {
		return raw
	}
	out := make([]byte, 0, int(row)*int(rect.Height()))
	for y := range rect.Height() {
		start := int(d.Offset) + int((rect.Min.Y+y)*stride) + int(rect.Min.X*bpp)
		end := start + int(row)
		if end > len(raw) {
			break
		}
		out = append(out, raw[start:end]...)
	}
	return out
}

func (c *resourceCache) release(e *imageEntry) {
	if e.texture != 0 {
		c.dev.DestroyTexture(e.texture)
		e.texture = 0
	}
}

// imageTexture returns the device texture of a raw image.
func (c *resourceCache) imageTexture(key resources.PackedKey) (TextureID, bool) {
	e, ok := c.images[key]
	if !ok || e.texture == 0 {
		return 0, false
	}
	return e.texture, true
}

// clear destroys every image texture and forgets all resources.
func (c *resourceCache) clear() {
	for _, e := range c.images {
		c.release(e)
	}
	clear(c.images)
	clear(c.fonts)
	clear(c.instances)
}
