package resources

import (
	"fmt"

	"github.com/gogpu/compositor/geom"
)

// ImageFormat is the pixel layout of raw image bytes as the producer
// supplies them.
type ImageFormat uint8

// ImageFormat values.
const (
	FormatR8 ImageFormat = iota
	FormatRG8
	FormatRGB8
	FormatRGBA8
	FormatR16
	FormatRG16
	FormatRGB16
	FormatRGBA16
	FormatBGR8
	FormatBGRA8
)

var imageFormatNames = [...]string{
	FormatR8:     "R8",
	FormatRG8:    "RG8",
	FormatRGB8:   "RGB8",
	FormatRGBA8:  "RGBA8",
	FormatR16:    "R16",
	FormatRG16:   "RG16",
	FormatRGB16:  "RGB16",
	FormatRGBA16: "RGBA16",
	FormatBGR8:   "BGR8",
	FormatBGRA8:  "BGRA8",
}

func (f ImageFormat) String() string {
	if int(f) < len(imageFormatNames) {
		return imageFormatNames[f]
	}
	return fmt.Sprintf("ImageFormat(%d)", f)
}

// BytesPerPixel returns the size of one pixel of f.
func (f ImageFormat) BytesPerPixel() int {
	switch f {
	case FormatR8:
		return 1
	case FormatRG8, FormatR16:
		return 2
	case FormatRGB8, FormatBGR8:
		return 3
	case FormatRGBA8, FormatBGRA8, FormatRG16:
		return 4
	case FormatRGB16:
		return 6
	case FormatRGBA16:
		return 8
	}
	return 0
}

// ImageDescriptorFlags are boolean properties of an image.
type ImageDescriptorFlags struct {
	// IsOpaque lets the renderer skip blending.
	IsOpaque bool `yaml:"opaque,omitempty"`
	// AllowMipmaps lets the driver generate mipmaps.
	AllowMipmaps bool `yaml:"mipmaps,omitempty"`
}

// ImageDescriptor is the metadata of an image, without its pixels.
type ImageDescriptor struct {
	Format ImageFormat `yaml:"format"`
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	// Stride is the byte distance between rows; nil means Width*bpp.
	Stride *int32 `yaml:"stride,omitempty"`
	// Offset is the byte offset of the first pixel in the backing buffer.
	Offset int32                `yaml:"offset,omitempty"`
	Flags  ImageDescriptorFlags `yaml:"flags"`
}

// ComputeStride returns the effective row stride in bytes.
func (d ImageDescriptor) ComputeStride() int {
	if d.Stride != nil {
		return int(*d.Stride)
	}
	return d.Width * d.Format.BytesPerPixel()
}

// ImageBufferKind is the texture target an external texture lives in.
type ImageBufferKind uint8

// ImageBufferKind values.
const (
	BufferTexture2D ImageBufferKind = iota
	BufferTextureRect
	BufferTextureExternal
)

// ExternalImageType says how an external image is stored.
type ExternalImageType struct {
	// Buffer is set for heap buffers owned by the host. Otherwise the image
	// is a texture of kind Texture.
	Buffer  bool            `yaml:"buffer,omitempty"`
	Texture ImageBufferKind `yaml:"texture,omitempty"`
}

// TextureHandle returns the type of a texture-backed external image.
func TextureHandle(kind ImageBufferKind) ExternalImageType {
	return ExternalImageType{Texture: kind}
}

// BufferHandle returns the type of a heap-backed external image.
func BufferHandle() ExternalImageType { return ExternalImageType{Buffer: true} }

// ExternalImageData references an image the host owns and resolves at frame
// time through a lock and unlock handshake.
type ExternalImageData struct {
	ID ExternalImageID `yaml:"id"`
	// ChannelIndex selects the plane of a multi-plane image; 0 otherwise.
	ChannelIndex uint8             `yaml:"channel"`
	Type         ExternalImageType `yaml:"type"`
}

// ImageData is the backing store of an image: raw bytes owned by the
// renderer from now on, or a reference to an external image.
type ImageData struct {
	Raw      []byte             `yaml:"raw,omitempty"`
	External *ExternalImageData `yaml:"external,omitempty"`
}

// RawImage returns image data holding b.
func RawImage(b []byte) ImageData { return ImageData{Raw: b} }

// ExternalImage returns image data referring to an external image.
func ExternalImage(e ExternalImageData) ImageData { return ImageData{External: &e} }

// IsExternal reports whether d refers to an external image.
func (d ImageData) IsExternal() bool { return d.External != nil }

// ImageDirtyRect is the region of an image an update replaces.
type ImageDirtyRect struct {
	// All marks the whole image dirty; Rect is ignored.
	All  bool             `yaml:"all,omitempty"`
	Rect geom.LogicalRect `yaml:"rect,omitempty"`
}

// DirtyAll returns a dirty rect covering the whole image.
func DirtyAll() ImageDirtyRect { return ImageDirtyRect{All: true} }

// DirtyPartial returns a dirty rect covering r.
func DirtyPartial(r geom.LogicalRect) ImageDirtyRect { return ImageDirtyRect{Rect: r} }

// TileSize is the edge length of the tiles a large image is split into.
type TileSize = uint16
