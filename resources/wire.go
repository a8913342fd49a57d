package resources

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/compositor/geom"
)

// WireImageFormat is an image format the renderer can store.
type WireImageFormat uint8

// WireImageFormat values.
const (
	WireR8 WireImageFormat = iota
	WireRG8
	WireRGBA8
	WireR16
	WireRG16
	WireBGRA8
)

func (f WireImageFormat) String() string {
	switch f {
	case WireR8:
		return "R8"
	case WireRG8:
		return "RG8"
	case WireRGBA8:
		return "RGBA8"
	case WireR16:
		return "R16"
	case WireRG16:
		return "RG16"
	case WireBGRA8:
		return "BGRA8"
	}
	return fmt.Sprintf("WireImageFormat(%d)", f)
}

// BytesPerPixel returns the size of one pixel as supplied by the producer.
func (f WireImageFormat) BytesPerPixel() int {
	switch f {
	case WireR8:
		return 1
	case WireRG8, WireR16:
		return 2
	default:
		return 4
	}
}

// TextureFormat returns the GPU texture format images of f are stored in.
// Formats without a direct GPU equivalent are widened to 32-bit float
// channels; WidenPixels performs the conversion.
func (f WireImageFormat) TextureFormat() gputypes.TextureFormat {
	switch f {
	case WireR8:
		return gputypes.TextureFormatR8Unorm
	case WireRGBA8:
		return gputypes.TextureFormatRGBA8Unorm
	case WireBGRA8:
		return gputypes.TextureFormatBGRA8Unorm
	case WireR16:
		return gputypes.TextureFormatR32Float
	case WireRG8, WireRG16:
		return gputypes.TextureFormatRG32Float
	}
	return gputypes.TextureFormatUndefined
}

// Widened reports whether WidenPixels converts data of this format.
func (f WireImageFormat) Widened() bool {
	return f == WireRG8 || f == WireR16 || f == WireRG16
}

// WidenPixels converts tightly packed pixels of format f to the layout of
// f.TextureFormat(). Formats stored natively are returned unchanged.
func WidenPixels(f WireImageFormat, src []byte) []byte {
	var out []byte
	put := func(v float32) {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(v))
	}
	switch f {
	case WireRG8:
		out = make([]byte, 0, len(src)*4)
		for _, b := range src {
			put(float32(b) / 255)
		}
	case WireR16, WireRG16:
		out = make([]byte, 0, len(src)*2)
		for i := 0; i+1 < len(src); i += 2 {
			put(float32(binary.LittleEndian.Uint16(src[i:])) / 65535)
		}
	default:
		return src
	}
	return out
}

// WireImageFlags is the renderer's image descriptor flag set.
type WireImageFlags uint8

// WireImageFlags bits.
const (
	WireImageOpaque WireImageFlags = 1 << iota
	WireImageAllowMipmaps
)

// WireImageDescriptor is an image descriptor in renderer form.
type WireImageDescriptor struct {
	Format WireImageFormat
	Size   geom.DeviceIntSize
	Stride *int32
	Offset int32
	Flags  WireImageFlags
}

// Opaque reports whether blending may be skipped for the image.
func (d WireImageDescriptor) Opaque() bool { return d.Flags&WireImageOpaque != 0 }

// Command is one renderer resource command. The set is closed.
type Command interface {
	command()
}

// CmdAddFont adds a font from its file bytes.
type CmdAddFont struct {
	Key   PackedKey
	Bytes []byte
	Index uint32
}

// CmdDeleteFont deletes a font.
type CmdDeleteFont struct {
	Key PackedKey
}

// CmdAddFontInstance adds a font instance at a device pixel size.
type CmdAddFontInstance struct {
	Key             PackedKey
	FontKey         PackedKey
	GlyphSizePx     float32
	Options         *FontInstanceOptions
	PlatformOptions FontInstancePlatformOptions
	Variations      []FontVariation
}

// CmdDeleteFontInstance deletes a font instance.
type CmdDeleteFontInstance struct {
	Key PackedKey
}

// CmdAddImage adds an image.
type CmdAddImage struct {
	Key        PackedKey
	Descriptor WireImageDescriptor
	Data       ImageData
	Tiling     *TileSize
}

// CmdUpdateImage replaces part of an image. A nil Dirty means the whole image.
type CmdUpdateImage struct {
	Key        PackedKey
	Descriptor WireImageDescriptor
	Data       ImageData
	Dirty      *geom.DeviceIntRect
}

// CmdDeleteImage deletes an image.
type CmdDeleteImage struct {
	Key PackedKey
}

func (CmdAddFont) command()            {}
func (CmdDeleteFont) command()         {}
func (CmdAddFontInstance) command()    {}
func (CmdDeleteFontInstance) command() {}
func (CmdAddImage) command()           {}
func (CmdUpdateImage) command()        {}
func (CmdDeleteImage) command()        {}
