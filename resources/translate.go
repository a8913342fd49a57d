package resources

import (
	"fmt"

	"github.com/gogpu/compositor/geom"
)

// UnsupportedFormatError is returned for image formats the renderer cannot
// store.
type UnsupportedFormatError struct {
	Key    ImageKey
	Format ImageFormat
}

func (e *UnsupportedFormatError) Error() string {
	msg := "unsupported image format"
	if e.Format == FormatRGB8 {
		msg = "unsupported image format, need alpha channel"
	}
	return fmt.Sprintf("resources: %s: %s (%s)", e.Key, msg, e.Format)
}

// TranslateImageFormat maps a producer format to a renderer format.
func TranslateImageFormat(f ImageFormat) (WireImageFormat, bool) {
	switch f {
	case FormatR8:
		return WireR8, true
	case FormatRG8:
		return WireRG8, true
	case FormatRGBA8:
		return WireRGBA8, true
	case FormatR16:
		return WireR16, true
	case FormatRG16:
		return WireRG16, true
	case FormatBGRA8:
		return WireBGRA8, true
	}
	return 0, false
}

// TranslateDescriptor converts an image descriptor to renderer form.
func TranslateDescriptor(key ImageKey, d ImageDescriptor) (WireImageDescriptor, error) {
	f, ok := TranslateImageFormat(d.Format)
	if !ok {
		return WireImageDescriptor{}, &UnsupportedFormatError{Key: key, Format: d.Format}
	}
	var flags WireImageFlags
	if d.Flags.IsOpaque {
		flags |= WireImageOpaque
	}
	if d.Flags.AllowMipmaps {
		flags |= WireImageAllowMipmaps
	}
	return WireImageDescriptor{
		Format: f,
		Size:   geom.DeviceIntSize{Width: int32(d.Width), Height: int32(d.Height)},
		Stride: d.Stride,
		Offset: d.Offset,
		Flags:  flags,
	}, nil
}

func translateOptions(o *FontInstanceOptions) *FontInstanceOptions {
	if o == nil {
		return nil
	}
	out := *o
	out.Flags &= knownFontFlags
	return &out
}

func translateDirtyRect(d ImageDirtyRect) *geom.DeviceIntRect {
	if d.All {
		return nil
	}
	r := d.Rect
	return &geom.DeviceIntRect{
		Min: geom.DeviceIntPoint{X: int32(r.Origin.X), Y: int32(r.Origin.Y)},
		Max: geom.DeviceIntPoint{X: int32(r.MaxX()), Y: int32(r.MaxY())},
	}
}

// TranslateUpdate lowers one resource update to a renderer command.
func TranslateUpdate(u ResourceUpdate) (Command, error) {
	switch u := u.(type) {
	case AddFont:
		b, err := u.Font.Bytes()
		if err != nil {
			return nil, fmt.Errorf("resources: add %s: %w", u.Key, err)
		}
		return CmdAddFont{Key: u.Key.Packed(), Bytes: b, Index: u.Font.Index()}, nil

	case DeleteFont:
		return CmdDeleteFont{Key: u.Key.Packed()}, nil

	case AddFontInstance:
		vars := make([]FontVariation, len(u.Variations))
		copy(vars, u.Variations)
		return CmdAddFontInstance{
			Key:             u.Key.Packed(),
			FontKey:         u.FontKey.Packed(),
			GlyphSizePx:     u.GlyphSizePx(),
			Options:         translateOptions(u.Options),
			PlatformOptions: u.PlatformOptions,
			Variations:      vars,
		}, nil

	case DeleteFontInstance:
		return CmdDeleteFontInstance{Key: u.Key.Packed()}, nil

	case AddImage:
		d, err := TranslateDescriptor(u.Key, u.Descriptor)
		if err != nil {
			return nil, err
		}
		return CmdAddImage{Key: u.Key.Packed(), Descriptor: d, Data: u.Data, Tiling: u.Tiling}, nil

	case UpdateImage:
		d, err := TranslateDescriptor(u.Key, u.Descriptor)
		if err != nil {
			return nil, err
		}
		return CmdUpdateImage{
			Key:        u.Key.Packed(),
			Descriptor: d,
			Data:       u.Data,
			Dirty:      translateDirtyRect(u.DirtyRect),
		}, nil

	case DeleteImage:
		return CmdDeleteImage{Key: u.Key.Packed()}, nil
	}
	return nil, fmt.Errorf("resources: unknown update %T", u)
}

// TranslateUpdates lowers a batch in order. It stops at the first update
// that cannot be translated and returns the commands translated so far.
func TranslateUpdates(updates []ResourceUpdate) ([]Command, error) {
	cmds := make([]Command, 0, len(updates))
	for _, u := range updates {
		c, err := TranslateUpdate(u)
		if err != nil {
			slogger().Warn("resources: update rejected", "update", fmt.Sprintf("%T", u), "err", err)
			return cmds, err
		}
		cmds = append(cmds, c)
	}
	slogger().Debug("resources: translated updates", "count", len(cmds))
	return cmds, nil
}
