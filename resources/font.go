package resources

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"github.com/gogpu/compositor/style"
)

// AuPerPx is the number of app units in one pixel.
const AuPerPx = 60

// Au is a length in app units, 1/60 of a logical pixel.
type Au int32

// AuFromPx converts pixels to app units, rounding to nearest.
func AuFromPx(px float32) Au { return Au(math32.Round(px * AuPerPx)) }

// Px returns a in pixels.
func (a Au) Px() float32 { return float32(a) / AuPerPx }

// FontRenderMode selects how glyphs are rasterized.
type FontRenderMode uint8

// FontRenderMode values.
const (
	RenderModeMono FontRenderMode = iota
	RenderModeAlpha
	RenderModeSubpixel
)

func (m FontRenderMode) String() string {
	switch m {
	case RenderModeMono:
		return "mono"
	case RenderModeAlpha:
		return "alpha"
	case RenderModeSubpixel:
		return "subpixel"
	}
	return fmt.Sprintf("FontRenderMode(%d)", m)
}

// FontInstanceFlags is a bitset of glyph rasterization options.
type FontInstanceFlags uint32

// Flags understood on every platform.
const (
	FlagSyntheticBold    FontInstanceFlags = 1 << 1
	FlagEmbeddedBitmaps  FontInstanceFlags = 1 << 2
	FlagSubpixelBGR      FontInstanceFlags = 1 << 3
	FlagTranspose        FontInstanceFlags = 1 << 4
	FlagFlipX            FontInstanceFlags = 1 << 5
	FlagFlipY            FontInstanceFlags = 1 << 6
	FlagSubpixelPosition FontInstanceFlags = 1 << 7
)

// Platform flags. Bit 16 means a different thing on each platform.
const (
	FlagForceGDI       FontInstanceFlags = 1 << 16 // Windows
	FlagFontSmoothing  FontInstanceFlags = 1 << 16 // macOS
	FlagForceAutohint  FontInstanceFlags = 1 << 16 // FreeType
	FlagNoAutohint     FontInstanceFlags = 1 << 17
	FlagVerticalLayout FontInstanceFlags = 1 << 18
	FlagLCDVertical    FontInstanceFlags = 1 << 19
)

const knownFontFlags = FlagSyntheticBold | FlagEmbeddedBitmaps | FlagSubpixelBGR |
	FlagTranspose | FlagFlipX | FlagFlipY | FlagSubpixelPosition |
	FlagForceAutohint | FlagNoAutohint | FlagVerticalLayout | FlagLCDVertical

// Has reports whether every bit of o is set in f.
func (f FontInstanceFlags) Has(o FontInstanceFlags) bool { return f&o == o }

func (f FontInstanceFlags) String() string {
	names := []struct {
		bit  FontInstanceFlags
		name string
	}{
		{FlagSyntheticBold, "synthetic-bold"},
		{FlagEmbeddedBitmaps, "embedded-bitmaps"},
		{FlagSubpixelBGR, "subpixel-bgr"},
		{FlagTranspose, "transpose"},
		{FlagFlipX, "flip-x"},
		{FlagFlipY, "flip-y"},
		{FlagSubpixelPosition, "subpixel-position"},
		{1 << 16, "platform-16"},
		{FlagNoAutohint, "no-autohint"},
		{FlagVerticalLayout, "vertical-layout"},
		{FlagLCDVertical, "lcd-vertical"},
	}
	var parts []string
	for _, n := range names {
		if f&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// SyntheticItalics slants glyphs of an upright font.
type SyntheticItalics struct {
	// Angle is in 1/256 degree units, as the rasterizer expects.
	Angle int16 `yaml:"angle"`
}

// SyntheticItalicsFromDegrees converts an angle in degrees.
func SyntheticItalicsFromDegrees(deg float32) SyntheticItalics {
	return SyntheticItalics{Angle: int16(math32.Round(deg * 256))}
}

// Degrees returns the slant angle in degrees.
func (s SyntheticItalics) Degrees() float32 { return float32(s.Angle) / 256 }

// FontInstanceOptions are the platform-independent options of a font instance.
type FontInstanceOptions struct {
	RenderMode FontRenderMode    `yaml:"render-mode"`
	Flags      FontInstanceFlags `yaml:"flags"`
	// BgColor, when opaque and rendering subpixel text, is the estimated
	// background glyphs are blended against.
	BgColor          style.ColorU     `yaml:"bg-color"`
	SyntheticItalics SyntheticItalics `yaml:"synthetic-italics"`
}

// DefaultFontInstanceOptions returns subpixel rendering with no flags.
func DefaultFontInstanceOptions() FontInstanceOptions {
	return FontInstanceOptions{RenderMode: RenderModeSubpixel, BgColor: style.Transparent}
}

// FontVariation sets one axis of a variable font.
type FontVariation struct {
	Tag   uint32  `yaml:"tag"`
	Value float32 `yaml:"value"`
}

// Tag packs a four-letter OpenType tag such as "wght".
func Tag(s string) uint32 {
	var t uint32
	for i := 0; i < 4; i++ {
		c := byte(' ')
		if i < len(s) {
			c = s[i]
		}
		t = t<<8 | uint32(c)
	}
	return t
}

// FontInstancePlatformOptions are the rasterizer options of one platform
// family. The set of implementations is closed.
type FontInstancePlatformOptions interface {
	platformOptions()
}

// WindowsFontOptions are DirectWrite rasterizer options.
type WindowsFontOptions struct {
	Gamma          uint16 `yaml:"gamma"`
	Contrast       uint8  `yaml:"contrast"`
	ClearTypeLevel uint8  `yaml:"cleartype-level"`
}

// MacFontOptions exist for layout parity; Core Text takes no options.
type MacFontOptions struct {
	Unused uint32 `yaml:"unused"`
}

// FontLCDFilter is the FreeType LCD filter.
type FontLCDFilter uint8

// FontLCDFilter values.
const (
	LCDFilterNone FontLCDFilter = iota
	LCDFilterDefault
	LCDFilterLight
	LCDFilterLegacy
)

// FontHinting is the FreeType hinting mode.
type FontHinting uint8

// FontHinting values.
const (
	HintingNone FontHinting = iota
	HintingMono
	HintingLight
	HintingNormal
	HintingLCD
)

// FreeTypeFontOptions are FreeType rasterizer options, used on every
// platform other than Windows and macOS.
type FreeTypeFontOptions struct {
	LCDFilter FontLCDFilter `yaml:"lcd-filter"`
	Hinting   FontHinting   `yaml:"hinting"`
}

func (WindowsFontOptions) platformOptions()  {}
func (MacFontOptions) platformOptions()      {}
func (FreeTypeFontOptions) platformOptions() {}

// DefaultWindowsFontOptions returns the DirectWrite defaults.
func DefaultWindowsFontOptions() WindowsFontOptions {
	return WindowsFontOptions{Gamma: 300, Contrast: 100, ClearTypeLevel: 100}
}

// DefaultFreeTypeFontOptions returns the FreeType defaults.
func DefaultFreeTypeFontOptions() FreeTypeFontOptions {
	return FreeTypeFontOptions{LCDFilter: LCDFilterDefault, Hinting: HintingLCD}
}
