package displaylist

import (
	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/resources"
	"github.com/gogpu/compositor/style"
)

// PrimitiveFlags are per-item rendering hints.
type PrimitiveFlags uint8

// PrimitiveFlags bits.
const (
	FlagBackfaceVisible PrimitiveFlags = 1 << iota
	FlagScrollbarContainer
	FlagScrollbarThumb
	FlagPreferCompositorSurface
	FlagSupportsExternalCompositorSurface
)

// Has reports whether every bit of o is set in f.
func (f PrimitiveFlags) Has(o PrimitiveFlags) bool { return f&o == o }

// TagID identifies a frame for hit testing. Kind separates overlapping uses
// of the same ID, such as a frame and its scrollbar.
type TagID struct {
	ID   uint64 `yaml:"id"`
	Kind uint16 `yaml:"kind"`
}

// ExternalScrollID is the host's name for a scroll container.
type ExternalScrollID uint64

// TransformKey names an animatable transform property.
type TransformKey uint64

// TransformBinding is a frame transform together with the key it is
// animated under.
type TransformBinding struct {
	Key   TransformKey
	Value geom.Transform3D
}

// OpacityKey names an animatable opacity property.
type OpacityKey uint64

// OpacityBinding is a frame opacity in [0, 1] together with the key it is
// animated under.
type OpacityBinding struct {
	Key   OpacityKey
	Value float32
}

// PositionKind is the CSS position scheme of a frame.
type PositionKind uint8

// Position kinds.
const (
	PositionStatic PositionKind = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
)

func (k PositionKind) String() string {
	switch k {
	case PositionStatic:
		return "static"
	case PositionRelative:
		return "relative"
	case PositionAbsolute:
		return "absolute"
	case PositionFixed:
		return "fixed"
	}
	return "unknown"
}

// PositionInfo places a frame relative to the node its kind selects.
type PositionInfo struct {
	Kind PositionKind
	X, Y float32
}

// Static returns a static position at (x, y) from the parent.
func Static(x, y float32) PositionInfo { return PositionInfo{Kind: PositionStatic, X: x, Y: y} }

// Relative returns a relative position at (x, y) from the parent.
func Relative(x, y float32) PositionInfo { return PositionInfo{Kind: PositionRelative, X: x, Y: y} }

// Absolute returns a position at (x, y) from the nearest positioned ancestor.
func Absolute(x, y float32) PositionInfo { return PositionInfo{Kind: PositionAbsolute, X: x, Y: y} }

// Fixed returns a position at (x, y) from the pipeline root.
func Fixed(x, y float32) PositionInfo { return PositionInfo{Kind: PositionFixed, X: x, Y: y} }

// IsPositioned reports whether the frame starts a new containing block for
// absolutely positioned descendants.
func (p PositionInfo) IsPositioned() bool { return p.Kind != PositionStatic }

// Offset returns the position offsets as a point.
func (p PositionInfo) Offset() geom.LogicalPoint { return geom.Pt(p.X, p.Y) }

// GlyphInstance is one positioned glyph.
type GlyphInstance struct {
	Index uint32
	Point geom.LogicalPoint
}

// GlyphOptions override the font instance's render mode and flags for one
// glyph run.
type GlyphOptions struct {
	RenderMode resources.FontRenderMode
	Flags      resources.FontInstanceFlags
}

// ImageRendering selects the sampling filter of an image.
type ImageRendering uint8

// Image rendering modes.
const (
	RenderingAuto ImageRendering = iota
	RenderingCrispEdges
	RenderingPixelated
)

// AlphaType says whether image pixels are premultiplied.
type AlphaType uint8

// Alpha types.
const (
	AlphaStraight AlphaType = iota
	AlphaPremultiplied
)

// ImageInfo is a resolved background image.
type ImageInfo struct {
	Key resources.ImageKey
	// Size is the intrinsic size of the image.
	Size geom.LogicalSize
}

// RectBackground is the content of one background layer. Kind selects the
// meaningful field.
type RectBackground struct {
	Kind   style.BackgroundContentKind
	Color  style.ColorU
	Linear *style.LinearGradient
	Radial *style.RadialGradient
	Conic  *style.ConicGradient
	Image  *ImageInfo
}

// ColorLayer returns a solid color background layer.
func ColorLayer(c style.ColorU) RectBackground {
	return RectBackground{Kind: style.BackgroundColor, Color: c}
}

// LinearLayer returns a linear gradient background layer.
func LinearLayer(g style.LinearGradient) RectBackground {
	return RectBackground{Kind: style.BackgroundLinearGradient, Linear: &g}
}

// RadialLayer returns a radial gradient background layer.
func RadialLayer(g style.RadialGradient) RectBackground {
	return RectBackground{Kind: style.BackgroundRadialGradient, Radial: &g}
}

// ConicLayer returns a conic gradient background layer.
func ConicLayer(g style.ConicGradient) RectBackground {
	return RectBackground{Kind: style.BackgroundConicGradient, Conic: &g}
}

// ImageLayer returns an image background layer.
func ImageLayer(key resources.ImageKey, size geom.LogicalSize) RectBackground {
	return RectBackground{Kind: style.BackgroundImage, Image: &ImageInfo{Key: key, Size: size}}
}

// ContentSize returns the intrinsic size of the layer, if it has one.
func (b RectBackground) ContentSize() (geom.LogicalSize, bool) {
	if b.Kind == style.BackgroundImage && b.Image != nil {
		return b.Image.Size, true
	}
	return geom.LogicalSize{}, false
}

// LayoutRectContent is one piece of content drawn inside a frame: Text,
// Background, Image or Border. The set is closed.
type LayoutRectContent interface {
	layoutRectContent()
}

// Text is a run of glyphs.
type Text struct {
	Glyphs          []GlyphInstance
	FontInstanceKey resources.FontInstanceKey
	Color           style.ColorU
	Options         *GlyphOptions
	// Overflow reports whether the text may overflow the frame
	// horizontally and vertically.
	Overflow [2]bool
	Shadow   *style.StyleBoxShadow
}

// Background is one background layer.
type Background struct {
	Content RectBackground
	Size    *style.StyleBackgroundSize
	Offset  *style.StyleBackgroundPosition
	Repeat  *style.StyleBackgroundRepeat
}

// Image is an image drawn at Offset inside the frame.
type Image struct {
	Size            geom.LogicalSize
	Offset          geom.LogicalPoint
	Rendering       ImageRendering
	AlphaType       AlphaType
	Key             resources.ImageKey
	BackgroundColor style.ColorU
}

// Border is the per-edge border of a frame.
type Border struct {
	Widths BorderWidths
	Colors BorderColors
	Styles BorderStyles
}

// BorderWidths holds the width of each edge; nil means unset.
type BorderWidths struct {
	Top, Right, Bottom, Left *style.CssPropertyValue[style.PixelValue]
}

// BorderColors holds the color of each edge; nil means unset.
type BorderColors struct {
	Top, Right, Bottom, Left *style.CssPropertyValue[style.ColorU]
}

// BorderStyles holds the style of each edge; nil means unset.
type BorderStyles struct {
	Top, Right, Bottom, Left *style.CssPropertyValue[style.BorderStyle]
}

func (Text) layoutRectContent()       {}
func (Background) layoutRectContent() {}
func (Image) layoutRectContent()      {}
func (Border) layoutRectContent()     {}

// BoxShadow holds the shadow of each edge of a frame. ClipMode is the pass
// the shadow is drawn in.
type BoxShadow struct {
	ClipMode style.BoxShadowClipMode
	Top      *style.CssPropertyValue[style.StyleBoxShadow]
	Right    *style.CssPropertyValue[style.StyleBoxShadow]
	Bottom   *style.CssPropertyValue[style.StyleBoxShadow]
	Left     *style.CssPropertyValue[style.StyleBoxShadow]
}

// UniformShadow returns a BoxShadow with s on all four edges.
func UniformShadow(s style.StyleBoxShadow) *BoxShadow {
	v := style.Exact(s)
	return &BoxShadow{ClipMode: s.ClipMode, Top: &v, Right: style.Ptr(v), Bottom: style.Ptr(v), Left: style.Ptr(v)}
}

// DisplayListFrame is a box with content and children.
type DisplayListFrame struct {
	Size         geom.LogicalSize
	Position     PositionInfo
	BorderRadius style.StyleBorderRadius
	BoxShadow    *BoxShadow
	Content      []LayoutRectContent
	Children     []DisplayListMsg
	// ClipChildren, when set, clips descendants to a rect of that size.
	ClipChildren *geom.LogicalSize
	Flags        PrimitiveFlags
	Tag          *TagID
	Transform    *TransformBinding
	Opacity      *OpacityBinding
	MixBlendMode *style.MixBlendMode
	// HasMixBlendChildren marks the frame as the backdrop a descendant's
	// mix-blend-mode blends against.
	HasMixBlendChildren bool
}

// NeedsStackingContext reports whether the frame is composited as a group.
func (f *DisplayListFrame) NeedsStackingContext() bool {
	return f.Transform != nil || f.Opacity != nil || f.MixBlendMode != nil || f.HasMixBlendChildren
}

// DisplayListScrollFrame is a frame whose children scroll within ParentRect.
type DisplayListScrollFrame struct {
	Frame       DisplayListFrame
	ParentRect  geom.LogicalRect
	ContentRect geom.LogicalRect
	ScrollID    ExternalScrollID
	ScrollTag   TagID
}

// DisplayListMsg is a node of the display list tree: *DisplayListFrame or
// *DisplayListScrollFrame.
type DisplayListMsg interface {
	// Base returns the frame part of the node.
	Base() *DisplayListFrame
}

// Base returns f.
func (f *DisplayListFrame) Base() *DisplayListFrame { return f }

// Base returns the scroll frame's frame.
func (s *DisplayListScrollFrame) Base() *DisplayListFrame { return &s.Frame }

// CachedDisplayList is the display list of one pipeline.
type CachedDisplayList struct {
	Root     DisplayListMsg
	RootSize geom.LogicalSize
}

// Walk visits every node depth first, parents before children. It stops when
// fn returns false.
func (l CachedDisplayList) Walk(fn func(msg DisplayListMsg, depth int) bool) {
	if l.Root == nil {
		return
	}
	type entry struct {
		msg   DisplayListMsg
		depth int
	}
	stack := []entry{{l.Root, 0}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(e.msg, e.depth) {
			return
		}
		children := e.msg.Base().Children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, entry{children[i], e.depth + 1})
		}
	}
}
