package displaylist

import (
	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/resources"
	"github.com/gogpu/compositor/style"
)

// SpatialID names a node of the spatial tree of one built display list.
type SpatialID uint32

// ClipID names a clip of one built display list.
type ClipID uint32

// Ids every built display list starts with.
const (
	RootReferenceFrame SpatialID = 0
	RootScrollNode     SpatialID = 1
	RootClip           ClipID    = 0
)

// SpaceAndClip is the spatial node and clip an item is placed in.
type SpaceAndClip struct {
	Spatial SpatialID
	Clip    ClipID
}

// RootScroll is the root scroll node with no clip, the anchor every
// translation starts from.
func RootScroll() SpaceAndClip {
	return SpaceAndClip{Spatial: RootScrollNode, Clip: RootClip}
}

// CommonItemProperties are shared by every primitive.
type CommonItemProperties struct {
	ClipRect geom.LogicalRect
	Spatial  SpatialID
	Clip     ClipID
	Flags    PrimitiveFlags
}

// PropertyBinding is a transform that is either constant or bound to an
// animatable property.
type PropertyBinding struct {
	Bound bool
	Key   TransformKey
	Value geom.Transform3D
}

// ConstantTransform returns an unanimated binding of t.
func ConstantTransform(t geom.Transform3D) PropertyBinding {
	return PropertyBinding{Value: t}
}

// BoundTransform returns a binding of key with current value t.
func BoundTransform(key TransformKey, t geom.Transform3D) PropertyBinding {
	return PropertyBinding{Bound: true, Key: key, Value: t}
}

// BorderRadius is the resolved radius of each corner.
type BorderRadius struct {
	TopLeft     geom.LogicalSize
	TopRight    geom.LogicalSize
	BottomLeft  geom.LogicalSize
	BottomRight geom.LogicalSize
}

// ZeroRadius returns square corners.
func ZeroRadius() BorderRadius { return BorderRadius{} }

// UniformBorderRadius returns r on every corner.
func UniformBorderRadius(r float32) BorderRadius {
	s := geom.Sz(r, r)
	return BorderRadius{TopLeft: s, TopRight: s, BottomLeft: s, BottomRight: s}
}

// IsZero reports whether every corner is square.
func (r BorderRadius) IsZero() bool { return r == BorderRadius{} }

// GradientStop is a resolved color stop. Offset is in [0, 1].
type GradientStop struct {
	Offset float32
	Color  style.ColorF
}

// ReferenceFrame is the payload of TagPushReferenceFrame.
type ReferenceFrame struct {
	ID        SpatialID
	Parent    SpatialID
	Origin    geom.LogicalPoint
	Transform PropertyBinding
}

// StackingContext is the payload of TagPushStackingContext.
type StackingContext struct {
	Origin  geom.LogicalPoint
	Spatial SpatialID
	Flags   PrimitiveFlags
	Blend   style.MixBlendMode
	// Opacity is nil for fully opaque groups.
	Opacity        *OpacityBinding
	Filters        []style.StyleFilter
	BlendContainer bool
}

// ScrollFrame is the payload of TagDefineScrollFrame.
type ScrollFrame struct {
	ID          SpatialID
	Parent      SpaceAndClip
	ExternalID  ExternalScrollID
	ContentRect geom.LogicalRect
	ClipRect    geom.LogicalRect
	Offset      geom.LogicalVector
}

// Clip is the payload of the clip definition tags. Radius is zero unless
// Rounded is set.
type Clip struct {
	ID      ClipID
	Parent  SpaceAndClip
	Rect    geom.LogicalRect
	Radius  BorderRadius
	Rounded bool
}

// RectItem is the payload of TagRect.
type RectItem struct {
	Common CommonItemProperties
	Bounds geom.LogicalRect
	Color  style.ColorF
}

// GradientItem is the payload of TagLinearGradient.
type GradientItem struct {
	Common      CommonItemProperties
	Bounds      geom.LogicalRect
	Start, End  geom.LogicalPoint
	Stops       []GradientStop
	Extend      style.ExtendMode
	TileSize    geom.LogicalSize
	TileSpacing geom.LogicalSize
}

// RadialGradientItem is the payload of TagRadialGradient.
type RadialGradientItem struct {
	Common      CommonItemProperties
	Bounds      geom.LogicalRect
	Center      geom.LogicalPoint
	Radius      geom.LogicalSize
	Stops       []GradientStop
	Extend      style.ExtendMode
	TileSize    geom.LogicalSize
	TileSpacing geom.LogicalSize
}

// ConicGradientItem is the payload of TagConicGradient. Angle is in degrees.
type ConicGradientItem struct {
	Common      CommonItemProperties
	Bounds      geom.LogicalRect
	Center      geom.LogicalPoint
	Angle       float32
	Stops       []GradientStop
	Extend      style.ExtendMode
	TileSize    geom.LogicalSize
	TileSpacing geom.LogicalSize
}

// ImageItem is the payload of TagRepeatingImage.
type ImageItem struct {
	Common      CommonItemProperties
	Bounds      geom.LogicalRect
	StretchSize geom.LogicalSize
	TileSpacing geom.LogicalSize
	Rendering   ImageRendering
	AlphaType   AlphaType
	Key         resources.ImageKey
	Color       style.ColorF
}

// TextItem is the payload of TagText.
type TextItem struct {
	Common  CommonItemProperties
	Bounds  geom.LogicalRect
	Glyphs  []GlyphInstance
	Font    resources.FontInstanceKey
	Color   style.ColorF
	Options *GlyphOptions
}

// BorderSide is the color and style of one border edge.
type BorderSide struct {
	Color style.ColorF
	Style style.BorderStyle
}

// NormalBorder is a border drawn from per-side colors and styles.
type NormalBorder struct {
	Top, Right, Bottom, Left BorderSide
	Radius                   BorderRadius
	DoAA                     bool
}

// BorderItem is the payload of TagBorder.
type BorderItem struct {
	Common  CommonItemProperties
	Bounds  geom.LogicalRect
	Widths  geom.SideOffsets
	Details NormalBorder
}

// BoxShadowItem is the payload of TagBoxShadow.
type BoxShadowItem struct {
	Common   CommonItemProperties
	Box      geom.LogicalRect
	Offset   geom.LogicalVector
	Color    style.ColorF
	Blur     float32
	Spread   float32
	Radius   BorderRadius
	ClipMode style.BoxShadowClipMode
}

// HitTestItem is the payload of TagHitTest.
type HitTestItem struct {
	Common CommonItemProperties
	HitTag TagID
}

// Item is one decoded entry of a built display list, a payload value or a
// Pop marker.
type Item interface {
	Tag() Tag
}

// Pop marks the end of a reference frame or stacking context.
type Pop struct {
	Of Tag
}

// Tag implements Item.
func (p Pop) Tag() Tag {
	if p.Of == TagPushStackingContext {
		return TagPopStackingContext
	}
	return TagPopReferenceFrame
}

// Tag implements Item.
func (ReferenceFrame) Tag() Tag { return TagPushReferenceFrame }

// Tag implements Item.
func (StackingContext) Tag() Tag { return TagPushStackingContext }

// Tag implements Item.
func (ScrollFrame) Tag() Tag { return TagDefineScrollFrame }

// Tag implements Item.
func (c Clip) Tag() Tag {
	if c.Rounded {
		return TagDefineClipRoundedRect
	}
	return TagDefineClipRect
}

// Tag implements Item.
func (RectItem) Tag() Tag { return TagRect }

// Tag implements Item.
func (GradientItem) Tag() Tag { return TagLinearGradient }

// Tag implements Item.
func (RadialGradientItem) Tag() Tag { return TagRadialGradient }

// Tag implements Item.
func (ConicGradientItem) Tag() Tag { return TagConicGradient }

// Tag implements Item.
func (ImageItem) Tag() Tag { return TagRepeatingImage }

// Tag implements Item.
func (TextItem) Tag() Tag { return TagText }

// Tag implements Item.
func (BorderItem) Tag() Tag { return TagBorder }

// Tag implements Item.
func (BoxShadowItem) Tag() Tag { return TagBoxShadow }

// Tag implements Item.
func (HitTestItem) Tag() Tag { return TagHitTest }
