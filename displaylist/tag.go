package displaylist

import "fmt"

// Tag is a single-byte item identifier in a built display list.
// Tags are organized into groups by their high nibble:
//
//	0x0X: Spatial tree (reference frames, stacking contexts, scroll frames)
//	0x1X: Clip definitions
//	0x2X: Primitives
//	0x3X: Hit testing
type Tag byte

// Tag constants. Each tag's payload is documented in its comment.
const (
	// TagPushReferenceFrame opens a coordinate space.
	// Payload: ReferenceFrame
	TagPushReferenceFrame Tag = 0x01

	// TagPopReferenceFrame closes the innermost reference frame.
	// Payload: none
	TagPopReferenceFrame Tag = 0x02

	// TagPushStackingContext opens a compositing group.
	// Payload: StackingContext
	TagPushStackingContext Tag = 0x03

	// TagPopStackingContext closes the innermost stacking context.
	// Payload: none
	TagPopStackingContext Tag = 0x04

	// TagDefineScrollFrame defines a scrolling spatial node.
	// Payload: ScrollFrame
	TagDefineScrollFrame Tag = 0x05

	// TagDefineClipRect defines an axis-aligned clip.
	// Payload: Clip
	TagDefineClipRect Tag = 0x10

	// TagDefineClipRoundedRect defines a rounded rectangle clip.
	// Payload: Clip
	TagDefineClipRoundedRect Tag = 0x11

	// TagRect draws a filled rectangle.
	// Payload: RectItem
	TagRect Tag = 0x20

	// TagLinearGradient draws a tiled linear gradient.
	// Payload: GradientItem
	TagLinearGradient Tag = 0x21

	// TagRadialGradient draws a tiled radial gradient.
	// Payload: RadialGradientItem
	TagRadialGradient Tag = 0x22

	// TagConicGradient draws a tiled conic gradient.
	// Payload: ConicGradientItem
	TagConicGradient Tag = 0x23

	// TagRepeatingImage draws an image, tiled over its bounds.
	// Payload: ImageItem
	TagRepeatingImage Tag = 0x24

	// TagText draws a glyph run.
	// Payload: TextItem
	TagText Tag = 0x25

	// TagBorder draws a four-sided border.
	// Payload: BorderItem
	TagBorder Tag = 0x26

	// TagBoxShadow draws a blurred box shadow.
	// Payload: BoxShadowItem
	TagBoxShadow Tag = 0x27

	// TagHitTest registers a hit-test rectangle.
	// Payload: HitTestItem
	TagHitTest Tag = 0x30
)

// String returns a human-readable name for the tag.
func (t Tag) String() string {
	switch t {
	case TagPushReferenceFrame:
		return "PushReferenceFrame"
	case TagPopReferenceFrame:
		return "PopReferenceFrame"
	case TagPushStackingContext:
		return "PushStackingContext"
	case TagPopStackingContext:
		return "PopStackingContext"
	case TagDefineScrollFrame:
		return "DefineScrollFrame"
	case TagDefineClipRect:
		return "DefineClipRect"
	case TagDefineClipRoundedRect:
		return "DefineClipRoundedRect"
	case TagRect:
		return "Rect"
	case TagLinearGradient:
		return "LinearGradient"
	case TagRadialGradient:
		return "RadialGradient"
	case TagConicGradient:
		return "ConicGradient"
	case TagRepeatingImage:
		return "RepeatingImage"
	case TagText:
		return "Text"
	case TagBorder:
		return "Border"
	case TagBoxShadow:
		return "BoxShadow"
	case TagHitTest:
		return "HitTest"
	default:
		return fmt.Sprintf("Tag(0x%02x)", byte(t))
	}
}

// IsSpatialCommand reports whether the tag belongs to the spatial tree group.
func (t Tag) IsSpatialCommand() bool {
	return t >= 0x01 && t <= 0x0F
}

// IsClipCommand reports whether the tag defines a clip.
func (t Tag) IsClipCommand() bool {
	return t >= 0x10 && t <= 0x1F
}

// IsPrimitive reports whether the tag draws something.
func (t Tag) IsPrimitive() bool {
	return t >= 0x20 && t <= 0x2F
}

// IsPush reports whether the tag opens a scope that a later pop closes.
func (t Tag) IsPush() bool {
	return t == TagPushReferenceFrame || t == TagPushStackingContext
}

// IsPop reports whether the tag closes a scope.
func (t Tag) IsPop() bool {
	return t == TagPopReferenceFrame || t == TagPopStackingContext
}

// pushFor returns the push tag a pop closes.
func (t Tag) pushFor() Tag {
	switch t {
	case TagPopReferenceFrame:
		return TagPushReferenceFrame
	case TagPopStackingContext:
		return TagPushStackingContext
	}
	return 0
}

// HasPayload reports whether the tag refers to a payload table entry.
func (t Tag) HasPayload() bool {
	return !t.IsPop()
}
