package displaylist

import (
	"errors"
	"fmt"

	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/resources"
	"github.com/gogpu/compositor/style"
)

// Builder errors.
var (
	ErrUnbalanced     = errors.New("displaylist: unbalanced push/pop")
	ErrUnknownSpatial = errors.New("displaylist: unknown spatial id")
	ErrUnknownClip    = errors.New("displaylist: unknown clip id")
)

// Builder records the items of one built display list.
//
// Misuse, such as popping a scope that is not open or referring to an id
// the builder never minted, does not panic; the first such error is kept
// and returned by Finalize.
type Builder struct {
	dl          *BuiltDisplayList
	nextSpatial SpatialID
	nextClip    ClipID
	open        []Tag
	err         error
}

// NewBuilder returns a builder for pipeline. The root reference frame, root
// scroll node and root clip exist from the start.
func NewBuilder(pipeline resources.PipelineID, contentSize geom.LogicalSize) *Builder {
	return &Builder{
		dl:          &BuiltDisplayList{Pipeline: pipeline, ContentSize: contentSize},
		nextSpatial: RootScrollNode + 1,
		nextClip:    RootClip + 1,
	}
}

func add[T any](b *Builder, tag Tag, table *[]T, v T) {
	b.dl.tags = append(b.dl.tags, tag)
	b.dl.refs = append(b.dl.refs, uint32(len(*table)))
	*table = append(*table, v)
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Builder) checkSpatial(id SpatialID) {
	if id >= b.nextSpatial {
		b.fail(fmt.Errorf("%w: %d", ErrUnknownSpatial, id))
	}
}

func (b *Builder) checkClip(id ClipID) {
	if id >= b.nextClip {
		b.fail(fmt.Errorf("%w: %d", ErrUnknownClip, id))
	}
}

func (b *Builder) checkCommon(c CommonItemProperties) {
	b.checkSpatial(c.Spatial)
	b.checkClip(c.Clip)
}

func (b *Builder) pop(t Tag) {
	want := t.pushFor()
	if len(b.open) == 0 || b.open[len(b.open)-1] != want {
		b.fail(fmt.Errorf("%w: %s without matching %s", ErrUnbalanced, t, want))
		return
	}
	b.open = b.open[:len(b.open)-1]
	b.dl.tags = append(b.dl.tags, t)
	b.dl.refs = append(b.dl.refs, 0)
}

// Depth returns the number of open reference frames and stacking contexts.
func (b *Builder) Depth() int { return len(b.open) }

// PushReferenceFrame opens a coordinate space at origin within parent and
// returns its id.
func (b *Builder) PushReferenceFrame(origin geom.LogicalPoint, parent SpatialID, transform PropertyBinding) SpatialID {
	b.checkSpatial(parent)
	id := b.nextSpatial
	b.nextSpatial++
	add(b, TagPushReferenceFrame, &b.dl.frames, ReferenceFrame{
		ID:        id,
		Parent:    parent,
		Origin:    origin,
		Transform: transform,
	})
	b.open = append(b.open, TagPushReferenceFrame)
	return id
}

// PopReferenceFrame closes the innermost reference frame.
func (b *Builder) PopReferenceFrame() { b.pop(TagPopReferenceFrame) }

// PushStackingContext opens a compositing group in spatial.
func (b *Builder) PushStackingContext(sc StackingContext) {
	b.checkSpatial(sc.Spatial)
	add(b, TagPushStackingContext, &b.dl.contexts, sc)
	b.open = append(b.open, TagPushStackingContext)
}

// PushSimpleStackingContext opens a stacking context with no blend or filter.
func (b *Builder) PushSimpleStackingContext(origin geom.LogicalPoint, spatial SpatialID, flags PrimitiveFlags) {
	b.PushStackingContext(StackingContext{Origin: origin, Spatial: spatial, Flags: flags})
}

// PopStackingContext closes the innermost stacking context.
func (b *Builder) PopStackingContext() { b.pop(TagPopStackingContext) }

// DefineScrollFrame defines a scroll node whose content is offset by offset
// within clip, and returns its id.
func (b *Builder) DefineScrollFrame(parent SpaceAndClip, external ExternalScrollID, content, clip geom.LogicalRect, offset geom.LogicalVector) SpatialID {
	b.checkSpatial(parent.Spatial)
	b.checkClip(parent.Clip)
	id := b.nextSpatial
	b.nextSpatial++
	add(b, TagDefineScrollFrame, &b.dl.scrolls, ScrollFrame{
		ID:          id,
		Parent:      parent,
		ExternalID:  external,
		ContentRect: content,
		ClipRect:    clip,
		Offset:      offset,
	})
	return id
}

func (b *Builder) defineClip(parent SpaceAndClip, rect geom.LogicalRect, radius BorderRadius, rounded bool) ClipID {
	b.checkSpatial(parent.Spatial)
	b.checkClip(parent.Clip)
	id := b.nextClip
	b.nextClip++
	tag := TagDefineClipRect
	if rounded {
		tag = TagDefineClipRoundedRect
	}
	add(b, tag, &b.dl.clips, Clip{ID: id, Parent: parent, Rect: rect, Radius: radius, Rounded: rounded})
	return id
}

// DefineClipRect defines an axis-aligned clip in parent.
func (b *Builder) DefineClipRect(parent SpaceAndClip, rect geom.LogicalRect) ClipID {
	return b.defineClip(parent, rect, ZeroRadius(), false)
}

// DefineClipRoundedRect defines a rounded rectangle clip in parent.
func (b *Builder) DefineClipRoundedRect(parent SpaceAndClip, rect geom.LogicalRect, radius BorderRadius) ClipID {
	return b.defineClip(parent, rect, radius, true)
}

// PushRect draws a filled rectangle.
func (b *Builder) PushRect(common CommonItemProperties, bounds geom.LogicalRect, color style.ColorF) {
	b.checkCommon(common)
	add(b, TagRect, &b.dl.rects, RectItem{Common: common, Bounds: bounds, Color: color})
}

// PushGradient draws a linear gradient.
func (b *Builder) PushGradient(g GradientItem) {
	b.checkCommon(g.Common)
	add(b, TagLinearGradient, &b.dl.linear, g)
}

// PushRadialGradient draws a radial gradient.
func (b *Builder) PushRadialGradient(g RadialGradientItem) {
	b.checkCommon(g.Common)
	add(b, TagRadialGradient, &b.dl.radial, g)
}

// PushConicGradient draws a conic gradient.
func (b *Builder) PushConicGradient(g ConicGradientItem) {
	b.checkCommon(g.Common)
	add(b, TagConicGradient, &b.dl.conic, g)
}

// PushRepeatingImage draws an image tiled over its bounds.
func (b *Builder) PushRepeatingImage(img ImageItem) {
	b.checkCommon(img.Common)
	add(b, TagRepeatingImage, &b.dl.images, img)
}

// PushText draws a glyph run.
func (b *Builder) PushText(t TextItem) {
	b.checkCommon(t.Common)
	add(b, TagText, &b.dl.texts, t)
}

// PushBorder draws a border.
func (b *Builder) PushBorder(br BorderItem) {
	b.checkCommon(br.Common)
	add(b, TagBorder, &b.dl.borders, br)
}

// PushBoxShadow draws a box shadow.
func (b *Builder) PushBoxShadow(s BoxShadowItem) {
	b.checkCommon(s.Common)
	add(b, TagBoxShadow, &b.dl.shadows, s)
}

// PushHitTest registers tag for hit testing over common.ClipRect.
func (b *Builder) PushHitTest(common CommonItemProperties, tag TagID) {
	b.checkCommon(common)
	add(b, TagHitTest, &b.dl.hits, HitTestItem{Common: common, HitTag: tag})
}

// Finalize returns the built list. It fails if any scope is still open or
// the builder was misused. The builder must not be used afterwards.
func (b *Builder) Finalize() (*BuiltDisplayList, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.open) > 0 {
		return nil, fmt.Errorf("%w: %d scopes left open", ErrUnbalanced, len(b.open))
	}
	dl := b.dl
	b.dl = nil
	return dl, nil
}
