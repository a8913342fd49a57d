package displaylist

import (
	"fmt"

	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/resources"
)

// BuiltDisplayList is the flattened output of translation. Items are kept
// in a tag stream; each tag that carries a payload indexes into the payload
// table of its kind.
//
// A BuiltDisplayList is immutable once returned by Builder.Finalize.
type BuiltDisplayList struct {
	Pipeline    resources.PipelineID
	ContentSize geom.LogicalSize

	tags []Tag
	refs []uint32

	frames   []ReferenceFrame
	contexts []StackingContext
	scrolls  []ScrollFrame
	clips    []Clip
	rects    []RectItem
	linear   []GradientItem
	radial   []RadialGradientItem
	conic    []ConicGradientItem
	images   []ImageItem
	texts    []TextItem
	borders  []BorderItem
	shadows  []BoxShadowItem
	hits     []HitTestItem
}

// Len returns the number of items, pops included.
func (dl *BuiltDisplayList) Len() int { return len(dl.tags) }

// IsEmpty reports whether the list has no items.
func (dl *BuiltDisplayList) IsEmpty() bool { return len(dl.tags) == 0 }

// Tags returns the tag stream. The slice must not be modified.
func (dl *BuiltDisplayList) Tags() []Tag { return dl.tags }

// PrimitiveCount returns the number of drawing items.
func (dl *BuiltDisplayList) PrimitiveCount() int {
	n := 0
	for _, t := range dl.tags {
		if t.IsPrimitive() {
			n++
		}
	}
	return n
}

// Count returns the number of items tagged t.
func (dl *BuiltDisplayList) Count(t Tag) int {
	n := 0
	for _, u := range dl.tags {
		if u == t {
			n++
		}
	}
	return n
}

// Items decodes the whole list.
func (dl *BuiltDisplayList) Items() []Item {
	out := make([]Item, 0, len(dl.tags))
	d := NewDecoder(dl)
	for d.Next() {
		out = append(out, d.Item())
	}
	return out
}

// CheckBalanced verifies that every push has a matching pop of the same kind
// and that scopes nest properly.
func (dl *BuiltDisplayList) CheckBalanced() error {
	var open []Tag
	for i, t := range dl.tags {
		switch {
		case t.IsPush():
			open = append(open, t)
		case t.IsPop():
			if len(open) == 0 {
				return fmt.Errorf("%w: %s at %d with nothing open", ErrUnbalanced, t, i)
			}
			if top := open[len(open)-1]; top != t.pushFor() {
				return fmt.Errorf("%w: %s at %d closes %s", ErrUnbalanced, t, i, top)
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return fmt.Errorf("%w: %d scopes left open", ErrUnbalanced, len(open))
	}
	return nil
}

// Decoder reads a built display list item by item.
//
// Example usage:
//
//	dec := NewDecoder(dl)
//	for dec.Next() {
//	    switch dec.Tag() {
//	    case TagRect:
//	        r := dec.Rect()
//	        // draw r
//	    case TagPopReferenceFrame:
//	        // leave the frame
//	    }
//	}
type Decoder struct {
	dl  *BuiltDisplayList
	idx int
}

// NewDecoder returns a decoder positioned before the first item.
func NewDecoder(dl *BuiltDisplayList) *Decoder {
	return &Decoder{dl: dl, idx: -1}
}

// Next advances to the next item. It returns false at the end of the list.
func (d *Decoder) Next() bool {
	if d.idx+1 >= len(d.dl.tags) {
		d.idx = len(d.dl.tags)
		return false
	}
	d.idx++
	return true
}

// Tag returns the tag of the current item.
func (d *Decoder) Tag() Tag { return d.dl.tags[d.idx] }

// Position returns the index of the current item.
func (d *Decoder) Position() int { return d.idx }

func (d *Decoder) ref() uint32 { return d.dl.refs[d.idx] }

// ReferenceFrame returns the payload of a TagPushReferenceFrame item.
func (d *Decoder) ReferenceFrame() ReferenceFrame { return d.dl.frames[d.ref()] }

// StackingContext returns the payload of a TagPushStackingContext item.
func (d *Decoder) StackingContext() StackingContext { return d.dl.contexts[d.ref()] }

// ScrollFrame returns the payload of a TagDefineScrollFrame item.
func (d *Decoder) ScrollFrame() ScrollFrame { return d.dl.scrolls[d.ref()] }

// Clip returns the payload of a clip definition item.
func (d *Decoder) Clip() Clip { return d.dl.clips[d.ref()] }

// Rect returns the payload of a TagRect item.
func (d *Decoder) Rect() RectItem { return d.dl.rects[d.ref()] }

// LinearGradient returns the payload of a TagLinearGradient item.
func (d *Decoder) LinearGradient() GradientItem { return d.dl.linear[d.ref()] }

// RadialGradient returns the payload of a TagRadialGradient item.
func (d *Decoder) RadialGradient() RadialGradientItem { return d.dl.radial[d.ref()] }

// ConicGradient returns the payload of a TagConicGradient item.
func (d *Decoder) ConicGradient() ConicGradientItem { return d.dl.conic[d.ref()] }

// Image returns the payload of a TagRepeatingImage item.
func (d *Decoder) Image() ImageItem { return d.dl.images[d.ref()] }

// Text returns the payload of a TagText item.
func (d *Decoder) Text() TextItem { return d.dl.texts[d.ref()] }

// Border returns the payload of a TagBorder item.
func (d *Decoder) Border() BorderItem { return d.dl.borders[d.ref()] }

// BoxShadow returns the payload of a TagBoxShadow item.
func (d *Decoder) BoxShadow() BoxShadowItem { return d.dl.shadows[d.ref()] }

// HitTest returns the payload of a TagHitTest item.
func (d *Decoder) HitTest() HitTestItem { return d.dl.hits[d.ref()] }

// Item returns the current item as a value.
func (d *Decoder) Item() Item {
	switch t := d.Tag(); t {
	case TagPushReferenceFrame:
		return d.ReferenceFrame()
	case TagPushStackingContext:
		return d.StackingContext()
	case TagPopReferenceFrame, TagPopStackingContext:
		return Pop{Of: t.pushFor()}
	case TagDefineScrollFrame:
		return d.ScrollFrame()
	case TagDefineClipRect, TagDefineClipRoundedRect:
		return d.Clip()
	case TagRect:
		return d.Rect()
	case TagLinearGradient:
		return d.LinearGradient()
	case TagRadialGradient:
		return d.RadialGradient()
	case TagConicGradient:
		return d.ConicGradient()
	case TagRepeatingImage:
		return d.Image()
	case TagText:
		return d.Text()
	case TagBorder:
		return d.Border()
	case TagBoxShadow:
		return d.BoxShadow()
	case TagHitTest:
		return d.HitTest()
	default:
		panic(fmt.Sprintf("displaylist: corrupt tag stream: %s", t))
	}
}
