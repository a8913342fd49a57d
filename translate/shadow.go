package translate

import (
	"github.com/gogpu/compositor/displaylist"
	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/style"
)

// shadowGamma is applied to box-shadow colors only.
const shadowGamma = 2.2

type edge uint8

const (
	edgeTop edge = iota
	edgeRight
	edgeBottom
	edgeLeft
)

func exactShadow(v *style.CssPropertyValue[style.StyleBoxShadow]) *style.StyleBoxShadow {
	if v == nil {
		return nil
	}
	s, ok := v.Get()
	if !ok {
		return nil
	}
	return &s
}

// pushBoxShadow emits the shadows of bs that belong to pass. One edge, two
// opposite edges or all four edges may be set; any other combination draws
// nothing. With four edges the top shadow stands for all of them.
func pushBoxShadow(b *displaylist.Builder, bounds geom.LogicalRect, pass style.BoxShadowClipMode,
	bs *displaylist.BoxShadow, radius style.StyleBorderRadius, parent displaylist.SpaceAndClip) {
	sides := [4]*style.StyleBoxShadow{
		edgeTop:    exactShadow(bs.Top),
		edgeRight:  exactShadow(bs.Right),
		edgeBottom: exactShadow(bs.Bottom),
		edgeLeft:   exactShadow(bs.Left),
	}
	var present []edge
	for e, s := range sides {
		if s != nil {
			present = append(present, edge(e))
		}
	}

	switch len(present) {
	case 1:
		e := present[0]
		pushShadowEdge(b, *sides[e], e, bounds, radius, pass, parent)
	case 2:
		a, c := present[0], present[1]
		if !(a == edgeTop && c == edgeBottom) && !(a == edgeRight && c == edgeLeft) {
			return
		}
		pushShadowEdge(b, *sides[a], a, bounds, radius, pass, parent)
		pushShadowEdge(b, *sides[c], c, bounds, radius, pass, parent)
	case 4:
		top := *sides[edgeTop]
		pushShadow(b, top, radius, bounds, shadowClipRect(top, bounds), pass, parent)
	}
}

// pushShadowEdge emits a shadow along one edge, clipped to a strip of twice
// the blur plus spread along that edge: inside the bounds for inset
// shadows, outside them for outset ones. A shadow without blur or spread
// draws nothing.
func pushShadowEdge(b *displaylist.Builder, s style.StyleBoxShadow, e edge, bounds geom.LogicalRect,
	radius style.StyleBorderRadius, pass style.BoxShadowClipMode, parent displaylist.SpaceAndClip) {
	d := (s.SpreadRadius.ToPixels() + s.BlurRadius.ToPixels()) * 2
	if d <= 0 {
		// Empty strip.
		return
	}
	shadow, clip := bounds, bounds
	inset := s.ClipMode == style.ShadowClipInset

	switch e {
	case edgeTop, edgeBottom:
		clip.Size.Height = d
		shadow.Size.Width += d
		shadow.Origin.X -= d / 2
	case edgeLeft, edgeRight:
		clip.Size.Width = d
		shadow.Size.Height += d
		shadow.Origin.Y -= d / 2
	}
	switch {
	case e == edgeTop && !inset:
		clip.Origin.Y -= d
	case e == edgeBottom && inset:
		clip.Origin.Y += bounds.Size.Height - d
	case e == edgeBottom:
		clip.Origin.Y += bounds.Size.Height
	case e == edgeLeft && !inset:
		clip.Origin.X -= d
	case e == edgeRight && inset:
		clip.Origin.X += bounds.Size.Width - d
	case e == edgeRight:
		clip.Origin.X += bounds.Size.Width
	}
	pushShadow(b, s, radius, shadow, clip, pass, parent)
}

// shadowClipRect returns the area a four-sided shadow may draw into: the
// bounds for inset shadows, the bounds grown by the full shadow extent for
// outset ones.
func shadowClipRect(s style.StyleBoxShadow, bounds geom.LogicalRect) geom.LogicalRect {
	if s.ClipMode == style.ShadowClipInset {
		return bounds
	}
	d := (s.SpreadRadius.ToPixels() + s.BlurRadius.ToPixels()) * 2
	r := bounds
	r.Origin.X -= s.Offset[0].ToPixels() + d
	r.Origin.Y -= s.Offset[1].ToPixels() + d
	r.Size.Width += 2 * d
	r.Size.Height += 2 * d
	return r
}

// pushShadow emits one shadow item if s belongs to pass.
func pushShadow(b *displaylist.Builder, s style.StyleBoxShadow, radius style.StyleBorderRadius,
	bounds, clip geom.LogicalRect, pass style.BoxShadowClipMode, parent displaylist.SpaceAndClip) {
	if s.ClipMode != pass {
		return
	}
	b.PushBoxShadow(displaylist.BoxShadowItem{
		Common: displaylist.CommonItemProperties{
			ClipRect: clip,
			Spatial:  parent.Spatial,
			Clip:     parent.Clip,
			Flags:    displaylist.FlagBackfaceVisible,
		},
		Box:      bounds,
		Offset:   geom.LogicalVector{X: s.Offset[0].ToPixels(), Y: s.Offset[1].ToPixels()},
		Color:    style.ApplyGamma(s.Color, shadowGamma),
		Blur:     s.BlurRadius.ToPixels(),
		Spread:   s.SpreadRadius.ToPixels(),
		Radius:   displaylist.ResolveBorderRadius(radius, bounds.Size),
		ClipMode: s.ClipMode,
	})
}
