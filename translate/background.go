package translate

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/compositor/displaylist"
	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/resources"
	"github.com/gogpu/compositor/style"
)

// backgroundSize resolves the size of one background tile. Without a
// background-size the content's own size is used, or the clip rect for
// content without one.
func backgroundSize(clip geom.LogicalRect, size *style.StyleBackgroundSize, content *geom.LogicalSize) geom.LogicalSize {
	if size == nil {
		if content != nil {
			return *content
		}
		return clip.Size
	}
	return size.Resolve(clip.Size, content)
}

// backgroundPosition resolves a background-position for a tile of size bg in
// a box of width x height.
//
// The horizontal keywords are applied as the layout engine has always
// applied them: right anchors at 0 and left at the far edge.
func backgroundPosition(width, height float32, pos style.StyleBackgroundPosition, bg geom.LogicalSize) geom.LogicalPoint {
	var x, y float32
	switch h := pos.Horizontal; h.Keyword {
	case style.PositionEnd:
		x = 0
	case style.PositionCenter:
		x = (width - bg.Width) / 2
	case style.PositionStart:
		x = width - bg.Width
	case style.PositionExact:
		x = h.Exact.ToPixels(width)
	}
	switch v := pos.Vertical; v.Keyword {
	case style.PositionStart:
		y = 0
	case style.PositionCenter:
		y = (height - bg.Height) / 2
	case style.PositionEnd:
		y = height - bg.Height
	case style.PositionExact:
		y = v.Exact.ToPixels(height)
	}
	return geom.Pt(x, y)
}

// repeatClip shrinks the clip rect so a repeating draw tiles only along the
// axes repeat allows.
func repeatClip(info displaylist.CommonItemProperties, repeat style.StyleBackgroundRepeat, bg geom.LogicalSize) displaylist.CommonItemProperties {
	r := info.ClipRect
	switch repeat {
	case style.RepeatNoRepeat:
		r.Size = bg
	case style.RepeatRepeatX:
		r.Size.Height = bg.Height
	case style.RepeatRepeatY:
		r.Size.Width = bg.Width
	}
	info.ClipRect = r
	return info
}

// layout is the placement shared by every background kind.
type layout struct {
	width, height float32
	size          geom.LogicalSize
	offset        geom.LogicalPoint
	info          displaylist.CommonItemProperties
}

func layoutBackground(info displaylist.CommonItemProperties, bg displaylist.Background) layout {
	var content *geom.LogicalSize
	if s, ok := bg.Content.ContentSize(); ok {
		content = &s
	}
	var pos style.StyleBackgroundPosition
	if bg.Offset != nil {
		pos = *bg.Offset
	}
	l := layout{
		width:  math32.Round(info.ClipRect.Size.Width),
		height: math32.Round(info.ClipRect.Size.Height),
		size:   backgroundSize(info.ClipRect, bg.Size, content),
	}
	l.offset = backgroundPosition(l.width, l.height, pos, l.size)
	l.info = info
	l.info.ClipRect.Origin.X += l.offset.X
	l.info.ClipRect.Origin.Y += l.offset.Y
	return l
}

func linearStops(in []style.NormalizedLinearColorStop) []displaylist.GradientStop {
	out := make([]displaylist.GradientStop, len(in))
	for i, s := range in {
		out[i] = displaylist.GradientStop{Offset: s.Offset.Normalized(), Color: s.Color.ToColorF()}
	}
	return out
}

func conicStops(in []style.NormalizedRadialColorStop) []displaylist.GradientStop {
	out := make([]displaylist.GradientStop, len(in))
	for i, s := range in {
		out[i] = displaylist.GradientStop{Offset: s.Angle.Degrees() / 360, Color: s.Color.ToColorF()}
	}
	return out
}

// pushBackground emits one background layer in info's space and clip.
func pushBackground(b *displaylist.Builder, info displaylist.CommonItemProperties, bg displaylist.Background) {
	repeat := style.RepeatRepeat
	if bg.Repeat != nil {
		repeat = *bg.Repeat
	}
	l := layoutBackground(info, bg)

	switch c := bg.Content; c.Kind {
	case style.BackgroundLinearGradient:
		if c.Linear == nil || len(c.Linear.Stops) < 2 {
			return
		}
		start, end := c.Linear.Direction.ToPoints(l.info.ClipRect)
		b.PushGradient(displaylist.GradientItem{
			Common:   l.info,
			Bounds:   l.info.ClipRect,
			Start:    start,
			End:      end,
			Stops:    linearStops(c.Linear.Stops),
			Extend:   c.Linear.ExtendMode,
			TileSize: l.size,
		})

	case style.BackgroundRadialGradient:
		if c.Radial == nil || len(c.Radial.Stops) < 2 {
			return
		}
		var radius geom.LogicalSize
		switch c.Radial.Shape {
		case style.ShapeCircle:
			m := math32.Max(l.size.Width, l.size.Height) / 2
			radius = geom.Sz(m, m)
		default:
			radius = geom.Sz(l.size.Width/2, l.size.Height/2)
		}
		b.PushRadialGradient(displaylist.RadialGradientItem{
			Common:   l.info,
			Bounds:   l.info.ClipRect,
			Center:   backgroundPosition(l.width, l.height, c.Radial.Position, l.size),
			Radius:   radius,
			Stops:    linearStops(c.Radial.Stops),
			Extend:   c.Radial.ExtendMode,
			TileSize: l.size,
		})

	case style.BackgroundConicGradient:
		if c.Conic == nil || len(c.Conic.Stops) < 2 {
			return
		}
		b.PushConicGradient(displaylist.ConicGradientItem{
			Common:   l.info,
			Bounds:   l.info.ClipRect,
			Center:   backgroundPosition(l.width, l.height, c.Conic.Center, l.size),
			Angle:    c.Conic.Angle.ToDegrees(),
			Stops:    conicStops(c.Conic.Stops),
			Extend:   c.Conic.ExtendMode,
			TileSize: l.size,
		})

	case style.BackgroundImage:
		if c.Image == nil {
			return
		}
		pushImage(b, repeatClip(info, repeat, l.size), l.size, l.offset, c.Image.Key,
			displaylist.AlphaPremultiplied, displaylist.RenderingAuto, style.Black)

	default:
		r := l.info
		r.ClipRect.Size = l.size
		b.PushRect(r, r.ClipRect, c.Color.ToColorF())
	}
}

// pushImage emits an image stretched to size and tiled over the clip rect,
// offset by offset.
func pushImage(b *displaylist.Builder, info displaylist.CommonItemProperties, size geom.LogicalSize, offset geom.LogicalPoint,
	key resources.ImageKey, alpha displaylist.AlphaType, rendering displaylist.ImageRendering, bg style.ColorU) {
	info.ClipRect.Origin.X += offset.X
	info.ClipRect.Origin.Y += offset.Y
	b.PushRepeatingImage(displaylist.ImageItem{
		Common:      info,
		Bounds:      info.ClipRect,
		StretchSize: size,
		Rendering:   rendering,
		AlphaType:   alpha,
		Key:         key,
		Color:       bg.ToColorF(),
	})
}
