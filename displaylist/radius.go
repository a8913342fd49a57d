package displaylist

import (
	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/style"
)

// ResolveBorderRadius resolves r for a box of the given size. Percentages
// resolve against the width for the horizontal radius and the height for
// the vertical one, so 50% on a square gives a circle. Unset or keyword
// corners are square.
func ResolveBorderRadius(r style.StyleBorderRadius, size geom.LogicalSize) BorderRadius {
	if r.IsNone() {
		return ZeroRadius()
	}
	corner := func(c *style.CssPropertyValue[style.PixelValue]) geom.LogicalSize {
		if c == nil {
			return geom.LogicalSize{}
		}
		v, ok := c.Get()
		if !ok {
			return geom.LogicalSize{}
		}
		return geom.Sz(v.ToPixels(size.Width), v.ToPixels(size.Height))
	}
	return BorderRadius{
		TopLeft:     corner(r.TopLeft),
		TopRight:    corner(r.TopRight),
		BottomLeft:  corner(r.BottomLeft),
		BottomRight: corner(r.BottomRight),
	}
}
