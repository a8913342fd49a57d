package translate

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/compositor/displaylist"
	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/style"
)

func exactOf[T any](v *style.CssPropertyValue[T]) (T, bool) {
	if v == nil {
		var zero T
		return zero, false
	}
	return v.Get()
}

// normalizedStyle returns the edge style, treating none as unset.
func normalizedStyle(v *style.CssPropertyValue[style.BorderStyle]) (style.BorderStyle, bool) {
	s, ok := exactOf(v)
	if !ok || s == style.BorderStyleNone {
		return style.BorderStyleNone, false
	}
	return s, true
}

// snapWidth resolves a border width and snaps it to whole device pixels so
// adjacent edges do not leave seams at fractional scale factors.
func snapWidth(w style.PixelValue, base, hidpi float32) float32 {
	return math32.Floor(w.ToPixels(base)*hidpi) / hidpi
}

// borderFor merges the four edges of br into one border item. It returns
// false when no edge has a style or no edge has a width.
func borderFor(size geom.LogicalSize, radius style.StyleBorderRadius, br displaylist.Border, hidpi float32) (geom.SideOffsets, displaylist.NormalBorder, bool) {
	wt, okT := exactOf(br.Widths.Top)
	wr, okR := exactOf(br.Widths.Right)
	wb, okB := exactOf(br.Widths.Bottom)
	wl, okL := exactOf(br.Widths.Left)

	st, hasT := normalizedStyle(br.Styles.Top)
	sr, hasR := normalizedStyle(br.Styles.Right)
	sb, hasB := normalizedStyle(br.Styles.Bottom)
	sl, hasL := normalizedStyle(br.Styles.Left)

	if !(hasT || hasR || hasB || hasL) || !(okT || okR || okB || okL) {
		return geom.SideOffsets{}, displaylist.NormalBorder{}, false
	}

	var widths geom.SideOffsets
	if okT {
		widths.Top = snapWidth(wt, size.Height, hidpi)
	}
	if okR {
		widths.Right = snapWidth(wr, size.Width, hidpi)
	}
	if okB {
		widths.Bottom = snapWidth(wb, size.Height, hidpi)
	}
	if okL {
		widths.Left = snapWidth(wl, size.Width, hidpi)
	}

	side := func(c *style.CssPropertyValue[style.ColorU], s style.BorderStyle, hasWidth bool) displaylist.BorderSide {
		col, _ := exactOf(c)
		if !hasWidth {
			s = style.BorderStyleNone
		}
		return displaylist.BorderSide{Color: col.ToColorF(), Style: s}
	}
	details := displaylist.NormalBorder{
		Top:    side(br.Colors.Top, st, okT),
		Right:  side(br.Colors.Right, sr, okR),
		Bottom: side(br.Colors.Bottom, sb, okB),
		Left:   side(br.Colors.Left, sl, okL),
		Radius: displaylist.ResolveBorderRadius(radius, size),
		DoAA:   true,
	}
	return widths, details, true
}

// pushBorder emits a frame border over info's clip rect.
func pushBorder(b *displaylist.Builder, info displaylist.CommonItemProperties, radius style.StyleBorderRadius, br displaylist.Border, hidpi float32) {
	widths, details, ok := borderFor(info.ClipRect.Size, radius, br, hidpi)
	if !ok {
		return
	}
	b.PushBorder(displaylist.BorderItem{
		Common:  info,
		Bounds:  info.ClipRect,
		Widths:  widths,
		Details: details,
	})
}
