package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dl "github.com/gogpu/compositor/displaylist"
	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/resources"
	"github.com/gogpu/compositor/style"
)

var testPipeline = resources.PipelineID{Namespace: 1, Index: 1}

var (
	red   = style.RGBA(255, 0, 0, 255)
	green = style.RGBA(0, 255, 0, 255)
	blue  = style.RGBA(0, 0, 255, 255)
)

func translateRoot(t *testing.T, root dl.DisplayListMsg) *dl.BuiltDisplayList {
	t.Helper()
	out, err := Translate(dl.CachedDisplayList{Root: root, RootSize: root.Base().Size}, testPipeline, 1)
	require.NoError(t, err)
	require.NoError(t, out.CheckBalanced())
	return out
}

func colorFrame(w, h float32, c style.ColorU) *dl.DisplayListFrame {
	return &dl.DisplayListFrame{
		Size:    geom.Sz(w, h),
		Content: []dl.LayoutRectContent{dl.Background{Content: dl.ColorLayer(c)}},
	}
}

func itemsOf[T dl.Item](items []dl.Item) []T {
	var out []T
	for _, it := range items {
		if v, ok := it.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func TestSolidColorRect(t *testing.T) {
	repeat := style.RepeatRepeat
	root := &dl.DisplayListFrame{
		Size: geom.Sz(100, 50),
		Content: []dl.LayoutRectContent{dl.Background{
			Content: dl.ColorLayer(red),
			Repeat:  &repeat,
		}},
	}
	out := translateRoot(t, root)

	assert.Equal(t, []dl.Tag{
		dl.TagPushReferenceFrame,
		dl.TagDefineClipRoundedRect,
		dl.TagRect,
		dl.TagPopReferenceFrame,
	}, out.Tags())
	assert.Equal(t, testPipeline, out.Pipeline)

	items := out.Items()
	rf := items[0].(dl.ReferenceFrame)
	assert.Equal(t, geom.Pt(0, 0), rf.Origin)
	assert.Equal(t, dl.RootScrollNode, rf.Parent)

	clip := items[1].(dl.Clip)
	assert.True(t, clip.Rounded)
	assert.Equal(t, geom.Rect(0, 0, 100, 50), clip.Rect)
	assert.True(t, clip.Radius.IsZero())

	rect := items[2].(dl.RectItem)
	assert.Equal(t, geom.Rect(0, 0, 100, 50), rect.Bounds)
	assert.Equal(t, red, rect.Color.ToColorU())
	assert.Equal(t, clip.ID, rect.Common.Clip)
	assert.Equal(t, rf.ID, rect.Common.Spatial)
}

func TestRoundedImageWithOutsetShadow(t *testing.T) {
	key := resources.ImageKey{Namespace: 1, Key: 7}
	zero := style.Exact(style.Px(0))
	root := &dl.DisplayListFrame{
		Size: geom.Sz(200, 200),
		BorderRadius: style.StyleBorderRadius{
			TopLeft:     style.Ptr(style.Exact(style.Px(10))),
			TopRight:    &zero,
			BottomLeft:  &zero,
			BottomRight: &zero,
		},
		Content: []dl.LayoutRectContent{dl.Image{
			Size:            geom.Sz(200, 200),
			Key:             key,
			AlphaType:       dl.AlphaPremultiplied,
			Rendering:       dl.RenderingAuto,
			BackgroundColor: style.Transparent,
		}},
		BoxShadow: dl.UniformShadow(style.StyleBoxShadow{
			Offset:     [2]style.PixelValueNoPercent{style.NoPercent(style.Px(0)), style.NoPercent(style.Px(2))},
			Color:      style.RGBA(0, 0, 0, 64),
			BlurRadius: style.NoPercent(style.Px(8)),
			ClipMode:   style.ShadowClipOutset,
		}),
	}
	out := translateRoot(t, root)

	assert.Equal(t, []dl.Tag{
		dl.TagPushReferenceFrame,
		dl.TagBoxShadow,
		dl.TagDefineClipRoundedRect,
		dl.TagRepeatingImage,
		dl.TagPopReferenceFrame,
	}, out.Tags())

	items := out.Items()
	shadow := items[1].(dl.BoxShadowItem)
	assert.Equal(t, dl.RootClip, shadow.Common.Clip)
	assert.Equal(t, geom.Rect(-16, -18, 232, 232), shadow.Common.ClipRect)
	assert.Equal(t, geom.Rect(0, 0, 200, 200), shadow.Box)
	assert.Equal(t, geom.LogicalVector{X: 0, Y: 2}, shadow.Offset)
	assert.Equal(t, float32(8), shadow.Blur)
	assert.Equal(t, geom.Sz(10, 10), shadow.Radius.TopLeft)

	clip := items[2].(dl.Clip)
	assert.Equal(t, geom.Sz(10, 10), clip.Radius.TopLeft)
	assert.Equal(t, geom.LogicalSize{}, clip.Radius.TopRight)
	assert.Equal(t, geom.LogicalSize{}, clip.Radius.BottomLeft)
	assert.Equal(t, geom.LogicalSize{}, clip.Radius.BottomRight)

	img := items[3].(dl.ImageItem)
	assert.Equal(t, clip.ID, img.Common.Clip)
	assert.Equal(t, key, img.Key)
	assert.Equal(t, dl.AlphaPremultiplied, img.AlphaType)
	assert.Equal(t, geom.Sz(200, 200), img.StretchSize)
}

func TestAbsoluteChildUsesPositionedAncestor(t *testing.T) {
	inner := colorFrame(50, 50, green)
	inner.Position = dl.Absolute(10, 20)
	outer := &dl.DisplayListFrame{
		Size:     geom.Sz(200, 200),
		Position: dl.Relative(0, 0),
		Children: []dl.DisplayListMsg{inner},
	}
	out := translateRoot(t, outer)

	frames := itemsOf[dl.ReferenceFrame](out.Items())
	require.Len(t, frames, 2)
	assert.Equal(t, dl.RootScrollNode, frames[0].Parent)
	assert.Equal(t, frames[0].ID, frames[1].Parent)
	assert.Equal(t, geom.Pt(10, 20), frames[1].Origin)
}

func TestAbsoluteChildSkipsStaticAncestor(t *testing.T) {
	inner := colorFrame(10, 10, green)
	inner.Position = dl.Absolute(1, 1)
	middle := &dl.DisplayListFrame{Size: geom.Sz(50, 50), Children: []dl.DisplayListMsg{inner}}
	outer := &dl.DisplayListFrame{
		Size:     geom.Sz(100, 100),
		Position: dl.Relative(5, 5),
		Children: []dl.DisplayListMsg{middle},
	}
	out := translateRoot(t, outer)

	frames := itemsOf[dl.ReferenceFrame](out.Items())
	require.Len(t, frames, 3)
	assert.Equal(t, frames[0].ID, frames[1].Parent)
	assert.Equal(t, frames[0].ID, frames[2].Parent, "static middle frame is not a containing block")
}

func TestFixedChildUsesRoot(t *testing.T) {
	inner := colorFrame(10, 10, blue)
	inner.Position = dl.Fixed(3, 4)
	outer := &dl.DisplayListFrame{
		Size:     geom.Sz(100, 100),
		Position: dl.Relative(20, 20),
		Children: []dl.DisplayListMsg{inner},
	}
	out := translateRoot(t, outer)

	frames := itemsOf[dl.ReferenceFrame](out.Items())
	require.Len(t, frames, 2)
	assert.Equal(t, dl.RootScrollNode, frames[1].Parent)
	assert.Equal(t, geom.Pt(3, 4), frames[1].Origin)
}

func TestTwoEdgeShadow(t *testing.T) {
	shadow := func(c style.ColorU) *style.CssPropertyValue[style.StyleBoxShadow] {
		v := style.Exact(style.StyleBoxShadow{
			Color:      c,
			BlurRadius: style.NoPercent(style.Px(4)),
			ClipMode:   style.ShadowClipOutset,
		})
		return &v
	}
	root := &dl.DisplayListFrame{
		Size: geom.Sz(100, 50),
		BoxShadow: &dl.BoxShadow{
			ClipMode: style.ShadowClipOutset,
			Top:      shadow(red),
			Bottom:   shadow(blue),
		},
	}
	out := translateRoot(t, root)

	shadows := itemsOf[dl.BoxShadowItem](out.Items())
	require.Len(t, shadows, 2)

	top, bottom := shadows[0], shadows[1]
	assert.Equal(t, geom.Rect(0, -8, 100, 8), top.Common.ClipRect)
	assert.Equal(t, geom.Rect(0, 50, 100, 8), bottom.Common.ClipRect)
	assert.Equal(t, geom.Rect(-4, 0, 108, 50), top.Box)
	assert.Equal(t, float32(1), top.Color.R)
	assert.Equal(t, float32(0), top.Color.B)
	assert.Equal(t, float32(1), bottom.Color.B)
	assert.Equal(t, float32(0), bottom.Color.R)
}

func TestInsetShadowEdges(t *testing.T) {
	inset := style.StyleBoxShadow{
		Color:        red,
		BlurRadius:   style.NoPercent(style.Px(2)),
		SpreadRadius: style.NoPercent(style.Px(1)),
		ClipMode:     style.ShadowClipInset,
	}
	v := style.Exact(inset)
	root := &dl.DisplayListFrame{
		Size:      geom.Sz(100, 50),
		BoxShadow: &dl.BoxShadow{ClipMode: style.ShadowClipInset, Right: &v, Left: style.Ptr(v)},
	}
	out := translateRoot(t, root)

	items := out.Items()
	shadows := itemsOf[dl.BoxShadowItem](items)
	require.Len(t, shadows, 2)
	assert.Equal(t, geom.Rect(94, 0, 6, 50), shadows[0].Common.ClipRect)
	assert.Equal(t, geom.Rect(0, 0, 6, 50), shadows[1].Common.ClipRect)

	clips := itemsOf[dl.Clip](items)
	require.Len(t, clips, 1)
	assert.Equal(t, clips[0].ID, shadows[0].Common.Clip, "inset shadows are clipped to the content")
	assert.Equal(t, dl.TagBoxShadow, out.Tags()[len(out.Tags())-2], "inset shadows come last")
}

func TestFlatEdgeShadowDrawsNothing(t *testing.T) {
	flat := style.Exact(style.StyleBoxShadow{Color: red, ClipMode: style.ShadowClipOutset})
	blurred := style.Exact(style.StyleBoxShadow{
		Color:      red,
		BlurRadius: style.NoPercent(style.Px(1)),
		ClipMode:   style.ShadowClipOutset,
	})
	type side = **style.CssPropertyValue[style.StyleBoxShadow]
	edges := map[string]func(*dl.BoxShadow) side{
		"top":    func(b *dl.BoxShadow) side { return &b.Top },
		"right":  func(b *dl.BoxShadow) side { return &b.Right },
		"bottom": func(b *dl.BoxShadow) side { return &b.Bottom },
		"left":   func(b *dl.BoxShadow) side { return &b.Left },
	}
	frame := func(edge func(*dl.BoxShadow) side, v style.CssPropertyValue[style.StyleBoxShadow]) *dl.DisplayListFrame {
		bs := &dl.BoxShadow{ClipMode: style.ShadowClipOutset}
		*edge(bs) = &v
		return &dl.DisplayListFrame{Size: geom.Sz(20, 10), BoxShadow: bs}
	}
	for name, edge := range edges {
		t.Run(name, func(t *testing.T) {
			assert.Zero(t, translateRoot(t, frame(edge, flat)).Count(dl.TagBoxShadow))
			assert.Equal(t, 1, translateRoot(t, frame(edge, blurred)).Count(dl.TagBoxShadow))
		})
	}
}

func TestInvalidShadowCombinationIsIgnored(t *testing.T) {
	v := style.Exact(style.StyleBoxShadow{BlurRadius: style.NoPercent(style.Px(4))})
	tests := []struct {
		name string
		bs   *dl.BoxShadow
	}{
		{"three edges", &dl.BoxShadow{Top: &v, Right: &v, Bottom: &v}},
		{"adjacent edges", &dl.BoxShadow{Top: &v, Left: &v}},
		{"no exact edge", &dl.BoxShadow{Top: style.Ptr(style.None[style.StyleBoxShadow]())}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := translateRoot(t, &dl.DisplayListFrame{Size: geom.Sz(10, 10), BoxShadow: tt.bs})
			assert.Zero(t, out.Count(dl.TagBoxShadow))
		})
	}
}

func TestShadowColorGamma(t *testing.T) {
	s := style.StyleBoxShadow{Color: style.RGBA(64, 64, 64, 128), ClipMode: style.ShadowClipOutset}
	out := translateRoot(t, &dl.DisplayListFrame{Size: geom.Sz(10, 10), BoxShadow: dl.UniformShadow(s)})

	shadows := itemsOf[dl.BoxShadowItem](out.Items())
	require.Len(t, shadows, 1)
	want := style.ApplyGamma(s.Color, 2.2)
	assert.Equal(t, want, shadows[0].Color)
	assert.Greater(t, shadows[0].Color.R, float32(64)/255)
	assert.InDelta(t, float32(128)/255, shadows[0].Color.A, 1e-6)
}

func TestLinearGradientImplicitStops(t *testing.T) {
	half := style.Percent(50)
	stops := style.NormalizeLinearStops([]style.LinearColorStop{
		{Color: red},
		{Offset: &half, Color: green},
		{Color: blue},
	})
	root := &dl.DisplayListFrame{
		Size: geom.Sz(100, 100),
		Content: []dl.LayoutRectContent{dl.Background{Content: dl.LinearLayer(style.LinearGradient{
			Direction: style.DefaultDirection(),
			Stops:     stops,
		})}},
	}
	out := translateRoot(t, root)

	grads := itemsOf[dl.GradientItem](out.Items())
	require.Len(t, grads, 1)
	g := grads[0]
	require.Len(t, g.Stops, 3)
	for i, want := range []float32{0, 0.5, 1} {
		assert.InDelta(t, want, g.Stops[i].Offset, 1e-3)
	}
	assert.Equal(t, red, g.Stops[0].Color.ToColorU())
	assert.Equal(t, blue, g.Stops[2].Color.ToColorU())
	assert.Equal(t, geom.Pt(50, 0), g.Start)
	assert.Equal(t, geom.Pt(50, 100), g.End)
}

func TestGradientWithOneStopIsSkipped(t *testing.T) {
	root := &dl.DisplayListFrame{
		Size: geom.Sz(10, 10),
		Content: []dl.LayoutRectContent{dl.Background{Content: dl.LinearLayer(style.LinearGradient{
			Stops: []style.NormalizedLinearColorStop{{Color: red}},
		})}},
	}
	out := translateRoot(t, root)
	assert.Zero(t, out.PrimitiveCount())
}

func TestRadialAndConicBackgrounds(t *testing.T) {
	stops := []style.NormalizedLinearColorStop{{Offset: style.Percent(0), Color: red}, {Offset: style.Percent(100), Color: blue}}
	root := &dl.DisplayListFrame{
		Size: geom.Sz(100, 60),
		Content: []dl.LayoutRectContent{
			dl.Background{Content: dl.RadialLayer(style.RadialGradient{Shape: style.ShapeCircle, Stops: stops})},
			dl.Background{Content: dl.RadialLayer(style.RadialGradient{Shape: style.ShapeEllipse, Stops: stops})},
			dl.Background{Content: dl.ConicLayer(style.ConicGradient{
				Center: style.CenterPosition(),
				Angle:  style.Deg(90),
				Stops: style.NormalizeRadialStops([]style.RadialColorStop{
					{Color: red}, {Color: blue},
				}),
			})},
		},
	}
	out := translateRoot(t, root)
	items := out.Items()

	radial := itemsOf[dl.RadialGradientItem](items)
	require.Len(t, radial, 2)
	assert.Equal(t, geom.Sz(50, 50), radial[0].Radius)
	assert.Equal(t, geom.Sz(50, 30), radial[1].Radius)

	conic := itemsOf[dl.ConicGradientItem](items)
	require.Len(t, conic, 1)
	assert.InDelta(t, 90, conic[0].Angle, 1e-3)
	assert.Equal(t, geom.Pt(0, 0), conic[0].Center, "a full-size tile centers at the origin")
	require.Len(t, conic[0].Stops, 2)
	assert.InDelta(t, 1, conic[0].Stops[1].Offset, 1e-3)
}

func TestBackgroundPosition(t *testing.T) {
	bg := geom.Sz(20, 10)
	tests := []struct {
		name string
		pos  style.StyleBackgroundPosition
		want geom.LogicalPoint
	}{
		{"center", style.CenterPosition(), geom.Pt(40, 20)},
		{"right bottom", style.StyleBackgroundPosition{Horizontal: style.PositionRight, Vertical: style.PositionBottom}, geom.Pt(0, 40)},
		{"left top", style.StyleBackgroundPosition{Horizontal: style.PositionLeft, Vertical: style.PositionTop}, geom.Pt(80, 0)},
		{"exact", style.StyleBackgroundPosition{Horizontal: style.ExactX(style.Pct(50)), Vertical: style.ExactY(style.Px(7))}, geom.Pt(50, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, backgroundPosition(100, 50, tt.pos, bg))
		})
	}
}

func TestRepeatClip(t *testing.T) {
	info := dl.CommonItemProperties{ClipRect: geom.Rect(0, 0, 100, 50)}
	bg := geom.Sz(20, 10)
	tests := []struct {
		repeat style.StyleBackgroundRepeat
		want   geom.LogicalRect
	}{
		{style.RepeatRepeat, geom.Rect(0, 0, 100, 50)},
		{style.RepeatNoRepeat, geom.Rect(0, 0, 20, 10)},
		{style.RepeatRepeatX, geom.Rect(0, 0, 100, 10)},
		{style.RepeatRepeatY, geom.Rect(0, 0, 20, 50)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, repeatClip(info, tt.repeat, bg).ClipRect, "repeat %d", tt.repeat)
	}
}

func TestImageBackgroundSize(t *testing.T) {
	key := resources.ImageKey{Namespace: 1, Key: 3}
	size := style.Contain()
	noRepeat := style.RepeatNoRepeat
	center := style.CenterPosition()
	root := &dl.DisplayListFrame{
		Size: geom.Sz(200, 100),
		Content: []dl.LayoutRectContent{dl.Background{
			Content: dl.ImageLayer(key, geom.Sz(50, 50)),
			Size:    &size,
			Offset:  &center,
			Repeat:  &noRepeat,
		}},
	}
	out := translateRoot(t, root)

	imgs := itemsOf[dl.ImageItem](out.Items())
	require.Len(t, imgs, 1)
	assert.Equal(t, geom.Sz(100, 100), imgs[0].StretchSize)
	assert.Equal(t, geom.Rect(50, 0, 100, 100), imgs[0].Common.ClipRect)
	assert.Equal(t, style.Black.ToColorF(), imgs[0].Color)
}

func TestUnknownResource(t *testing.T) {
	cat := resources.NewCatalog()
	tr := New(WithResources(cat))
	root := &dl.DisplayListFrame{
		Size:    geom.Sz(10, 10),
		Content: []dl.LayoutRectContent{dl.Image{Key: resources.ImageKey{Namespace: 1, Key: 99}}},
	}
	_, err := tr.Translate(dl.CachedDisplayList{Root: root}, testPipeline, 1)
	require.ErrorIs(t, err, ErrUnknownResource)

	text := &dl.DisplayListFrame{
		Size:    geom.Sz(10, 10),
		Content: []dl.LayoutRectContent{dl.Text{FontInstanceKey: resources.FontInstanceKey{Namespace: 1, Key: 1}}},
	}
	_, err = tr.Translate(dl.CachedDisplayList{Root: text}, testPipeline, 1)
	require.ErrorIs(t, err, ErrUnknownResource)

	// Without a checker references are not validated.
	_, err = Translate(dl.CachedDisplayList{Root: root}, testPipeline, 1)
	require.NoError(t, err)
}

func TestTextClipping(t *testing.T) {
	glyphs := []dl.GlyphInstance{{Index: 1, Point: geom.Pt(0, 10)}, {Index: 2, Point: geom.Pt(8, 10)}}
	frame := func(overflow [2]bool) *dl.DisplayListFrame {
		return &dl.DisplayListFrame{
			Size:    geom.Sz(40, 20),
			Content: []dl.LayoutRectContent{dl.Text{Glyphs: glyphs, Color: red, Overflow: overflow}},
		}
	}

	clipped := itemsOf[dl.TextItem](translateRoot(t, frame([2]bool{})).Items())
	require.Len(t, clipped, 1)
	assert.NotEqual(t, dl.RootClip, clipped[0].Common.Clip)
	assert.Equal(t, glyphs, clipped[0].Glyphs)

	free := itemsOf[dl.TextItem](translateRoot(t, frame([2]bool{false, true})).Items())
	require.Len(t, free, 1)
	assert.Equal(t, dl.RootClip, free[0].Common.Clip)
}

func TestTextShadowWrapsRun(t *testing.T) {
	shadow := style.StyleBoxShadow{Color: style.Black, BlurRadius: style.NoPercent(style.Px(2))}
	root := &dl.DisplayListFrame{
		Size:    geom.Sz(40, 20),
		Content: []dl.LayoutRectContent{dl.Text{Color: red, Shadow: &shadow}},
	}
	out := translateRoot(t, root)

	tags := out.Tags()
	i := indexOf(tags, dl.TagText)
	require.Positive(t, i)
	assert.Equal(t, dl.TagPushStackingContext, tags[i-1])
	assert.Equal(t, dl.TagPopStackingContext, tags[i+1])

	sc := itemsOf[dl.StackingContext](out.Items())
	require.Len(t, sc, 1)
	require.Len(t, sc[0].Filters, 1)
	assert.Equal(t, style.DropShadowFilter(shadow), sc[0].Filters[0])
}

func indexOf(tags []dl.Tag, t dl.Tag) int {
	for i, u := range tags {
		if u == t {
			return i
		}
	}
	return -1
}

func TestBorderWidthSnapping(t *testing.T) {
	solid := style.Exact(style.BorderStyleSolid)
	width := style.Exact(style.Px(1.3))
	color := style.Exact(blue)
	border := dl.Border{
		Widths: dl.BorderWidths{Top: &width, Right: &width, Bottom: &width},
		Colors: dl.BorderColors{Top: &color, Right: &color, Bottom: &color, Left: &color},
		Styles: dl.BorderStyles{Top: &solid, Right: &solid, Bottom: &solid, Left: &solid},
	}
	root := &dl.DisplayListFrame{Size: geom.Sz(40, 20), Content: []dl.LayoutRectContent{border}}

	out, err := Translate(dl.CachedDisplayList{Root: root}, testPipeline, 2)
	require.NoError(t, err)
	borders := itemsOf[dl.BorderItem](out.Items())
	require.Len(t, borders, 1)
	b := borders[0]
	assert.InDelta(t, 1.0, b.Widths.Top, 1e-6)
	assert.InDelta(t, 1.0, b.Widths.Right, 1e-6)
	assert.Zero(t, b.Widths.Left)
	assert.Equal(t, style.BorderStyleNone, b.Details.Left.Style, "an edge without width is not drawn")
	assert.Equal(t, style.BorderStyleSolid, b.Details.Top.Style)
	assert.Equal(t, blue.ToColorF(), b.Details.Top.Color)
	assert.True(t, b.Details.DoAA)
	assert.Equal(t, geom.Rect(0, 0, 40, 20), b.Bounds)
	assert.Equal(t, dl.RootClip, b.Common.Clip, "borders are not clipped by the border radius")

	out, err = Translate(dl.CachedDisplayList{Root: root}, testPipeline, 4)
	require.NoError(t, err)
	borders = itemsOf[dl.BorderItem](out.Items())
	require.Len(t, borders, 1)
	assert.InDelta(t, 1.25, borders[0].Widths.Top, 1e-6)
}

func TestBorderWithoutStyleIsSkipped(t *testing.T) {
	width := style.Exact(style.Px(2))
	none := style.Exact(style.BorderStyleNone)
	root := &dl.DisplayListFrame{
		Size: geom.Sz(40, 20),
		Content: []dl.LayoutRectContent{dl.Border{
			Widths: dl.BorderWidths{Top: &width, Bottom: &width},
			Styles: dl.BorderStyles{Top: &none},
		}},
	}
	out := translateRoot(t, root)
	assert.Zero(t, out.Count(dl.TagBorder))
}

func TestClipChildren(t *testing.T) {
	child := colorFrame(300, 300, red)
	size := geom.Sz(100, 100)
	root := &dl.DisplayListFrame{
		Size:         size,
		BorderRadius: style.UniformRadius(style.Px(5)),
		ClipChildren: &size,
		Children:     []dl.DisplayListMsg{child},
	}
	out := translateRoot(t, root)

	clips := itemsOf[dl.Clip](out.Items())
	require.Len(t, clips, 3)
	content, children, childContent := clips[0], clips[1], clips[2]
	assert.Equal(t, content.ID, children.Parent.Clip)
	assert.Equal(t, geom.Rect(0, 0, 100, 100), children.Rect)
	assert.Equal(t, geom.Sz(5, 5), children.Radius.BottomRight)
	assert.Equal(t, children.ID, childContent.Parent.Clip)
}

func TestChildrenKeepParentClip(t *testing.T) {
	child := colorFrame(10, 10, red)
	root := &dl.DisplayListFrame{Size: geom.Sz(100, 100), Children: []dl.DisplayListMsg{child}}
	out := translateRoot(t, root)

	clips := itemsOf[dl.Clip](out.Items())
	require.Len(t, clips, 2)
	assert.Equal(t, dl.RootClip, clips[0].Parent.Clip)
	assert.Equal(t, dl.RootClip, clips[1].Parent.Clip, "the child is not clipped by the parent's content clip")
}

func TestStackingContexts(t *testing.T) {
	blend := style.MixBlendMultiply
	root := &dl.DisplayListFrame{
		Size:      geom.Sz(10, 10),
		Transform: &dl.TransformBinding{Key: 4, Value: geom.Translation(1, 2, 0)},
		Opacity:   &dl.OpacityBinding{Key: 5, Value: 0.5},
		Children: []dl.DisplayListMsg{&dl.DisplayListFrame{
			Size:         geom.Sz(5, 5),
			MixBlendMode: &blend,
		}},
		HasMixBlendChildren: true,
	}
	out := translateRoot(t, root)
	items := out.Items()

	frames := itemsOf[dl.ReferenceFrame](items)
	require.Len(t, frames, 2)
	assert.True(t, frames[0].Transform.Bound)
	assert.Equal(t, dl.TransformKey(4), frames[0].Transform.Key)
	assert.False(t, frames[1].Transform.Bound)

	sc := itemsOf[dl.StackingContext](items)
	require.Len(t, sc, 2)
	assert.True(t, sc[0].BlendContainer)
	require.NotNil(t, sc[0].Opacity)
	assert.Equal(t, float32(0.5), sc[0].Opacity.Value)
	assert.True(t, sc[0].Flags.Has(dl.FlagBackfaceVisible))
	assert.Equal(t, style.MixBlendMultiply, sc[1].Blend)
	assert.Equal(t, frames[1].ID, sc[1].Spatial)

	tags := out.Tags()
	assert.Equal(t, dl.TagPopStackingContext, tags[len(tags)-2])
	assert.Equal(t, dl.TagPopReferenceFrame, tags[len(tags)-1])
}

func TestHitTestArea(t *testing.T) {
	root := colorFrame(30, 20, red)
	root.Tag = &dl.TagID{ID: 42, Kind: 1}
	out := translateRoot(t, root)

	hits := itemsOf[dl.HitTestItem](out.Items())
	require.Len(t, hits, 1)
	assert.Equal(t, dl.TagID{ID: 42, Kind: 1}, hits[0].HitTag)
	assert.Equal(t, geom.Rect(0, 0, 30, 20), hits[0].Common.ClipRect)
}

func TestScrollFrameDefinition(t *testing.T) {
	child := colorFrame(100, 300, green)
	root := &dl.DisplayListScrollFrame{
		Frame:       dl.DisplayListFrame{Size: geom.Sz(100, 100), Children: []dl.DisplayListMsg{child}},
		ParentRect:  geom.Rect(0, 0, 100, 100),
		ContentRect: geom.Rect(0, -20, 100, 300),
		ScrollID:    77,
	}
	out := translateRoot(t, root)
	items := out.Items()

	scrolls := itemsOf[dl.ScrollFrame](items)
	require.Len(t, scrolls, 1)
	sf := scrolls[0]
	assert.Equal(t, dl.ExternalScrollID(77), sf.ExternalID)
	assert.Equal(t, geom.Rect(0, 0, 100, 300), sf.ContentRect)
	assert.Equal(t, geom.Rect(0, 0, 100, 100), sf.ClipRect)
	assert.Equal(t, geom.LogicalVector{X: 0, Y: -20}, sf.Offset)

	frames := itemsOf[dl.ReferenceFrame](items)
	require.Len(t, frames, 2)
	assert.Equal(t, frames[0].ID, frames[1].Parent)
}

func TestDeepTreeIsBalanced(t *testing.T) {
	var root dl.DisplayListMsg = colorFrame(1, 1, red)
	for i := 0; i < 5000; i++ {
		f := colorFrame(1, 1, red)
		if i%3 == 0 {
			f.Position = dl.Relative(1, 0)
		}
		f.Children = []dl.DisplayListMsg{root}
		root = f
	}
	out := translateRoot(t, root)
	assert.Equal(t, 5001, out.Count(dl.TagPushReferenceFrame))
	assert.Equal(t, 5001, out.Count(dl.TagRect))
}

func TestEmptyInput(t *testing.T) {
	out, err := Translate(dl.CachedDisplayList{RootSize: geom.Sz(10, 10)}, testPipeline, 0)
	require.NoError(t, err)
	assert.True(t, out.IsEmpty())
	assert.Equal(t, geom.Sz(10, 10), out.ContentSize)
}
