package displaylist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/compositor/geom"
	"github.com/gogpu/compositor/resources"
	"github.com/gogpu/compositor/style"
)

var testPipeline = resources.PipelineID{Namespace: 1, Index: 1}

func TestBuilderMintsIDs(t *testing.T) {
	b := NewBuilder(testPipeline, geom.Sz(100, 100))
	root := RootScroll()

	f1 := b.PushReferenceFrame(geom.Pt(0, 0), root.Spatial, ConstantTransform(geom.Identity()))
	f2 := b.PushReferenceFrame(geom.Pt(5, 5), f1, ConstantTransform(geom.Identity()))
	c1 := b.DefineClipRect(SpaceAndClip{Spatial: f2, Clip: RootClip}, geom.Rect(0, 0, 10, 10))
	c2 := b.DefineClipRoundedRect(SpaceAndClip{Spatial: f2, Clip: c1}, geom.Rect(0, 0, 10, 10), UniformBorderRadius(2))
	b.PopReferenceFrame()
	b.PopReferenceFrame()

	assert.Equal(t, SpatialID(2), f1)
	assert.Equal(t, SpatialID(3), f2)
	assert.Equal(t, ClipID(1), c1)
	assert.Equal(t, ClipID(2), c2)

	dl, err := b.Finalize()
	require.NoError(t, err)
	require.NoError(t, dl.CheckBalanced())
	assert.Equal(t, []Tag{
		TagPushReferenceFrame, TagPushReferenceFrame,
		TagDefineClipRect, TagDefineClipRoundedRect,
		TagPopReferenceFrame, TagPopReferenceFrame,
	}, dl.Tags())
	assert.Equal(t, testPipeline, dl.Pipeline)
}

func TestBuilderDecodesPayloads(t *testing.T) {
	b := NewBuilder(testPipeline, geom.Sz(50, 50))
	sp := b.PushReferenceFrame(geom.Pt(1, 2), RootScrollNode, BoundTransform(7, geom.Translation(3, 4, 0)))
	common := CommonItemProperties{ClipRect: geom.Rect(0, 0, 50, 50), Spatial: sp, Clip: RootClip}
	red := style.RGBA(255, 0, 0, 255).ToColorF()
	b.PushRect(common, geom.Rect(0, 0, 50, 50), red)
	b.PushHitTest(common, TagID{ID: 9})
	b.PopReferenceFrame()

	dl, err := b.Finalize()
	require.NoError(t, err)

	items := dl.Items()
	require.Len(t, items, 4)

	rf, ok := items[0].(ReferenceFrame)
	require.True(t, ok)
	assert.Equal(t, geom.Pt(1, 2), rf.Origin)
	assert.True(t, rf.Transform.Bound)
	assert.Equal(t, TransformKey(7), rf.Transform.Key)

	rect, ok := items[1].(RectItem)
	require.True(t, ok)
	assert.Equal(t, red, rect.Color)
	assert.Equal(t, sp, rect.Common.Spatial)

	hit, ok := items[2].(HitTestItem)
	require.True(t, ok)
	assert.Equal(t, uint64(9), hit.HitTag.ID)
	assert.Equal(t, TagHitTest, hit.Tag())

	assert.Equal(t, Pop{Of: TagPushReferenceFrame}, items[3])
	assert.Equal(t, 1, dl.PrimitiveCount())
	assert.Equal(t, 1, dl.Count(TagHitTest))
}

func TestBuilderRejectsMisuse(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Builder)
		want  error
	}{
		{"pop without push", func(b *Builder) { b.PopReferenceFrame() }, ErrUnbalanced},
		{"left open", func(b *Builder) {
			b.PushReferenceFrame(geom.Pt(0, 0), RootScrollNode, ConstantTransform(geom.Identity()))
		}, ErrUnbalanced},
		{"crossed scopes", func(b *Builder) {
			sp := b.PushReferenceFrame(geom.Pt(0, 0), RootScrollNode, ConstantTransform(geom.Identity()))
			b.PushSimpleStackingContext(geom.Pt(0, 0), sp, FlagBackfaceVisible)
			b.PopReferenceFrame()
			b.PopStackingContext()
		}, ErrUnbalanced},
		{"unknown spatial", func(b *Builder) {
			b.PushReferenceFrame(geom.Pt(0, 0), 42, ConstantTransform(geom.Identity()))
			b.PopReferenceFrame()
		}, ErrUnknownSpatial},
		{"unknown clip", func(b *Builder) {
			b.PushRect(CommonItemProperties{Spatial: RootScrollNode, Clip: 5}, geom.Rect(0, 0, 1, 1), style.ColorF{})
		}, ErrUnknownClip},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(testPipeline, geom.Sz(1, 1))
			tt.build(b)
			_, err := b.Finalize()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestCheckBalancedDetectsCrossing(t *testing.T) {
	dl := &BuiltDisplayList{
		tags: []Tag{TagPushReferenceFrame, TagPushStackingContext, TagPopReferenceFrame, TagPopStackingContext},
		refs: []uint32{0, 0, 0, 0},
	}
	assert.ErrorIs(t, dl.CheckBalanced(), ErrUnbalanced)
}

func TestResolveBorderRadius(t *testing.T) {
	half := style.Exact(style.Pct(50))
	circle := ResolveBorderRadius(style.StyleBorderRadius{
		TopLeft: &half, TopRight: &half, BottomLeft: &half, BottomRight: &half,
	}, geom.Sz(80, 80))
	assert.Equal(t, UniformBorderRadius(40), circle)

	tl := style.Exact(style.Px(10))
	auto := style.Auto[style.PixelValue]()
	r := ResolveBorderRadius(style.StyleBorderRadius{TopLeft: &tl, BottomRight: &auto}, geom.Sz(200, 100))
	assert.Equal(t, geom.Sz(10, 10), r.TopLeft)
	assert.Equal(t, geom.LogicalSize{}, r.TopRight)
	assert.Equal(t, geom.LogicalSize{}, r.BottomRight)

	pct := style.Exact(style.Pct(10))
	r = ResolveBorderRadius(style.StyleBorderRadius{TopLeft: &pct}, geom.Sz(200, 100))
	assert.Equal(t, geom.Sz(20, 10), r.TopLeft)

	assert.True(t, ResolveBorderRadius(style.StyleBorderRadius{}, geom.Sz(10, 10)).IsZero())
}

func TestTagGroups(t *testing.T) {
	assert.True(t, TagPushReferenceFrame.IsSpatialCommand())
	assert.True(t, TagDefineClipRoundedRect.IsClipCommand())
	assert.True(t, TagBoxShadow.IsPrimitive())
	assert.False(t, TagHitTest.IsPrimitive())
	assert.True(t, TagPopStackingContext.IsPop())
	assert.Equal(t, "Border", TagBorder.String())
	assert.Equal(t, "Tag(0x7f)", Tag(0x7f).String())
}

func TestWalkVisitsParentsFirst(t *testing.T) {
	leaf := &DisplayListFrame{Size: geom.Sz(1, 1)}
	scroll := &DisplayListScrollFrame{Frame: DisplayListFrame{Children: []DisplayListMsg{leaf}}}
	root := &DisplayListFrame{Children: []DisplayListMsg{scroll, &DisplayListFrame{}}}

	var depths []int
	CachedDisplayList{Root: root}.Walk(func(_ DisplayListMsg, depth int) bool {
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []int{0, 1, 2, 1}, depths)
}
