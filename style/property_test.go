package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/compositor/geom"
)

func linear() InterpolateResolver { return InterpolateResolver{Easing: EaseLinear()} }

func TestPropertyTableComplete(t *testing.T) {
	seen := make(map[string]bool)
	for _, pt := range PropertyTypes() {
		key := pt.Key()
		require.NotEmpty(t, key, "property %d has no key", pt)
		assert.False(t, seen[key], "duplicate key %q", key)
		seen[key] = true

		got, ok := ParsePropertyType(key)
		assert.True(t, ok, key)
		assert.Equal(t, pt, got)
	}
	assert.Len(t, seen, 77)
	_, ok := ParsePropertyType("no-such-property")
	assert.False(t, ok)
}

func TestPropertyFlags(t *testing.T) {
	assert.True(t, PropertyTextColor.IsInheritable())
	assert.True(t, PropertyFontFamily.IsInheritable())
	assert.False(t, PropertyWidth.IsInheritable())

	assert.True(t, PropertyWidth.CanTriggerRelayout())
	assert.False(t, PropertyTextColor.CanTriggerRelayout())
	assert.False(t, PropertyOpacity.CanTriggerRelayout())

	var gpu []CssPropertyType
	for _, pt := range PropertyTypes() {
		if pt.IsGPUOnly() {
			gpu = append(gpu, pt)
		}
	}
	assert.ElementsMatch(t, []CssPropertyType{PropertyOpacity, PropertyTransform}, gpu)
}

func TestNewPropertyTypeMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { NewProperty(PropertyWidth, Exact(RGBA(1, 2, 3, 4))) })
	assert.NotPanics(t, func() { NewProperty(PropertyWidth, Auto[PixelValue]()) })
}

func TestInterpolateEndpoints(t *testing.T) {
	pairs := [][2]CssProperty{
		{NewProperty(PropertyWidth, Exact(Px(10))), NewProperty(PropertyWidth, Exact(Px(30)))},
		{NewProperty(PropertyTextColor, Exact(Black)), NewProperty(PropertyTextColor, Exact(White))},
		{NewProperty(PropertyOpacity, Exact(Percent(0))), NewProperty(PropertyOpacity, Exact(Percent(100)))},
		{NewProperty(PropertyDisplay, Exact(DisplayBlock)), NewProperty(PropertyDisplay, Exact(DisplayFlex))},
		{NewProperty(PropertyTransformOrigin, Exact(DefaultTransformOrigin())), NewProperty(PropertyTransformOrigin, Exact(StyleTransformOrigin{}))},
	}
	for _, p := range pairs {
		t.Run(p[0].Type().Key(), func(t *testing.T) {
			assert.Equal(t, p[0], p[0].Interpolate(p[1], 0, linear()))
			assert.Equal(t, p[1], p[0].Interpolate(p[1], 1, linear()))
		})
	}
}

func TestInterpolateMidpoint(t *testing.T) {
	a := NewProperty(PropertyWidth, Exact(Px(10)))
	b := NewProperty(PropertyWidth, Exact(Px(20)))
	got, ok := ValueOf[PixelValue](a.Interpolate(b, 0.5, linear()))
	require.True(t, ok)
	assert.Equal(t, Exact(Px(15)), got)
}

func TestInterpolateAutoWidthStartsFromCurrentRect(t *testing.T) {
	r := linear()
	r.CurrentRect = geom.Sz(100, 40)
	a := NewProperty(PropertyWidth, Auto[PixelValue]())
	b := NewProperty(PropertyWidth, Exact(Px(20)))
	got, _ := ValueOf[PixelValue](a.Interpolate(b, 0.5, r))
	assert.Equal(t, Exact(Px(60)), got)
}

func TestInterpolateStepsForDiscreteProperties(t *testing.T) {
	a := NewProperty(PropertyDisplay, Exact(DisplayBlock))
	b := NewProperty(PropertyDisplay, Exact(DisplayNone))
	assert.Equal(t, a, a.Interpolate(b, 0.4, linear()))
	assert.Equal(t, b, a.Interpolate(b, 0.6, linear()))

	// Different properties never blend.
	c := NewProperty(PropertyHeight, Exact(Px(5)))
	w := NewProperty(PropertyWidth, Exact(Px(50)))
	assert.Equal(t, c, c.Interpolate(w, 0.5, linear()))
}

func TestScaleForDPIIdentity(t *testing.T) {
	props := []CssProperty{
		NewProperty(PropertyWidth, Exact(Px(13.25))),
		NewProperty(PropertyBackgroundSize, Exact([]StyleBackgroundSize{ExactSize(Px(10), Pct(50))})),
		NewProperty(PropertyTransform, Exact([]StyleTransform{Translate(Px(4), Pct(10)), Matrix(1, 0, 0, 1, 5, 5)})),
		NewProperty(PropertyFilter, Exact([]StyleFilter{BlurFilter(Px(2), Px(3))})),
		NewProperty(PropertyScrollbarStyle, Exact(DefaultScrollbarStyle())),
		NewProperty(PropertyTextColor, Exact(Black)),
	}
	for _, p := range props {
		t.Run(p.Type().Key(), func(t *testing.T) {
			q := p
			q.ScaleForDPI(1)
			assert.Equal(t, p, q)
		})
	}
}

func TestScaleForDPIRoundTrip(t *testing.T) {
	p := NewProperty(PropertyPaddingLeft, Exact(Px(13.25)))
	p.ScaleForDPI(2)
	v, _ := ValueOf[PixelValue](p)
	assert.Equal(t, Px(26.5), v.Value)

	p.ScaleForDPI(0.5)
	v, _ = ValueOf[PixelValue](p)
	assert.InDelta(t, 13.25, v.Value.ToPixels(0), 1e-3)

	pct := NewProperty(PropertyWidth, Exact(Pct(50)))
	pct.ScaleForDPI(3)
	v, _ = ValueOf[PixelValue](pct)
	assert.Equal(t, Pct(50), v.Value)
}

func TestScaleForDPIDoesNotAlias(t *testing.T) {
	list := []StyleTransform{Translate(Px(4), Px(6))}
	p := NewProperty(PropertyTransform, Exact(list))
	p.ScaleForDPI(2)
	assert.Equal(t, Px(4), list[0].Lengths[0])
	v, _ := ValueOf[[]StyleTransform](p)
	assert.Equal(t, Px(8), v.Value[0].Lengths[0])
}

func TestComputeTransform(t *testing.T) {
	m := ComputeTransform([]StyleTransform{Translate(Pct(50), Px(10))}, DefaultTransformOrigin(), 200, 100)
	p := m.TransformPoint(geom.Pt(0, 0))
	assert.InDelta(t, 100, p.X, 1e-4)
	assert.InDelta(t, 10, p.Y, 1e-4)

	// A half turn about the center of a 100x100 box maps its top-left corner
	// onto the bottom-right one.
	r := ComputeTransform([]StyleTransform{Rotate(Deg(180))}, DefaultTransformOrigin(), 100, 100)
	q := r.TransformPoint(geom.Pt(0, 0))
	assert.InDelta(t, 100, q.X, 1e-3)
	assert.InDelta(t, 100, q.Y, 1e-3)
}

func TestBorderRadiusScale(t *testing.T) {
	r := UniformRadius(Px(4))
	assert.False(t, r.IsNone())
	orig := r
	r.ScaleForDPI(2)
	assert.Equal(t, Px(8), r.TopLeft.Value)
	assert.Equal(t, Px(8), r.BottomRight.Value)
	assert.Equal(t, Px(4), orig.TopLeft.Value)
	assert.True(t, StyleBorderRadius{}.IsNone())
}
