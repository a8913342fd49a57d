package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/compositor/geom"
)

func TestBackgroundSizeResolve(t *testing.T) {
	box := geom.Sz(200, 200)
	content := geom.Sz(100, 50)
	tests := []struct {
		name    string
		size    StyleBackgroundSize
		content *geom.LogicalSize
		want    geom.LogicalSize
	}{
		{"contain", Contain(), &content, geom.Sz(200, 100)},
		{"cover", Cover(), &content, geom.Sz(400, 200)},
		{"contain without content", Contain(), nil, geom.Sz(200, 200)},
		{"exact takes smaller ratio", ExactSize(Px(2), Px(3)), &content, geom.Sz(200, 100)},
		{"empty content", Cover(), &geom.LogicalSize{}, geom.LogicalSize{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.size.Resolve(box, tt.content))
		})
	}
}

func TestNormalizeLinearStops(t *testing.T) {
	red, green, blue := RGBA(255, 0, 0, 255), RGBA(0, 255, 0, 255), RGBA(0, 0, 255, 255)
	tests := []struct {
		name  string
		stops []LinearColorStop
		want  []float32
	}{
		{
			"implicit ends",
			[]LinearColorStop{{Color: red}, {Offset: Ptr(Percent(50)), Color: green}, {Color: blue}},
			[]float32{0, 50, 100},
		},
		{
			"evenly spread",
			[]LinearColorStop{{Color: red}, {Color: green}, {Color: blue}, {Color: red}, {Color: green}},
			[]float32{0, 25, 50, 75, 100},
		},
		{
			"never decreasing",
			[]LinearColorStop{{Offset: Ptr(Percent(60)), Color: red}, {Offset: Ptr(Percent(20)), Color: green}},
			[]float32{60, 60},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLinearStops(tt.stops)
			assert.Len(t, got, len(tt.want))
			for i, s := range got {
				assert.InDelta(t, tt.want[i], s.Offset.Number.Get(), 1e-3, "stop %d", i)
				assert.Equal(t, tt.stops[i].Color, s.Color)
			}
		})
	}
	assert.Nil(t, NormalizeLinearStops(nil))
}

func TestNormalizeRadialStops(t *testing.T) {
	full, pct, half := Deg(360), AnglePct(100), Turn(0.5)
	tests := []struct {
		name  string
		stops []RadialColorStop
		want  []float32
	}{
		{"implicit anchors", []RadialColorStop{{Color: Black}, {Color: White}}, []float32{0, 360}},
		{"explicit full turn", []RadialColorStop{{Color: Black}, {Color: White, Offset: &full}}, []float32{0, 360}},
		{"explicit percent", []RadialColorStop{{Color: Black}, {Color: White}, {Color: Black, Offset: &pct}}, []float32{0, 180, 360}},
		{"turn in the middle", []RadialColorStop{{Color: Black}, {Color: White, Offset: &half}, {Color: Black}}, []float32{0, 180, 360}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRadialStops(tt.stops)
			require.Len(t, got, len(tt.want))
			for i, w := range tt.want {
				assert.InDelta(t, w, got[i].Angle.Degrees(), 1e-3, "stop %d", i)
			}
		})
	}
}

func TestAngleDegreesUnwrapped(t *testing.T) {
	assert.InDelta(t, 360, Deg(360).Degrees(), 1e-4)
	assert.InDelta(t, 0, Deg(360).ToDegrees(), 1e-4)
	assert.InDelta(t, 360, Turn(1).Degrees(), 1e-4)
	assert.InDelta(t, 360, AnglePct(100).Degrees(), 1e-4)
	assert.InDelta(t, -90, Deg(-90).Degrees(), 1e-4)
}

func TestDirectionToPoints(t *testing.T) {
	rect := geom.Rect(0, 0, 100, 100)
	tests := []struct {
		name       string
		dir        Direction
		start, end geom.LogicalPoint
	}{
		{"default", DefaultDirection(), geom.Pt(50, 0), geom.Pt(50, 100)},
		{"to right", FromTo(CornerLeft, CornerRight), geom.Pt(0, 50), geom.Pt(100, 50)},
		{"corners", FromTo(CornerTopLeft, CornerBottomRight), geom.Pt(0, 0), geom.Pt(100, 100)},
		{"180deg", AngleDirection(Deg(180)), geom.Pt(50, 0), geom.Pt(50, 100)},
		{"90deg", AngleDirection(Deg(90)), geom.Pt(0, 50), geom.Pt(100, 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e := tt.dir.ToPoints(rect)
			assert.Equal(t, tt.start, s)
			assert.Equal(t, tt.end, e)
		})
	}
}

func TestDirectionCorner(t *testing.T) {
	assert.Equal(t, CornerBottomLeft, CornerTopRight.Opposite())
	assert.Equal(t, CornerTop, CornerBottom.Opposite())

	c, ok := CornerTop.Combine(CornerLeft)
	assert.True(t, ok)
	assert.Equal(t, CornerTopLeft, c)

	_, ok = CornerTop.Combine(CornerBottom)
	assert.False(t, ok)

	assert.Equal(t, geom.Pt(5, 0), CornerTop.ToPoint(geom.Rect(0, 0, 11, 7)))
}

func TestDirectionText(t *testing.T) {
	for _, d := range []Direction{DefaultDirection(), FromTo(CornerTopRight, CornerBottomLeft), AngleDirection(Deg(45))} {
		b, err := d.MarshalText()
		assert.NoError(t, err)
		var got Direction
		assert.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, d, got, string(b))
	}
}

func TestBackgroundPositionText(t *testing.T) {
	var h BackgroundPositionHorizontal
	assert.NoError(t, h.UnmarshalText([]byte("right")))
	assert.Equal(t, PositionRight, h)
	assert.NoError(t, h.UnmarshalText([]byte("12px")))
	assert.Equal(t, ExactX(Px(12)), h)

	var v BackgroundPositionVertical
	assert.NoError(t, v.UnmarshalText([]byte("center")))
	assert.Equal(t, PositionCenterY, v)
}
