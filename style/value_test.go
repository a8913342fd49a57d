package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPixelsIgnoresBaseForAbsoluteUnits(t *testing.T) {
	for _, m := range []SizeMetric{MetricPx, MetricPt, MetricEm, MetricIn, MetricCm, MetricMm} {
		t.Run(m.String(), func(t *testing.T) {
			v := FromMetric(m, 3.5)
			want := v.ToPixels(0)
			for _, base := range []float32{1, 100, 1e6, -20} {
				if got := v.ToPixels(base); got != want {
					t.Errorf("ToPixels(%v) = %v, want %v", base, got, want)
				}
			}
		})
	}
}

func TestToPixelsUnits(t *testing.T) {
	tests := []struct {
		v    PixelValue
		base float32
		want float32
	}{
		{Px(10), 0, 10},
		{Pt(72), 0, 96},
		{Em(2), 0, 32},
		{Inch(1), 0, 96},
		{Pct(50), 300, 150},
	}
	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.v.ToPixels(tt.base), 1e-3)
		})
	}
}

func TestFloatValueQuantization(t *testing.T) {
	if Float(1.00001) != Float(1.0) {
		t.Error("1.00001 and 1.0 should quantize to the same value")
	}
	if got := Float(2.5).Get(); got != 2.5 {
		t.Errorf("Get() = %v, want 2.5", got)
	}
}

func TestToDegreesRange(t *testing.T) {
	tests := []struct {
		a    AngleValue
		want float32
	}{
		{Deg(410), 50},
		{Deg(-90), 270},
		{Deg(360), 0},
		{Grad(100), 90},
		{Turn(0.5), 180},
		{AnglePct(25), 90},
		{Deg(-0.001), 359.999},
	}
	for _, tt := range tests {
		t.Run(tt.a.String(), func(t *testing.T) {
			got := tt.a.ToDegrees()
			if got < 0 || got >= 360 {
				t.Fatalf("ToDegrees() = %v, out of [0, 360)", got)
			}
			assert.InDelta(t, tt.want, got, 1e-2)
		})
	}
}

func TestParsePixelValue(t *testing.T) {
	v, err := ParsePixelValue("12.5px")
	require.NoError(t, err)
	assert.Equal(t, Px(12.5), v)

	v, err = ParsePixelValue("40%")
	require.NoError(t, err)
	assert.Equal(t, Pct(40), v)

	_, err = ParsePixelValue("12parsecs")
	assert.Error(t, err)
}

func TestColorInterpolate(t *testing.T) {
	a, b := RGBA(0, 0, 0, 255), RGBA(255, 100, 10, 255)
	assert.Equal(t, a, a.Interpolate(b, 0))
	assert.Equal(t, b, a.Interpolate(b, 1))
	assert.Equal(t, RGBA(128, 50, 5, 255), a.Interpolate(b, 0.5))
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want ColorU
	}{
		{"#f00", RGBA(255, 0, 0, 255)},
		{"#00ff00", RGBA(0, 255, 0, 255)},
		{"#0000ff80", RGBA(0, 0, 255, 128)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	_, err := ParseHexColor("#12")
	assert.Error(t, err)
}

func TestCssPropertyValueAccessors(t *testing.T) {
	v := Exact(Px(4))
	got, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, Px(4), got)

	a := Auto[PixelValue]()
	assert.False(t, a.IsExact())
	assert.Equal(t, Px(9), a.GetOr(Px(9)))
	assert.Equal(t, "auto", a.String())

	m := Map(Inherit[PixelValue](), PixelValue.IsZero)
	assert.Equal(t, StateInherit, m.State)
}
