package style

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gogpu/compositor/geom"
)

func TestEasingEndpoints(t *testing.T) {
	for _, f := range []AnimationInterpolationFunction{
		EaseDefault(), EaseLinear(), EaseIn(), EaseOut(), EaseInOut(),
		CubicBezier(geom.Pt(0.1, 0.7), geom.Pt(1, 0.1)),
	} {
		t.Run(f.String(), func(t *testing.T) {
			assert.InDelta(t, 0, f.Evaluate(0), 1e-6)
			assert.InDelta(t, 1, f.Evaluate(1), 1e-6)
		})
	}
}

func TestEaseLinearMidpoint(t *testing.T) {
	assert.InDelta(t, 0.5, EaseLinear().Evaluate(0.5), 1e-6)
}

func TestCubicCurveLength(t *testing.T) {
	line := CubicCurve{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(20, 0), geom.Pt(30, 0)}
	assert.InDelta(t, 30, line.Length(), 1e-3)
	assert.InDelta(t, 0.5, line.TAtOffset(15), 1e-3)
	assert.InDelta(t, 1, line.TAtOffset(100), 1e-6)
	assert.Equal(t, geom.Rect(0, 0, 30, 0), line.Bounds())
}

func TestCubicCurveReverse(t *testing.T) {
	c := CubicCurve{geom.Pt(0, 0), geom.Pt(1, 2), geom.Pt(3, 4), geom.Pt(5, 6)}
	r := c
	r.Reverse()
	assert.Equal(t, c.End, r.Start)
	assert.Equal(t, c.Ctrl1, r.Ctrl2)
	p, q := c.PointAt(0.25), r.PointAt(0.75)
	assert.InDelta(t, p.X, q.X, 1e-4)
	assert.InDelta(t, p.Y, q.Y, 1e-4)
}

func TestCubicCurveTangentIsNormalized(t *testing.T) {
	c := CubicCurve{geom.Pt(0, 0), geom.Pt(0, 10), geom.Pt(10, 10), geom.Pt(10, 0)}
	for _, tt := range []float32{0, 0.3, 0.5, 1} {
		v := c.TangentAt(tt)
		assert.InDelta(t, 1, v.X*v.X+v.Y*v.Y, 1e-4)
	}
}

func TestQuadraticToCubicKeepsEndpoints(t *testing.T) {
	q := QuadraticCurve{geom.Pt(1, 1), geom.Pt(4, 8), geom.Pt(9, 2)}
	c := q.ToCubic()
	assert.Equal(t, q.Start, c.Start)
	assert.Equal(t, q.End, c.End)
	assert.Equal(t, geom.Pt(1+(0.75*4-1), 1+(0.75*8-1)), c.Ctrl1)
}
