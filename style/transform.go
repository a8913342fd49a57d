package style

import "github.com/gogpu/compositor/geom"

// TransformKind names a transform function.
type TransformKind uint8

// Transform functions.
const (
	TransformMatrix TransformKind = iota
	TransformMatrix3D
	TransformTranslate
	TransformTranslate3D
	TransformTranslateX
	TransformTranslateY
	TransformTranslateZ
	TransformRotate
	TransformRotate3D
	TransformRotateX
	TransformRotateY
	TransformRotateZ
	TransformScale
	TransformScale3D
	TransformScaleX
	TransformScaleY
	TransformScaleZ
	TransformSkew
	TransformSkewX
	TransformSkewY
	TransformPerspective
)

var transformKindNames = []string{
	TransformMatrix:      "matrix",
	TransformMatrix3D:    "matrix3d",
	TransformTranslate:   "translate",
	TransformTranslate3D: "translate3d",
	TransformTranslateX:  "translateX",
	TransformTranslateY:  "translateY",
	TransformTranslateZ:  "translateZ",
	TransformRotate:      "rotate",
	TransformRotate3D:    "rotate3d",
	TransformRotateX:     "rotateX",
	TransformRotateY:     "rotateY",
	TransformRotateZ:     "rotateZ",
	TransformScale:       "scale",
	TransformScale3D:     "scale3d",
	TransformScaleX:      "scaleX",
	TransformScaleY:      "scaleY",
	TransformScaleZ:      "scaleZ",
	TransformSkew:        "skew",
	TransformSkewX:       "skewX",
	TransformSkewY:       "skewY",
	TransformPerspective: "perspective",
}

func (k TransformKind) String() string { return enumName(transformKindNames, "transform", uint8(k)) }

// MarshalText encodes k as its CSS function name.
func (k TransformKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText parses a CSS function name.
func (k *TransformKind) UnmarshalText(b []byte) error {
	n, err := enumParse(transformKindNames, "transform", string(b))
	*k = TransformKind(n)
	return err
}

// StyleTransform is one function of a transform list.
//
// Lengths holds matrix entries (6 or 16), translation components or the
// perspective distance. Factors holds scale factors and the rotate3d axis as
// percentages, so 100% is a factor of 1. Angles holds rotation and skew
// angles.
type StyleTransform struct {
	Kind    TransformKind     `yaml:"kind"`
	Lengths []PixelValue      `yaml:"lengths,omitempty"`
	Factors []PercentageValue `yaml:"factors,omitempty"`
	Angles  []AngleValue      `yaml:"angles,omitempty"`
}

// Matrix returns matrix(a, b, c, d, tx, ty).
func Matrix(a, b, c, d, tx, ty float32) StyleTransform {
	return StyleTransform{Kind: TransformMatrix, Lengths: []PixelValue{Px(a), Px(b), Px(c), Px(d), Px(tx), Px(ty)}}
}

// Matrix3D returns matrix3d with the 16 entries in row-major order.
func Matrix3D(m [16]float32) StyleTransform {
	l := make([]PixelValue, 16)
	for i, v := range m {
		l[i] = Px(v)
	}
	return StyleTransform{Kind: TransformMatrix3D, Lengths: l}
}

// Translate returns translate(x, y).
func Translate(x, y PixelValue) StyleTransform {
	return StyleTransform{Kind: TransformTranslate, Lengths: []PixelValue{x, y}}
}

// Translate3D returns translate3d(x, y, z).
func Translate3D(x, y, z PixelValue) StyleTransform {
	return StyleTransform{Kind: TransformTranslate3D, Lengths: []PixelValue{x, y, z}}
}

// TranslateAxis returns translateX, translateY or translateZ.
func TranslateAxis(kind TransformKind, v PixelValue) StyleTransform {
	return StyleTransform{Kind: kind, Lengths: []PixelValue{v}}
}

// Rotate returns rotate(a).
func Rotate(a AngleValue) StyleTransform {
	return StyleTransform{Kind: TransformRotate, Angles: []AngleValue{a}}
}

// RotateAxis returns rotateX, rotateY or rotateZ.
func RotateAxis(kind TransformKind, a AngleValue) StyleTransform {
	return StyleTransform{Kind: kind, Angles: []AngleValue{a}}
}

// Rotate3D returns rotate3d(x, y, z, a).
func Rotate3D(x, y, z PercentageValue, a AngleValue) StyleTransform {
	return StyleTransform{Kind: TransformRotate3D, Factors: []PercentageValue{x, y, z}, Angles: []AngleValue{a}}
}

// Scale returns scale(x, y).
func Scale(x, y PercentageValue) StyleTransform {
	return StyleTransform{Kind: TransformScale, Factors: []PercentageValue{x, y}}
}

// Scale3D returns scale3d(x, y, z).
func Scale3D(x, y, z PercentageValue) StyleTransform {
	return StyleTransform{Kind: TransformScale3D, Factors: []PercentageValue{x, y, z}}
}

// ScaleAxis returns scaleX, scaleY or scaleZ.
func ScaleAxis(kind TransformKind, v PercentageValue) StyleTransform {
	return StyleTransform{Kind: kind, Factors: []PercentageValue{v}}
}

// SkewBy returns skew(x, y).
func SkewBy(x, y AngleValue) StyleTransform {
	return StyleTransform{Kind: TransformSkew, Angles: []AngleValue{x, y}}
}

// SkewAxis returns skewX or skewY.
func SkewAxis(kind TransformKind, a AngleValue) StyleTransform {
	return StyleTransform{Kind: kind, Angles: []AngleValue{a}}
}

// PerspectiveOf returns perspective(d).
func PerspectiveOf(d PixelValue) StyleTransform {
	return StyleTransform{Kind: TransformPerspective, Lengths: []PixelValue{d}}
}

// ScaleForDPI scales translations and the perspective distance. Matrix
// entries are unit-less and stay unchanged.
func (s *StyleTransform) ScaleForDPI(factor float32) {
	if s.Kind == TransformMatrix || s.Kind == TransformMatrix3D || len(s.Lengths) == 0 {
		return
	}
	l := make([]PixelValue, len(s.Lengths))
	for i, v := range s.Lengths {
		v.ScaleForDPI(factor)
		l[i] = v
	}
	s.Lengths = l
}

func (s StyleTransform) length(i int, base float32) float32 {
	if i >= len(s.Lengths) {
		return 0
	}
	return s.Lengths[i].ToPixels(base)
}

func (s StyleTransform) factor(i int) float32 {
	if i >= len(s.Factors) {
		return 1
	}
	return s.Factors[i].Normalized()
}

func (s StyleTransform) angle(i int) float32 {
	if i >= len(s.Angles) {
		return 0
	}
	return s.Angles[i].ToDegrees()
}

// Compute returns the matrix of s. Percentages in translations resolve
// against w and h, and rotations pivot on origin.
func (s StyleTransform) Compute(origin geom.LogicalPoint, w, h float32) geom.Transform3D {
	rotate := func(x, y, z float32) geom.Transform3D {
		return geom.Translation(-origin.X, -origin.Y, 0).
			Then(geom.Rotation3D(x, y, z, s.angle(0))).
			Then(geom.Translation(origin.X, origin.Y, 0))
	}
	switch s.Kind {
	case TransformMatrix:
		m := geom.Identity()
		m.M11, m.M12 = s.length(0, 0), s.length(1, 0)
		m.M21, m.M22 = s.length(2, 0), s.length(3, 0)
		m.M41, m.M42 = s.length(4, 0), s.length(5, 0)
		return m
	case TransformMatrix3D:
		var a [16]float32
		for i := range a {
			a[i] = s.length(i, 0)
		}
		return geom.Transform3D{
			M11: a[0], M12: a[1], M13: a[2], M14: a[3],
			M21: a[4], M22: a[5], M23: a[6], M24: a[7],
			M31: a[8], M32: a[9], M33: a[10], M34: a[11],
			M41: a[12], M42: a[13], M43: a[14], M44: a[15],
		}
	case TransformTranslate:
		return geom.Translation(s.length(0, w), s.length(1, h), 0)
	case TransformTranslate3D:
		return geom.Translation(s.length(0, w), s.length(1, h), s.length(2, w))
	case TransformTranslateX:
		return geom.Translation(s.length(0, w), 0, 0)
	case TransformTranslateY:
		return geom.Translation(0, s.length(0, h), 0)
	case TransformTranslateZ:
		return geom.Translation(0, 0, s.length(0, w))
	case TransformRotate, TransformRotateZ:
		return rotate(0, 0, 1)
	case TransformRotateX:
		return rotate(1, 0, 0)
	case TransformRotateY:
		return rotate(0, 1, 0)
	case TransformRotate3D:
		return rotate(s.factor(0), s.factor(1), s.factor(2))
	case TransformScale:
		return geom.Scaling(s.factor(0), s.factor(1), 1)
	case TransformScale3D:
		return geom.Scaling(s.factor(0), s.factor(1), s.factor(2))
	case TransformScaleX:
		return geom.Scaling(s.factor(0), 1, 1)
	case TransformScaleY:
		return geom.Scaling(1, s.factor(0), 1)
	case TransformScaleZ:
		return geom.Scaling(1, 1, s.factor(0))
	case TransformSkew:
		return geom.Skew(s.angle(0), s.angle(1))
	case TransformSkewX:
		return geom.Skew(s.angle(0), 0)
	case TransformSkewY:
		return geom.Skew(0, s.angle(0))
	case TransformPerspective:
		return geom.Perspective(s.length(0, w))
	}
	return geom.Identity()
}

// ComputeTransform multiplies the functions of list in order. The transform
// origin resolves against the w x h box.
func ComputeTransform(list []StyleTransform, origin StyleTransformOrigin, w, h float32) geom.Transform3D {
	o := geom.Pt(origin.X.ToPixels(w), origin.Y.ToPixels(h))
	m := geom.Identity()
	for _, t := range list {
		m = m.Then(t.Compute(o, w, h))
	}
	return m
}

// StyleTransformOrigin is a transform-origin. The default is the center.
type StyleTransformOrigin struct {
	X PixelValue `yaml:"x"`
	Y PixelValue `yaml:"y"`
}

// DefaultTransformOrigin is "50% 50%".
func DefaultTransformOrigin() StyleTransformOrigin {
	return StyleTransformOrigin{X: Pct(50), Y: Pct(50)}
}

// Interpolate blends both components at t.
func (o StyleTransformOrigin) Interpolate(p StyleTransformOrigin, t float32) StyleTransformOrigin {
	return StyleTransformOrigin{X: o.X.Interpolate(p.X, t), Y: o.Y.Interpolate(p.Y, t)}
}

// ScaleForDPI scales both components.
func (o *StyleTransformOrigin) ScaleForDPI(factor float32) {
	o.X.ScaleForDPI(factor)
	o.Y.ScaleForDPI(factor)
}

// StylePerspectiveOrigin is a perspective-origin. The zero value is "0 0".
type StylePerspectiveOrigin struct {
	X PixelValue `yaml:"x"`
	Y PixelValue `yaml:"y"`
}

// Interpolate blends both components at t.
func (o StylePerspectiveOrigin) Interpolate(p StylePerspectiveOrigin, t float32) StylePerspectiveOrigin {
	return StylePerspectiveOrigin{X: o.X.Interpolate(p.X, t), Y: o.Y.Interpolate(p.Y, t)}
}

// ScaleForDPI scales both components.
func (o *StylePerspectiveOrigin) ScaleForDPI(factor float32) {
	o.X.ScaleForDPI(factor)
	o.Y.ScaleForDPI(factor)
}
