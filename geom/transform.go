package geom

import "github.com/chewxy/math32"

// Transform3D is a row-major 4x4 matrix using row vectors:
// a point p maps to p*M, so translation lives in the last row (M41..M43).
// This matches the layout of computed CSS transforms.
type Transform3D struct {
	M11, M12, M13, M14 float32
	M21, M22, M23, M24 float32
	M31, M32, M33, M34 float32
	M41, M42, M43, M44 float32
}

// Identity returns the identity transform.
func Identity() Transform3D {
	return Transform3D{M11: 1, M22: 1, M33: 1, M44: 1}
}

// Translation returns a transform that moves points by (x, y, z).
func Translation(x, y, z float32) Transform3D {
	t := Identity()
	t.M41, t.M42, t.M43 = x, y, z
	return t
}

// Scaling returns a transform that scales by (x, y, z).
func Scaling(x, y, z float32) Transform3D {
	return Transform3D{M11: x, M22: y, M33: z, M44: 1}
}

// RotationZ returns a rotation around the z axis by deg degrees (clockwise in
// a y-down coordinate system).
func RotationZ(deg float32) Transform3D {
	s, c := math32.Sincos(deg * math32.Pi / 180)
	t := Identity()
	t.M11, t.M12 = c, s
	t.M21, t.M22 = -s, c
	return t
}

// Rotation3D returns a rotation by deg degrees around the axis (x, y, z).
// A zero-length axis yields the identity.
func Rotation3D(x, y, z, deg float32) Transform3D {
	l := math32.Sqrt(x*x + y*y + z*z)
	if l == 0 {
		return Identity()
	}
	x, y, z = x/l, y/l, z/l
	s, c := math32.Sincos(deg * math32.Pi / 180)
	ic := 1 - c
	return Transform3D{
		M11: c + x*x*ic, M12: x*y*ic + z*s, M13: x*z*ic - y*s,
		M21: y*x*ic - z*s, M22: c + y*y*ic, M23: y*z*ic + x*s,
		M31: z*x*ic + y*s, M32: z*y*ic - x*s, M33: c + z*z*ic,
		M44: 1,
	}
}

// Skew returns a 2D skew by (ax, ay) degrees.
func Skew(ax, ay float32) Transform3D {
	t := Identity()
	t.M21 = math32.Tan(ax * math32.Pi / 180)
	t.M12 = math32.Tan(ay * math32.Pi / 180)
	return t
}

// Perspective returns a perspective projection with distance d.
// A non-positive distance yields the identity.
func Perspective(d float32) Transform3D {
	t := Identity()
	if d > 0 {
		t.M34 = -1 / d
	}
	return t
}

// Then returns the transform that applies t followed by o.
func (t Transform3D) Then(o Transform3D) Transform3D {
	a := t.rows()
	b := o.rows()
	var r [4][4]float32
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j] + a[i][3]*b[3][j]
		}
	}
	return fromRows(r)
}

// IsIdentity reports whether t is exactly the identity matrix.
func (t Transform3D) IsIdentity() bool { return t == Identity() }

// Is2DScaleTranslation reports whether t only scales and translates in the plane.
func (t Transform3D) Is2DScaleTranslation() bool {
	return t.M12 == 0 && t.M13 == 0 && t.M14 == 0 &&
		t.M21 == 0 && t.M23 == 0 && t.M24 == 0 &&
		t.M31 == 0 && t.M32 == 0 && t.M33 == 1 && t.M34 == 0 &&
		t.M43 == 0 && t.M44 == 1
}

// TransformPoint maps a 2D point through t, applying the perspective divide.
func (t Transform3D) TransformPoint(p LogicalPoint) LogicalPoint {
	x := p.X*t.M11 + p.Y*t.M21 + t.M41
	y := p.X*t.M12 + p.Y*t.M22 + t.M42
	w := p.X*t.M14 + p.Y*t.M24 + t.M44
	if w != 0 && w != 1 {
		x /= w
		y /= w
	}
	return LogicalPoint{X: x, Y: y}
}

// Array returns the sixteen entries in row-major order.
func (t Transform3D) Array() [16]float32 {
	return [16]float32{
		t.M11, t.M12, t.M13, t.M14,
		t.M21, t.M22, t.M23, t.M24,
		t.M31, t.M32, t.M33, t.M34,
		t.M41, t.M42, t.M43, t.M44,
	}
}

func (t Transform3D) rows() [4][4]float32 {
	return [4][4]float32{
		{t.M11, t.M12, t.M13, t.M14},
		{t.M21, t.M22, t.M23, t.M24},
		{t.M31, t.M32, t.M33, t.M34},
		{t.M41, t.M42, t.M43, t.M44},
	}
}

func fromRows(r [4][4]float32) Transform3D {
	return Transform3D{
		M11: r[0][0], M12: r[0][1], M13: r[0][2], M14: r[0][3],
		M21: r[1][0], M22: r[1][1], M23: r[1][2], M24: r[1][3],
		M31: r[2][0], M32: r[2][1], M33: r[2][2], M34: r[2][3],
		M41: r[3][0], M42: r[3][1], M43: r[3][2], M44: r[3][3],
	}
}
