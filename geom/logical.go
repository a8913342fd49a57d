package geom

import (
	"fmt"

	"github.com/chewxy/math32"
)

// LogicalPoint is a point in device-independent pixels.
type LogicalPoint struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// Pt is shorthand for LogicalPoint{X: x, Y: y}.
func Pt(x, y float32) LogicalPoint { return LogicalPoint{X: x, Y: y} }

// Add returns p translated by v.
func (p LogicalPoint) Add(v LogicalVector) LogicalPoint {
	return LogicalPoint{X: p.X + v.X, Y: p.Y + v.Y}
}

// Distance returns the euclidean distance between p and q.
func (p LogicalPoint) Distance(q LogicalPoint) float32 {
	return math32.Hypot(q.X-p.X, q.Y-p.Y)
}

func (p LogicalPoint) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// LogicalVector is a displacement in device-independent pixels.
type LogicalVector struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
}

// LogicalSize is a width and height in device-independent pixels.
type LogicalSize struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Sz is shorthand for LogicalSize{Width: w, Height: h}.
func Sz(w, h float32) LogicalSize { return LogicalSize{Width: w, Height: h} }

// RoundedSize returns a size with both sides rounded to the nearest integer.
func RoundedSize(w, h float32) LogicalSize {
	return LogicalSize{Width: math32.Round(w), Height: math32.Round(h)}
}

// IsEmpty reports whether either side is zero or negative.
func (s LogicalSize) IsEmpty() bool { return s.Width <= 0 || s.Height <= 0 }

func (s LogicalSize) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// LogicalRect is an origin and size in device-independent pixels.
type LogicalRect struct {
	Origin LogicalPoint `yaml:"origin"`
	Size   LogicalSize  `yaml:"size"`
}

// Rect builds a LogicalRect from x, y, width and height.
func Rect(x, y, w, h float32) LogicalRect {
	return LogicalRect{Origin: LogicalPoint{X: x, Y: y}, Size: LogicalSize{Width: w, Height: h}}
}

// RectFromSize returns a rect at the origin with the given size.
func RectFromSize(s LogicalSize) LogicalRect {
	return LogicalRect{Size: s}
}

// MinX returns the left edge.
func (r LogicalRect) MinX() float32 { return r.Origin.X }

// MinY returns the top edge.
func (r LogicalRect) MinY() float32 { return r.Origin.Y }

// MaxX returns the right edge.
func (r LogicalRect) MaxX() float32 { return r.Origin.X + r.Size.Width }

// MaxY returns the bottom edge.
func (r LogicalRect) MaxY() float32 { return r.Origin.Y + r.Size.Height }

// IsEmpty reports whether the rect covers no area.
func (r LogicalRect) IsEmpty() bool { return r.Size.IsEmpty() }

// Translate returns r moved by v.
func (r LogicalRect) Translate(v LogicalVector) LogicalRect {
	r.Origin = r.Origin.Add(v)
	return r
}

// Contains reports whether the point (x, y) lies inside r.
// The right and bottom edges are exclusive.
func (r LogicalRect) Contains(x, y float32) bool {
	return x >= r.MinX() && x < r.MaxX() && y >= r.MinY() && y < r.MaxY()
}

// Union returns the smallest rect containing r and o. Empty rects are ignored.
func (r LogicalRect) Union(o LogicalRect) LogicalRect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	minX := math32.Min(r.MinX(), o.MinX())
	minY := math32.Min(r.MinY(), o.MinY())
	maxX := math32.Max(r.MaxX(), o.MaxX())
	maxY := math32.Max(r.MaxY(), o.MaxY())
	return Rect(minX, minY, maxX-minX, maxY-minY)
}

// UnionAll returns the union of rects and false if there were none.
func UnionAll(rects ...LogicalRect) (LogicalRect, bool) {
	if len(rects) == 0 {
		return LogicalRect{}, false
	}
	u := rects[0]
	for _, r := range rects[1:] {
		u = u.Union(r)
	}
	return u, true
}

// ScrollRect returns the union of r with its children, or false when no
// child extends past r's bounds.
func (r LogicalRect) ScrollRect(children ...LogicalRect) (LogicalRect, bool) {
	u, ok := UnionAll(children...)
	if !ok {
		return LogicalRect{}, false
	}
	u = u.Union(r)
	if u == r {
		return LogicalRect{}, false
	}
	return u, true
}

// RoundOut returns r with its origin and size rounded to whole pixels.
func (r LogicalRect) RoundOut() LogicalRect {
	return Rect(math32.Round(r.Origin.X), math32.Round(r.Origin.Y),
		math32.Round(r.Size.Width), math32.Round(r.Size.Height))
}

// ToDevice scales r by hidpi and snaps it outward to integer device pixels.
func (r LogicalRect) ToDevice(hidpi float32) DeviceIntRect {
	return DeviceIntRect{
		Min: DeviceIntPoint{X: int32(math32.Floor(r.MinX() * hidpi)), Y: int32(math32.Floor(r.MinY() * hidpi))},
		Max: DeviceIntPoint{X: int32(math32.Ceil(r.MaxX() * hidpi)), Y: int32(math32.Ceil(r.MaxY() * hidpi))},
	}
}

func (r LogicalRect) String() string {
	return fmt.Sprintf("[%g, %g, %g, %g]", r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height)
}

// SideOffsets holds one value per box edge, in CSS order.
type SideOffsets struct {
	Top    float32 `yaml:"top"`
	Right  float32 `yaml:"right"`
	Bottom float32 `yaml:"bottom"`
	Left   float32 `yaml:"left"`
}

// IsZero reports whether all four sides are zero.
func (s SideOffsets) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}
