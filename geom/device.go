package geom

import "fmt"

// DeviceIntPoint is a point in device pixels.
type DeviceIntPoint struct {
	X int32 `yaml:"x"`
	Y int32 `yaml:"y"`
}

// DeviceIntSize is a size in device pixels.
type DeviceIntSize struct {
	Width  int32 `yaml:"width"`
	Height int32 `yaml:"height"`
}

// IsEmpty reports whether either side is zero or negative.
func (s DeviceIntSize) IsEmpty() bool { return s.Width <= 0 || s.Height <= 0 }

// Area returns width*height, or 0 for empty sizes.
func (s DeviceIntSize) Area() int64 {
	if s.IsEmpty() {
		return 0
	}
	return int64(s.Width) * int64(s.Height)
}

// DeviceIntRect is an integer min/max box in device pixels.
type DeviceIntRect struct {
	Min DeviceIntPoint `yaml:"min"`
	Max DeviceIntPoint `yaml:"max"`
}

// IntRect builds a DeviceIntRect from x, y, width and height.
func IntRect(x, y, w, h int32) DeviceIntRect {
	return DeviceIntRect{Min: DeviceIntPoint{X: x, Y: y}, Max: DeviceIntPoint{X: x + w, Y: y + h}}
}

// IntRectFromSize returns a rect at the origin covering size.
func IntRectFromSize(s DeviceIntSize) DeviceIntRect {
	return DeviceIntRect{Max: DeviceIntPoint{X: s.Width, Y: s.Height}}
}

// Width returns the horizontal extent.
func (r DeviceIntRect) Width() int32 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r DeviceIntRect) Height() int32 { return r.Max.Y - r.Min.Y }

// Size returns the extent of r.
func (r DeviceIntRect) Size() DeviceIntSize {
	return DeviceIntSize{Width: r.Width(), Height: r.Height()}
}

// IsEmpty reports whether r covers no pixels.
func (r DeviceIntRect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Union returns the smallest rect containing r and o. Empty rects are ignored.
func (r DeviceIntRect) Union(o DeviceIntRect) DeviceIntRect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	return DeviceIntRect{
		Min: DeviceIntPoint{X: min(r.Min.X, o.Min.X), Y: min(r.Min.Y, o.Min.Y)},
		Max: DeviceIntPoint{X: max(r.Max.X, o.Max.X), Y: max(r.Max.Y, o.Max.Y)},
	}
}

// Intersection returns the overlap of r and o and false if they do not overlap.
func (r DeviceIntRect) Intersection(o DeviceIntRect) (DeviceIntRect, bool) {
	i := DeviceIntRect{
		Min: DeviceIntPoint{X: max(r.Min.X, o.Min.X), Y: max(r.Min.Y, o.Min.Y)},
		Max: DeviceIntPoint{X: min(r.Max.X, o.Max.X), Y: min(r.Max.Y, o.Max.Y)},
	}
	if i.IsEmpty() {
		return DeviceIntRect{}, false
	}
	return i, true
}

// Contains reports whether o lies entirely within r.
func (r DeviceIntRect) Contains(o DeviceIntRect) bool {
	if o.IsEmpty() {
		return true
	}
	return o.Min.X >= r.Min.X && o.Min.Y >= r.Min.Y && o.Max.X <= r.Max.X && o.Max.Y <= r.Max.Y
}

// Translate returns r moved by (dx, dy).
func (r DeviceIntRect) Translate(dx, dy int32) DeviceIntRect {
	return DeviceIntRect{
		Min: DeviceIntPoint{X: r.Min.X + dx, Y: r.Min.Y + dy},
		Max: DeviceIntPoint{X: r.Max.X + dx, Y: r.Max.Y + dy},
	}
}

func (r DeviceIntRect) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", r.Min.X, r.Min.Y, r.Width(), r.Height())
}
