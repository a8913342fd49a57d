package style

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"

	"github.com/gogpu/compositor/geom"
)

// BackgroundContentKind selects the variant of a StyleBackgroundContent.
type BackgroundContentKind uint8

// Background content kinds.
const (
	BackgroundColor BackgroundContentKind = iota
	BackgroundLinearGradient
	BackgroundRadialGradient
	BackgroundConicGradient
	BackgroundImage
)

var backgroundContentKindNames = []string{
	BackgroundColor:          "color",
	BackgroundLinearGradient: "linear-gradient",
	BackgroundRadialGradient: "radial-gradient",
	BackgroundConicGradient:  "conic-gradient",
	BackgroundImage:          "image",
}

func (k BackgroundContentKind) String() string {
	return enumName(backgroundContentKindNames, "background kind", uint8(k))
}

// MarshalText encodes k as its name.
func (k BackgroundContentKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText parses a kind name.
func (k *BackgroundContentKind) UnmarshalText(b []byte) error {
	n, err := enumParse(backgroundContentKindNames, "background kind", string(b))
	*k = BackgroundContentKind(n)
	return err
}

// StyleBackgroundContent is one layer of a background: a color, a gradient or
// a named image. Only the field selected by Kind is meaningful.
type StyleBackgroundContent struct {
	Kind   BackgroundContentKind `yaml:"kind"`
	Color  ColorU                `yaml:"color,omitempty"`
	Image  string                `yaml:"image,omitempty"`
	Linear *LinearGradient       `yaml:"linear,omitempty"`
	Radial *RadialGradient       `yaml:"radial,omitempty"`
	Conic  *ConicGradient        `yaml:"conic,omitempty"`
}

// ColorBackground returns a solid color layer.
func ColorBackground(c ColorU) StyleBackgroundContent {
	return StyleBackgroundContent{Kind: BackgroundColor, Color: c}
}

// ImageBackground returns an image layer referring to the image named id.
func ImageBackground(id string) StyleBackgroundContent {
	return StyleBackgroundContent{Kind: BackgroundImage, Image: id}
}

// LinearGradientBackground returns a linear gradient layer.
func LinearGradientBackground(g LinearGradient) StyleBackgroundContent {
	return StyleBackgroundContent{Kind: BackgroundLinearGradient, Linear: &g}
}

// RadialGradientBackground returns a radial gradient layer.
func RadialGradientBackground(g RadialGradient) StyleBackgroundContent {
	return StyleBackgroundContent{Kind: BackgroundRadialGradient, Radial: &g}
}

// ConicGradientBackground returns a conic gradient layer.
func ConicGradientBackground(g ConicGradient) StyleBackgroundContent {
	return StyleBackgroundContent{Kind: BackgroundConicGradient, Conic: &g}
}

// LinearGradient is a linear-gradient() with normalized stops.
type LinearGradient struct {
	Direction  Direction                   `yaml:"direction"`
	ExtendMode ExtendMode                  `yaml:"extend"`
	Stops      []NormalizedLinearColorStop `yaml:"stops"`
}

// RadialGradient is a radial-gradient() with normalized stops.
type RadialGradient struct {
	Shape      Shape                       `yaml:"shape"`
	Size       RadialGradientSize          `yaml:"size"`
	Position   StyleBackgroundPosition     `yaml:"position"`
	ExtendMode ExtendMode                  `yaml:"extend"`
	Stops      []NormalizedLinearColorStop `yaml:"stops"`
}

// ConicGradient is a conic-gradient() with normalized stops.
type ConicGradient struct {
	ExtendMode ExtendMode                  `yaml:"extend"`
	Center     StyleBackgroundPosition     `yaml:"center"`
	Angle      AngleValue                  `yaml:"angle"`
	Stops      []NormalizedRadialColorStop `yaml:"stops"`
}

// LinearColorStop is a color stop as written, with an optional offset.
type LinearColorStop struct {
	Offset *PercentageValue
	Color  ColorU
}

// RadialColorStop is a conic color stop as written, with an optional angle.
type RadialColorStop struct {
	Offset *AngleValue
	Color  ColorU
}

// NormalizedLinearColorStop is a color stop at a resolved offset in [0%, 100%].
type NormalizedLinearColorStop struct {
	Offset PercentageValue `yaml:"offset"`
	Color  ColorU          `yaml:"color"`
}

// NormalizedRadialColorStop is a color stop at a resolved angle in [0deg, 360deg].
type NormalizedRadialColorStop struct {
	Angle AngleValue `yaml:"angle"`
	Color ColorU     `yaml:"color"`
}

// NormalizeLinearStops resolves missing offsets. A missing first offset
// becomes 0%, a missing last offset 100%, and the stops in between two known
// offsets are spread evenly across that interval. Offsets never decrease.
func NormalizeLinearStops(stops []LinearColorStop) []NormalizedLinearColorStop {
	if len(stops) == 0 {
		return nil
	}
	known := make([]bool, len(stops))
	vals := make([]float32, len(stops))
	for i, s := range stops {
		if s.Offset != nil {
			known[i] = true
			vals[i] = s.Offset.Normalized() * 100
		}
	}
	distributeOffsets(known, vals, 100)
	out := make([]NormalizedLinearColorStop, len(stops))
	for i, s := range stops {
		out[i] = NormalizedLinearColorStop{Offset: Percent(vals[i]), Color: s.Color}
	}
	return out
}

// NormalizeRadialStops is NormalizeLinearStops for angular stops, with 0deg
// and 360deg as the implicit anchors. Angles are kept unwrapped so a stop
// at a full turn stays at 360deg.
func NormalizeRadialStops(stops []RadialColorStop) []NormalizedRadialColorStop {
	if len(stops) == 0 {
		return nil
	}
	known := make([]bool, len(stops))
	vals := make([]float32, len(stops))
	for i, s := range stops {
		if s.Offset != nil {
			known[i] = true
			vals[i] = s.Offset.Degrees()
		}
	}
	distributeOffsets(known, vals, 360)
	out := make([]NormalizedRadialColorStop, len(stops))
	for i, s := range stops {
		out[i] = NormalizedRadialColorStop{Angle: Deg(vals[i]), Color: s.Color}
	}
	return out
}

func distributeOffsets(known []bool, vals []float32, end float32) {
	last := len(vals) - 1
	if !known[0] {
		known[0], vals[0] = true, 0
	}
	if !known[last] {
		known[last], vals[last] = true, math32.Max(end, vals[0])
	}
	prev := 0
	for i := 1; i <= last; i++ {
		if !known[i] {
			continue
		}
		lo := vals[prev]
		hi := math32.Max(vals[i], lo)
		vals[i] = hi
		step := (hi - lo) / float32(i-prev)
		for j := prev + 1; j < i; j++ {
			vals[j] = lo + step*float32(j-prev)
		}
		prev = i
	}
}

// DirectionKind selects between an angle and a corner pair.
type DirectionKind uint8

// Direction kinds.
const (
	DirectionFromTo DirectionKind = iota
	DirectionAngle
)

// Direction is the direction of a linear gradient, either an angle or a
// "to <side>" corner pair.
type Direction struct {
	Kind  DirectionKind
	Angle AngleValue
	From  DirectionCorner
	To    DirectionCorner
}

// DefaultDirection is top to bottom.
func DefaultDirection() Direction { return FromTo(CornerTop, CornerBottom) }

// AngleDirection returns a direction at angle a.
func AngleDirection(a AngleValue) Direction { return Direction{Kind: DirectionAngle, Angle: a} }

// FromTo returns the direction from corner from to corner to.
func FromTo(from, to DirectionCorner) Direction {
	return Direction{Kind: DirectionFromTo, From: from, To: to}
}

// ToPoints returns the start and end of the gradient line in the coordinate
// space of rect, with the origin at the rect's top-left corner.
//
// For an angle the line runs through the center of rect and its half-length
// is the projection of the center-to-corner vector onto the gradient
// direction, so the 0% and 100% stops land on the corners as in CSS.
// The points are rounded to whole pixels.
func (d Direction) ToPoints(rect geom.LogicalRect) (start, end geom.LogicalPoint) {
	if d.Kind == DirectionFromTo {
		return d.From.ToPoint(rect), d.To.ToPoint(rect)
	}
	const toRad = math32.Pi / 180
	deg := -d.Angle.ToDegrees()
	wh, hh := rect.Size.Width/2, rect.Size.Height/2
	hyp := math32.Hypot(wh, hh)
	var toCorner float32
	if wh != 0 {
		toCorner = math32.Atan(hh/wh) / toRad
	} else {
		toCorner = 90
	}
	var ending float32
	switch {
	case deg < 90:
		ending = 90 - toCorner
	case deg < 180:
		ending = 90 + toCorner
	case deg < 270:
		ending = 270 - toCorner
	default:
		ending = 270 + toCorner
	}
	length := math32.Abs(hyp * math32.Cos((ending-deg)*toRad))
	sin, cos := math32.Sincos(deg * toRad)
	dx, dy := sin*length, cos*length
	start = geom.Pt(math32.Round(wh+dx), math32.Round(hh+dy))
	end = geom.Pt(math32.Round(wh-dx), math32.Round(hh-dy))
	return start, end
}

func (d Direction) String() string {
	if d.Kind == DirectionAngle {
		return d.Angle.String()
	}
	return "from " + d.From.String() + " to " + d.To.String()
}

// MarshalText encodes d as an angle ("45deg") or "from <corner> to <corner>".
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText parses the output of MarshalText.
func (d *Direction) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if rest, ok := strings.CutPrefix(s, "from "); ok {
		from, to, found := strings.Cut(rest, " to ")
		if !found {
			return fmt.Errorf("style: invalid direction %q", s)
		}
		var f, t DirectionCorner
		if err := f.UnmarshalText([]byte(from)); err != nil {
			return err
		}
		if err := t.UnmarshalText([]byte(to)); err != nil {
			return err
		}
		*d = FromTo(f, t)
		return nil
	}
	var a AngleValue
	if err := a.UnmarshalText([]byte(s)); err != nil {
		return err
	}
	*d = AngleDirection(a)
	return nil
}

// Opposite returns the corner or side across the rect from c.
func (c DirectionCorner) Opposite() DirectionCorner {
	switch c {
	case CornerRight:
		return CornerLeft
	case CornerLeft:
		return CornerRight
	case CornerTop:
		return CornerBottom
	case CornerBottom:
		return CornerTop
	case CornerTopRight:
		return CornerBottomLeft
	case CornerBottomLeft:
		return CornerTopRight
	case CornerTopLeft:
		return CornerBottomRight
	default:
		return CornerTopLeft
	}
}

// Combine joins a horizontal and a vertical side into a corner. It returns
// false for any other pair.
func (c DirectionCorner) Combine(o DirectionCorner) (DirectionCorner, bool) {
	pair := func(a, b DirectionCorner) bool { return (c == a && o == b) || (c == b && o == a) }
	switch {
	case pair(CornerRight, CornerTop):
		return CornerTopRight, true
	case pair(CornerLeft, CornerTop):
		return CornerTopLeft, true
	case pair(CornerRight, CornerBottom):
		return CornerBottomRight, true
	case pair(CornerLeft, CornerBottom):
		return CornerBottomLeft, true
	}
	return 0, false
}

// ToPoint returns the point of rect that c names, relative to the rect origin.
// Sides resolve to the middle of that side.
func (c DirectionCorner) ToPoint(rect geom.LogicalRect) geom.LogicalPoint {
	w, h := rect.Size.Width, rect.Size.Height
	switch c {
	case CornerRight:
		return geom.Pt(w, math32.Floor(h/2))
	case CornerLeft:
		return geom.Pt(0, math32.Floor(h/2))
	case CornerTop:
		return geom.Pt(math32.Floor(w/2), 0)
	case CornerBottom:
		return geom.Pt(math32.Floor(w/2), h)
	case CornerTopRight:
		return geom.Pt(w, 0)
	case CornerBottomRight:
		return geom.Pt(w, h)
	case CornerBottomLeft:
		return geom.Pt(0, h)
	default:
		return geom.Pt(0, 0)
	}
}

// PositionKeyword selects a background-position keyword or an exact offset.
type PositionKeyword uint8

// Position keywords. The horizontal axis uses Start for left and End for
// right, the vertical one Start for top and End for bottom.
const (
	PositionStart PositionKeyword = iota
	PositionCenter
	PositionEnd
	PositionExact
)

// BackgroundPositionHorizontal is the horizontal component of a
// background-position.
type BackgroundPositionHorizontal struct {
	Keyword PositionKeyword
	Exact   PixelValue
}

// BackgroundPositionVertical is the vertical component of a background-position.
type BackgroundPositionVertical struct {
	Keyword PositionKeyword
	Exact   PixelValue
}

// Horizontal position constructors.
var (
	PositionLeft          = BackgroundPositionHorizontal{Keyword: PositionStart}
	PositionRight         = BackgroundPositionHorizontal{Keyword: PositionEnd}
	PositionCenterX       = BackgroundPositionHorizontal{Keyword: PositionCenter}
	PositionTop           = BackgroundPositionVertical{Keyword: PositionStart}
	PositionBottom        = BackgroundPositionVertical{Keyword: PositionEnd}
	PositionCenterY       = BackgroundPositionVertical{Keyword: PositionCenter}
	horizontalKeywordText = []string{PositionStart: "left", PositionCenter: "center", PositionEnd: "right"}
	verticalKeywordText   = []string{PositionStart: "top", PositionCenter: "center", PositionEnd: "bottom"}
)

// ExactX returns a horizontal offset of v.
func ExactX(v PixelValue) BackgroundPositionHorizontal {
	return BackgroundPositionHorizontal{Keyword: PositionExact, Exact: v}
}

// ExactY returns a vertical offset of v.
func ExactY(v PixelValue) BackgroundPositionVertical {
	return BackgroundPositionVertical{Keyword: PositionExact, Exact: v}
}

func (h BackgroundPositionHorizontal) String() string {
	if h.Keyword == PositionExact {
		return h.Exact.String()
	}
	return enumName(horizontalKeywordText, "position", uint8(h.Keyword))
}

// MarshalText encodes h as a keyword or a length.
func (h BackgroundPositionHorizontal) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// UnmarshalText parses a keyword or a length.
func (h *BackgroundPositionHorizontal) UnmarshalText(b []byte) error {
	k, v, err := parsePosition(horizontalKeywordText, string(b))
	*h = BackgroundPositionHorizontal{Keyword: k, Exact: v}
	return err
}

func (v BackgroundPositionVertical) String() string {
	if v.Keyword == PositionExact {
		return v.Exact.String()
	}
	return enumName(verticalKeywordText, "position", uint8(v.Keyword))
}

// MarshalText encodes v as a keyword or a length.
func (v BackgroundPositionVertical) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText parses a keyword or a length.
func (v *BackgroundPositionVertical) UnmarshalText(b []byte) error {
	k, p, err := parsePosition(verticalKeywordText, string(b))
	*v = BackgroundPositionVertical{Keyword: k, Exact: p}
	return err
}

func parsePosition(names []string, s string) (PositionKeyword, PixelValue, error) {
	if n, err := enumParse(names, "position", s); err == nil {
		return PositionKeyword(n), PixelValue{}, nil
	}
	p, err := ParsePixelValue(s)
	if err != nil {
		return 0, PixelValue{}, err
	}
	return PositionExact, p, nil
}

// StyleBackgroundPosition is a background-position. The zero value is
// left top.
type StyleBackgroundPosition struct {
	Horizontal BackgroundPositionHorizontal `yaml:"horizontal"`
	Vertical   BackgroundPositionVertical   `yaml:"vertical"`
}

// CenterPosition is "center center".
func CenterPosition() StyleBackgroundPosition {
	return StyleBackgroundPosition{Horizontal: PositionCenterX, Vertical: PositionCenterY}
}

// ScaleForDPI scales exact offsets.
func (p *StyleBackgroundPosition) ScaleForDPI(factor float32) {
	if p.Horizontal.Keyword == PositionExact {
		p.Horizontal.Exact.ScaleForDPI(factor)
	}
	if p.Vertical.Keyword == PositionExact {
		p.Vertical.Exact.ScaleForDPI(factor)
	}
}

// BackgroundSizeKind selects a background-size variant.
type BackgroundSizeKind uint8

// Background size kinds.
const (
	BackgroundSizeContain BackgroundSizeKind = iota
	BackgroundSizeCover
	BackgroundSizeExact
)

// StyleBackgroundSize is a background-size. The zero value is contain.
type StyleBackgroundSize struct {
	Kind  BackgroundSizeKind
	Exact [2]PixelValue
}

// Contain scales the content to fit the box.
func Contain() StyleBackgroundSize { return StyleBackgroundSize{Kind: BackgroundSizeContain} }

// Cover scales the content to fill the box.
func Cover() StyleBackgroundSize { return StyleBackgroundSize{Kind: BackgroundSizeCover} }

// ExactSize returns an explicit width and height.
func ExactSize(w, h PixelValue) StyleBackgroundSize {
	return StyleBackgroundSize{Kind: BackgroundSizeExact, Exact: [2]PixelValue{w, h}}
}

// Resolve computes the size of one background tile inside a box of size box.
// content is the intrinsic size of the content; without one the box is used.
//
// The content is scaled by a single ratio so its aspect ratio is kept.
// Contain uses the smaller of the two box/content ratios and Cover the
// larger. ExactSize resolves both lengths against the box and uses the
// smaller one as the ratio.
func (s StyleBackgroundSize) Resolve(box geom.LogicalSize, content *geom.LogicalSize) geom.LogicalSize {
	c := box
	if content != nil {
		c = *content
	}
	if c.Width == 0 || c.Height == 0 {
		return c
	}
	var ratio float32
	switch s.Kind {
	case BackgroundSizeExact:
		ratio = math32.Min(s.Exact[0].ToPixels(box.Width), s.Exact[1].ToPixels(box.Height))
	case BackgroundSizeCover:
		ratio = math32.Max(box.Width/c.Width, box.Height/c.Height)
	default:
		ratio = math32.Min(box.Width/c.Width, box.Height/c.Height)
	}
	return geom.Sz(c.Width*ratio, c.Height*ratio)
}

// ScaleForDPI scales exact lengths.
func (s *StyleBackgroundSize) ScaleForDPI(factor float32) {
	if s.Kind == BackgroundSizeExact {
		s.Exact[0].ScaleForDPI(factor)
		s.Exact[1].ScaleForDPI(factor)
	}
}

func (s StyleBackgroundSize) String() string {
	switch s.Kind {
	case BackgroundSizeContain:
		return "contain"
	case BackgroundSizeCover:
		return "cover"
	}
	return s.Exact[0].String() + " " + s.Exact[1].String()
}

// MarshalText encodes s as "contain", "cover" or "<w> <h>".
func (s StyleBackgroundSize) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText parses the output of MarshalText.
func (s *StyleBackgroundSize) UnmarshalText(b []byte) error {
	str := strings.TrimSpace(string(b))
	switch str {
	case "contain":
		*s = Contain()
		return nil
	case "cover":
		*s = Cover()
		return nil
	}
	w, h, ok := strings.Cut(str, " ")
	if !ok {
		return fmt.Errorf("style: invalid background size %q", str)
	}
	pw, err := ParsePixelValue(w)
	if err != nil {
		return err
	}
	ph, err := ParsePixelValue(h)
	if err != nil {
		return err
	}
	*s = ExactSize(pw, ph)
	return nil
}
