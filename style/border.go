package style

// StyleBorderRadius holds the four corner radii of a box. A nil corner was
// never specified.
type StyleBorderRadius struct {
	TopLeft     *CssPropertyValue[PixelValue] `yaml:"top-left,omitempty"`
	TopRight    *CssPropertyValue[PixelValue] `yaml:"top-right,omitempty"`
	BottomLeft  *CssPropertyValue[PixelValue] `yaml:"bottom-left,omitempty"`
	BottomRight *CssPropertyValue[PixelValue] `yaml:"bottom-right,omitempty"`
}

// UniformRadius returns a radius of v on every corner.
func UniformRadius(v PixelValue) StyleBorderRadius {
	c := Exact(v)
	return StyleBorderRadius{TopLeft: &c, TopRight: Ptr(c), BottomLeft: Ptr(c), BottomRight: Ptr(c)}
}

// IsNone reports whether no corner is set.
func (r StyleBorderRadius) IsNone() bool {
	return r.TopLeft == nil && r.TopRight == nil && r.BottomLeft == nil && r.BottomRight == nil
}

// ScaleForDPI scales every exact corner.
func (r *StyleBorderRadius) ScaleForDPI(factor float32) {
	for _, c := range []**CssPropertyValue[PixelValue]{&r.TopLeft, &r.TopRight, &r.BottomLeft, &r.BottomRight} {
		if *c != nil && (*c).IsExact() {
			v := **c
			v.Value.ScaleForDPI(factor)
			*c = &v
		}
	}
}

// StyleBoxShadow is one box-shadow (or text-shadow) layer.
type StyleBoxShadow struct {
	Offset       [2]PixelValueNoPercent `yaml:"offset"`
	Color        ColorU                 `yaml:"color"`
	BlurRadius   PixelValueNoPercent    `yaml:"blur"`
	SpreadRadius PixelValueNoPercent    `yaml:"spread"`
	ClipMode     BoxShadowClipMode      `yaml:"clip"`
}

// ScaleForDPI scales the offset, blur and spread.
func (s *StyleBoxShadow) ScaleForDPI(factor float32) {
	s.Offset[0].ScaleForDPI(factor)
	s.Offset[1].ScaleForDPI(factor)
	s.BlurRadius.ScaleForDPI(factor)
	s.SpreadRadius.ScaleForDPI(factor)
}

// Interpolate blends every component of s and o at t. The clip mode switches
// at t = 0.5.
func (s StyleBoxShadow) Interpolate(o StyleBoxShadow, t float32) StyleBoxShadow {
	out := StyleBoxShadow{
		Offset:       [2]PixelValueNoPercent{s.Offset[0].Interpolate(o.Offset[0], t), s.Offset[1].Interpolate(o.Offset[1], t)},
		Color:        s.Color.Interpolate(o.Color, t),
		BlurRadius:   s.BlurRadius.Interpolate(o.BlurRadius, t),
		SpreadRadius: s.SpreadRadius.Interpolate(o.SpreadRadius, t),
		ClipMode:     s.ClipMode,
	}
	if t > 0.5 {
		out.ClipMode = o.ClipMode
	}
	return out
}

// ScrollbarInfo styles one scrollbar.
type ScrollbarInfo struct {
	Width        PixelValue             `yaml:"width"`
	PaddingLeft  PixelValue             `yaml:"padding-left"`
	PaddingRight PixelValue             `yaml:"padding-right"`
	Track        StyleBackgroundContent `yaml:"track"`
	Thumb        StyleBackgroundContent `yaml:"thumb"`
	Button       StyleBackgroundContent `yaml:"button"`
	Corner       StyleBackgroundContent `yaml:"corner"`
	Resizer      StyleBackgroundContent `yaml:"resizer"`
}

// DefaultScrollbarInfo is a 17px gray scrollbar.
func DefaultScrollbarInfo() ScrollbarInfo {
	return ScrollbarInfo{
		Width:        Px(17),
		PaddingLeft:  Px(2),
		PaddingRight: Px(2),
		Track:        ColorBackground(RGBA(241, 241, 241, 255)),
		Thumb:        ColorBackground(RGBA(193, 193, 193, 255)),
		Button:       ColorBackground(RGBA(163, 163, 163, 255)),
		Corner:       ColorBackground(Transparent),
		Resizer:      ColorBackground(Transparent),
	}
}

// ScaleForDPI scales the width and paddings.
func (s *ScrollbarInfo) ScaleForDPI(factor float32) {
	s.Width.ScaleForDPI(factor)
	s.PaddingLeft.ScaleForDPI(factor)
	s.PaddingRight.ScaleForDPI(factor)
}

// ScrollbarStyle styles both scrollbars of a scroll container.
type ScrollbarStyle struct {
	Horizontal ScrollbarInfo `yaml:"horizontal"`
	Vertical   ScrollbarInfo `yaml:"vertical"`
}

// DefaultScrollbarStyle uses DefaultScrollbarInfo for both bars.
func DefaultScrollbarStyle() ScrollbarStyle {
	return ScrollbarStyle{Horizontal: DefaultScrollbarInfo(), Vertical: DefaultScrollbarInfo()}
}

// ScaleForDPI scales both bars.
func (s *ScrollbarStyle) ScaleForDPI(factor float32) {
	s.Horizontal.ScaleForDPI(factor)
	s.Vertical.ScaleForDPI(factor)
}
