package style

// FilterKind names a filter function.
type FilterKind uint8

// Filter functions.
const (
	FilterBlend FilterKind = iota
	FilterFlood
	FilterBlur
	FilterOpacity
	FilterColorMatrix
	FilterDropShadow
	FilterComponentTransfer
	FilterOffset
	FilterComposite
)

var filterKindNames = []string{
	FilterBlend:             "blend",
	FilterFlood:             "flood",
	FilterBlur:              "blur",
	FilterOpacity:           "opacity",
	FilterColorMatrix:       "color-matrix",
	FilterDropShadow:        "drop-shadow",
	FilterComponentTransfer: "component-transfer",
	FilterOffset:            "offset",
	FilterComposite:         "composite",
}

func (k FilterKind) String() string { return enumName(filterKindNames, "filter", uint8(k)) }

// MarshalText encodes k as its name.
func (k FilterKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText parses a filter name.
func (k *FilterKind) UnmarshalText(b []byte) error {
	n, err := enumParse(filterKindNames, "filter", string(b))
	*k = FilterKind(n)
	return err
}

// CompositeOperator is the operator of a composite filter.
type CompositeOperator uint8

// Composite operators.
const (
	CompositeOver CompositeOperator = iota
	CompositeIn
	CompositeAtop
	CompositeOut
	CompositeXor
	CompositeLighter
	CompositeArithmetic
)

var compositeOperatorNames = []string{
	CompositeOver:       "over",
	CompositeIn:         "in",
	CompositeAtop:       "atop",
	CompositeOut:        "out",
	CompositeXor:        "xor",
	CompositeLighter:    "lighter",
	CompositeArithmetic: "arithmetic",
}

func (c CompositeOperator) String() string {
	return enumName(compositeOperatorNames, "composite operator", uint8(c))
}

// MarshalText encodes c as its name.
func (c CompositeOperator) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText parses an operator name.
func (c *CompositeOperator) UnmarshalText(b []byte) error {
	n, err := enumParse(compositeOperatorNames, "composite operator", string(b))
	*c = CompositeOperator(n)
	return err
}

// StyleFilter is one function of a filter or backdrop-filter list. Only the
// fields used by Kind are meaningful: Blend for blend, Color for flood,
// Lengths (width, height) for blur, Lengths (x, y) for offset, Opacity for
// opacity, Matrix for color-matrix, Shadow for drop-shadow, and Operator with
// Arithmetic for composite.
type StyleFilter struct {
	Kind       FilterKind        `yaml:"kind"`
	Blend      MixBlendMode      `yaml:"blend,omitempty"`
	Color      ColorU            `yaml:"color,omitempty"`
	Lengths    []PixelValue      `yaml:"lengths,omitempty"`
	Opacity    PercentageValue   `yaml:"opacity,omitempty"`
	Matrix     []FloatValue      `yaml:"matrix,omitempty"`
	Shadow     *StyleBoxShadow   `yaml:"shadow,omitempty"`
	Operator   CompositeOperator `yaml:"operator,omitempty"`
	Arithmetic []FloatValue      `yaml:"arithmetic,omitempty"`
}

// BlurFilter returns a blur with separate horizontal and vertical radii.
func BlurFilter(w, h PixelValue) StyleFilter {
	return StyleFilter{Kind: FilterBlur, Lengths: []PixelValue{w, h}}
}

// OpacityFilter returns an opacity filter.
func OpacityFilter(p PercentageValue) StyleFilter {
	return StyleFilter{Kind: FilterOpacity, Opacity: p}
}

// DropShadowFilter returns a drop-shadow.
func DropShadowFilter(s StyleBoxShadow) StyleFilter {
	return StyleFilter{Kind: FilterDropShadow, Shadow: &s}
}

// OffsetFilter returns an offset filter.
func OffsetFilter(x, y PixelValue) StyleFilter {
	return StyleFilter{Kind: FilterOffset, Lengths: []PixelValue{x, y}}
}

// ScaleForDPI scales blur radii, offsets and drop shadows.
func (f *StyleFilter) ScaleForDPI(factor float32) {
	if len(f.Lengths) > 0 {
		l := make([]PixelValue, len(f.Lengths))
		for i, v := range f.Lengths {
			v.ScaleForDPI(factor)
			l[i] = v
		}
		f.Lengths = l
	}
	if f.Shadow != nil {
		s := *f.Shadow
		s.ScaleForDPI(factor)
		f.Shadow = &s
	}
}
