package style

import (
	"fmt"
	"strings"
)

// Unit conversion factors, all at 96 DPI.
const (
	PtToPx   = 96.0 / 72.0
	EmHeight = 16.0
	InToPx   = 96.0
	CmToPx   = 96.0 / 2.54
	MmToPx   = 96.0 / 25.4
)

// SizeMetric is the unit of a PixelValue.
type SizeMetric uint8

// Size metrics.
const (
	MetricPx SizeMetric = iota
	MetricPt
	MetricEm
	MetricIn
	MetricCm
	MetricMm
	MetricPercent
)

var sizeMetricSuffix = [...]string{
	MetricPx:      "px",
	MetricPt:      "pt",
	MetricEm:      "em",
	MetricIn:      "in",
	MetricCm:      "cm",
	MetricMm:      "mm",
	MetricPercent: "%",
}

func (m SizeMetric) String() string {
	if int(m) < len(sizeMetricSuffix) {
		return sizeMetricSuffix[m]
	}
	return fmt.Sprintf("SizeMetric(%d)", m)
}

// PixelValue is a length with a unit.
type PixelValue struct {
	Metric SizeMetric
	Number FloatValue
}

// Px returns a length of v pixels.
func Px(v float32) PixelValue { return PixelValue{Metric: MetricPx, Number: Float(v)} }

// Pt returns a length of v points.
func Pt(v float32) PixelValue { return PixelValue{Metric: MetricPt, Number: Float(v)} }

// Em returns a length of v em.
func Em(v float32) PixelValue { return PixelValue{Metric: MetricEm, Number: Float(v)} }

// Inch returns a length of v inches.
func Inch(v float32) PixelValue { return PixelValue{Metric: MetricIn, Number: Float(v)} }

// Cm returns a length of v centimeters.
func Cm(v float32) PixelValue { return PixelValue{Metric: MetricCm, Number: Float(v)} }

// Mm returns a length of v millimeters.
func Mm(v float32) PixelValue { return PixelValue{Metric: MetricMm, Number: Float(v)} }

// Pct returns a length of v percent of a reference size.
func Pct(v float32) PixelValue { return PixelValue{Metric: MetricPercent, Number: Float(v)} }

// FromMetric returns a length of v in unit m.
func FromMetric(m SizeMetric, v float32) PixelValue {
	return PixelValue{Metric: m, Number: Float(v)}
}

// ToPixelsNoPercent resolves absolute units to pixels. It returns false for
// percentages, which need a reference size.
func (p PixelValue) ToPixelsNoPercent() (float32, bool) {
	v := p.Number.Get()
	switch p.Metric {
	case MetricPx:
		return v, true
	case MetricPt:
		return v * PtToPx, true
	case MetricEm:
		return v * EmHeight, true
	case MetricIn:
		return v * InToPx, true
	case MetricCm:
		return v * CmToPx, true
	case MetricMm:
		return v * MmToPx, true
	}
	return 0, false
}

// ToPixels resolves p to pixels. Percentages resolve against percentBase;
// every other unit ignores it.
func (p PixelValue) ToPixels(percentBase float32) float32 {
	if p.Metric == MetricPercent {
		return p.Number.Get() / 100 * percentBase
	}
	v, _ := p.ToPixelsNoPercent()
	return v
}

// Interpolate blends p and o at t. Values with different units are resolved
// to pixels first and the result is in pixels.
func (p PixelValue) Interpolate(o PixelValue, t float32) PixelValue {
	if p.Metric == o.Metric {
		return PixelValue{Metric: p.Metric, Number: p.Number.Interpolate(o.Number, t)}
	}
	a, b := p.ToPixels(0), o.ToPixels(0)
	return Px(a + (b-a)*t)
}

// ScaleForDPI multiplies absolute lengths by factor. Percentages are relative
// and stay unchanged.
func (p *PixelValue) ScaleForDPI(factor float32) {
	if p.Metric == MetricPercent {
		return
	}
	p.Number = Float(p.Number.Get() * factor)
}

// IsZero reports whether the number is zero, whatever the unit.
func (p PixelValue) IsZero() bool { return p.Number.Number == 0 }

func (p PixelValue) String() string { return p.Number.String() + p.Metric.String() }

// MarshalText encodes p as "<number><unit>", for example "12.5px".
func (p PixelValue) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText parses "<number><unit>". A bare number is read as pixels.
func (p *PixelValue) UnmarshalText(b []byte) error {
	v, err := ParsePixelValue(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePixelValue parses a length such as "10px", "1.5em" or "50%".
func ParsePixelValue(s string) (PixelValue, error) {
	s = strings.TrimSpace(s)
	for m := MetricPt; m <= MetricPercent; m++ {
		if num, ok := strings.CutSuffix(s, m.String()); ok {
			v, err := parseNumber(num)
			if err != nil {
				return PixelValue{}, err
			}
			return FromMetric(m, v), nil
		}
	}
	v, err := parseNumber(strings.TrimSuffix(s, "px"))
	if err != nil {
		return PixelValue{}, err
	}
	return Px(v), nil
}

// PixelValueNoPercent is a PixelValue that never holds a percentage.
type PixelValueNoPercent struct {
	Inner PixelValue
}

// NoPercent wraps p. Percentages collapse to 0px.
func NoPercent(p PixelValue) PixelValueNoPercent {
	if p.Metric == MetricPercent {
		return PixelValueNoPercent{Inner: Px(0)}
	}
	return PixelValueNoPercent{Inner: p}
}

// ToPixels resolves the length to pixels.
func (p PixelValueNoPercent) ToPixels() float32 { return p.Inner.ToPixels(0) }

// ScaleForDPI scales the wrapped length.
func (p *PixelValueNoPercent) ScaleForDPI(factor float32) { p.Inner.ScaleForDPI(factor) }

// Interpolate blends p and o at t.
func (p PixelValueNoPercent) Interpolate(o PixelValueNoPercent, t float32) PixelValueNoPercent {
	return PixelValueNoPercent{Inner: p.Inner.Interpolate(o.Inner, t)}
}

func (p PixelValueNoPercent) String() string { return p.Inner.String() }

// MarshalText encodes the wrapped length.
func (p PixelValueNoPercent) MarshalText() ([]byte, error) { return p.Inner.MarshalText() }

// UnmarshalText parses a length, rejecting percentages.
func (p *PixelValueNoPercent) UnmarshalText(b []byte) error {
	v, err := ParsePixelValue(string(b))
	if err != nil {
		return err
	}
	if v.Metric == MetricPercent {
		return fmt.Errorf("style: percentage not allowed in %q", b)
	}
	p.Inner = v
	return nil
}
