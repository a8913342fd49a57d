package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// precisionMultiplier is the quantization factor of FloatValue:
// 1.00001 and 1.0 are stored identically.
const precisionMultiplier = 1000

// FloatValue is an f32 quantized to three decimal places.
// The zero value is 0.
type FloatValue struct {
	Number int64
}

// Float returns v quantized to the nearest 1/1000.
func Float(v float32) FloatValue {
	return FloatValue{Number: int64(math32.Round(v * precisionMultiplier))}
}

// FloatInt returns the whole number v without any rounding.
func FloatInt(v int64) FloatValue {
	return FloatValue{Number: v * precisionMultiplier}
}

// Get returns the stored value as f32.
func (f FloatValue) Get() float32 {
	return float32(f.Number) / precisionMultiplier
}

// Interpolate returns the linear blend of f and o at t.
func (f FloatValue) Interpolate(o FloatValue, t float32) FloatValue {
	a, b := f.Get(), o.Get()
	return Float(a + (b-a)*t)
}

func (f FloatValue) String() string {
	return strconv.FormatFloat(float64(f.Get()), 'f', -1, 32)
}

// MarshalText encodes f as a decimal number.
func (f FloatValue) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText parses a decimal number.
func (f *FloatValue) UnmarshalText(b []byte) error {
	v, err := parseNumber(string(b))
	if err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// PercentageValue is a percentage: the stored 50 means 50%.
type PercentageValue struct {
	Number FloatValue
}

// Percent returns a PercentageValue of v percent.
func Percent(v float32) PercentageValue {
	return PercentageValue{Number: Float(v)}
}

// Normalized returns the percentage as a fraction, so 50% is 0.5.
func (p PercentageValue) Normalized() float32 {
	return p.Number.Get() / 100
}

// Interpolate returns the linear blend of p and o at t.
func (p PercentageValue) Interpolate(o PercentageValue, t float32) PercentageValue {
	return PercentageValue{Number: p.Number.Interpolate(o.Number, t)}
}

func (p PercentageValue) String() string { return p.Number.String() + "%" }

// MarshalText encodes p as "<number>%".
func (p PercentageValue) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses "<number>%" or a bare number.
func (p *PercentageValue) UnmarshalText(b []byte) error {
	s := strings.TrimSuffix(strings.TrimSpace(string(b)), "%")
	v, err := parseNumber(s)
	if err != nil {
		return err
	}
	*p = Percent(v)
	return nil
}

func parseNumber(s string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, fmt.Errorf("style: invalid number %q: %w", s, err)
	}
	return float32(v), nil
}
