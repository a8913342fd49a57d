package style

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// AngleMetric is the unit of an AngleValue.
type AngleMetric uint8

// Angle metrics.
const (
	AngleDegree AngleMetric = iota
	AngleRadians
	AngleGrad
	AngleTurn
	AnglePercent
)

var angleMetricSuffix = [...]string{
	AngleDegree:  "deg",
	AngleRadians: "rad",
	AngleGrad:    "grad",
	AngleTurn:    "turn",
	AnglePercent: "%",
}

func (m AngleMetric) String() string {
	if int(m) < len(angleMetricSuffix) {
		return angleMetricSuffix[m]
	}
	return fmt.Sprintf("AngleMetric(%d)", m)
}

// AngleValue is an angle with a unit.
type AngleValue struct {
	Metric AngleMetric
	Number FloatValue
}

// Deg returns an angle of v degrees.
func Deg(v float32) AngleValue { return AngleValue{Metric: AngleDegree, Number: Float(v)} }

// Rad returns an angle of v radians.
func Rad(v float32) AngleValue { return AngleValue{Metric: AngleRadians, Number: Float(v)} }

// Grad returns an angle of v gradians.
func Grad(v float32) AngleValue { return AngleValue{Metric: AngleGrad, Number: Float(v)} }

// Turn returns an angle of v full turns.
func Turn(v float32) AngleValue { return AngleValue{Metric: AngleTurn, Number: Float(v)} }

// AnglePct returns an angle of v percent of a full turn.
func AnglePct(v float32) AngleValue { return AngleValue{Metric: AnglePercent, Number: Float(v)} }

// Degrees converts a to degrees without wrapping, so 360deg and 100% stay
// 360.
func (a AngleValue) Degrees() float32 {
	v := a.Number.Get()
	switch a.Metric {
	case AngleRadians:
		v = v * 180 / math32.Pi
	case AngleGrad:
		v = v / 400 * 360
	case AngleTurn:
		v *= 360
	case AnglePercent:
		v = v / 100 * 360
	}
	return v
}

// ToDegrees converts a to degrees wrapped into [0, 360), so 410deg is 50deg
// and -90deg is 270deg.
func (a AngleValue) ToDegrees() float32 {
	v := math32.Mod(a.Degrees(), 360)
	if v < 0 {
		v += 360
	}
	// -0.0001 mod 360 + 360 rounds to 360 in f32.
	if v >= 360 {
		v = 0
	}
	return v
}

// Interpolate blends a and o at t. Mixed units are blended in degrees.
func (a AngleValue) Interpolate(o AngleValue, t float32) AngleValue {
	if a.Metric == o.Metric {
		return AngleValue{Metric: a.Metric, Number: a.Number.Interpolate(o.Number, t)}
	}
	x, y := a.ToDegrees(), o.ToDegrees()
	return Deg(x + (y-x)*t)
}

func (a AngleValue) String() string { return a.Number.String() + a.Metric.String() }

// MarshalText encodes a as "<number><unit>".
func (a AngleValue) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText parses "<number><unit>". A bare number is read as degrees.
func (a *AngleValue) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	// "grad" ends in "rad", so it is matched first.
	for _, m := range []AngleMetric{AngleGrad, AngleRadians, AngleTurn, AnglePercent, AngleDegree} {
		if num, ok := strings.CutSuffix(s, m.String()); ok {
			v, err := parseNumber(num)
			if err != nil {
				return err
			}
			*a = AngleValue{Metric: m, Number: Float(v)}
			return nil
		}
	}
	v, err := parseNumber(s)
	if err != nil {
		return err
	}
	*a = Deg(v)
	return nil
}
