package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// ColorU is an sRGB color with straight alpha, 8 bits per channel.
type ColorU struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Transparent = ColorU{}
	Black       = ColorU{A: 255}
	White       = ColorU{R: 255, G: 255, B: 255, A: 255}
)

// RGBA returns a ColorU from its four channels.
func RGBA(r, g, b, a uint8) ColorU { return ColorU{R: r, G: g, B: b, A: a} }

// Interpolate blends c and o component-wise at t, rounding to nearest.
func (c ColorU) Interpolate(o ColorU, t float32) ColorU {
	lerp := func(a, b uint8) uint8 {
		v := float32(a) + (float32(b)-float32(a))*t
		return uint8(math32.Round(clamp(v, 0, 255)))
	}
	return ColorU{R: lerp(c.R, o.R), G: lerp(c.G, o.G), B: lerp(c.B, o.B), A: lerp(c.A, o.A)}
}

// ToColorF converts c to floating point channels in [0, 1].
func (c ColorU) ToColorF() ColorF {
	return ColorF{
		R: float32(c.R) / 255,
		G: float32(c.G) / 255,
		B: float32(c.B) / 255,
		A: float32(c.A) / 255,
	}
}

// Hex returns "#rrggbbaa".
func (c ColorU) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c ColorU) String() string { return c.Hex() }

// MarshalText encodes c as "#rrggbbaa".
func (c ColorU) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

// UnmarshalText parses "#rgb", "#rrggbb" or "#rrggbbaa".
func (c *ColorU) UnmarshalText(b []byte) error {
	v, err := ParseHexColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa". The leading "#" is optional.
func ParseHexColor(s string) (ColorU, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return ColorU{}, fmt.Errorf("style: invalid hex color %q", s)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return ColorU{}, fmt.Errorf("style: invalid hex color %q: %w", s, err)
	}
	return ColorU{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

// ColorF is a color with floating point channels in [0, 1].
type ColorF struct {
	R, G, B, A float32
}

// ToColorU converts f to 8-bit channels, clamping and rounding.
func (f ColorF) ToColorU() ColorU {
	ch := func(v float32) uint8 { return uint8(math32.Round(clamp(v, 0, 1) * 255)) }
	return ColorU{R: ch(f.R), G: ch(f.G), B: ch(f.B), A: ch(f.A)}
}

// Premultiplied returns f with the color channels multiplied by alpha.
func (f ColorF) Premultiplied() ColorF {
	return ColorF{R: f.R * f.A, G: f.G * f.A, B: f.B * f.A, A: f.A}
}

// ApplyGamma raises the color channels of c to 1/gamma and keeps alpha.
// Box shadows are emitted with a gamma of 2.2.
func ApplyGamma(c ColorU, gamma float32) ColorF {
	f := c.ToColorF()
	inv := 1 / gamma
	return ColorF{R: math32.Pow(f.R, inv), G: math32.Pow(f.G, inv), B: math32.Pow(f.B, inv), A: f.A}
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
