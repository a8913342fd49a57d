// Package style is the style value model consumed by the display-list
// translator.
//
// Numbers are stored quantized (FloatValue keeps value*1000 as an int64) so
// every value is comparable and usable as a map key, and small rounding noise
// does not make two equal styles compare unequal. PixelValue and AngleValue add
// a unit on top of that storage.
//
// Every property is wrapped in a CssPropertyValue, which is either an Exact
// value or one of the cascade keywords auto, none, initial and inherit.
// CssProperty is the closed union of all properties. Its variants are listed
// once in a descriptor table (see CssPropertyType), and interpolation, DPI
// scaling and encoding dispatch through that table.
//
// # Interpolation
//
// Animatable properties interpolate linearly after t has been mapped through
// an easing curve:
//
//	a := style.NewProperty(style.PropertyWidth, style.Exact(style.Px(100)))
//	b := style.NewProperty(style.PropertyWidth, style.Exact(style.Px(200)))
//	mid := a.Interpolate(b, 0.5, style.InterpolateResolver{Easing: style.EaseLinear()})
//
// Properties without an interpolation rule switch from a to b at t = 0.5.
package style
