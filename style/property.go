package style

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/compositor/geom"
)

type propertyDescriptor struct {
	key         string
	flags       uint8
	valueType   string
	holds       func(v any) bool
	interpolate func(a, b any, t float32, r InterpolateResolver) any
	scale       func(v any, factor float32) any
	decode      func(n *yaml.Node) (any, error)
}

type interpolateFunc[T any] func(a, b CssPropertyValue[T], t float32, r InterpolateResolver) CssPropertyValue[T]

func describe[T any](key string, flags uint8, interp interpolateFunc[T], scale func(T, float32) T) propertyDescriptor {
	var zero T
	d := propertyDescriptor{
		key:       key,
		flags:     flags,
		valueType: fmt.Sprintf("%T", zero),
		holds: func(v any) bool {
			_, ok := v.(CssPropertyValue[T])
			return ok
		},
		decode: func(n *yaml.Node) (any, error) {
			var v CssPropertyValue[T]
			err := n.Decode(&v)
			return v, err
		},
	}
	if interp != nil {
		d.interpolate = func(a, b any, t float32, r InterpolateResolver) any {
			return interp(a.(CssPropertyValue[T]), b.(CssPropertyValue[T]), t, r)
		}
	}
	if scale != nil {
		d.scale = func(v any, factor float32) any {
			return Map(v.(CssPropertyValue[T]), func(x T) T { return scale(x, factor) })
		}
	}
	return d
}

// lerp interpolates exact values; keywords interpolate from the zero value.
func lerp[T any](f func(T, T, float32) T) interpolateFunc[T] {
	return func(a, b CssPropertyValue[T], t float32, _ InterpolateResolver) CssPropertyValue[T] {
		return Exact(f(a.GetOrDefault(), b.GetOrDefault(), t))
	}
}

// lerpFromRect is lerp with a non-exact start taken from the resolver.
func lerpFromRect[T any](f func(T, T, float32) T, start func(InterpolateResolver) T) interpolateFunc[T] {
	return func(a, b CssPropertyValue[T], t float32, r InterpolateResolver) CssPropertyValue[T] {
		return Exact(f(a.GetOr(start(r)), b.GetOrDefault(), t))
	}
}

func currentWidth(r InterpolateResolver) PixelValue  { return Px(r.CurrentRect.Width) }
func currentHeight(r InterpolateResolver) PixelValue { return Px(r.CurrentRect.Height) }

func scaleValue[T any](fn func(*T, float32)) func(T, float32) T {
	return func(v T, factor float32) T {
		fn(&v, factor)
		return v
	}
}

func scaleSlice[T any](fn func(*T, float32)) func([]T, float32) []T {
	return func(s []T, factor float32) []T {
		if s == nil {
			return nil
		}
		out := make([]T, len(s))
		for i, v := range s {
			fn(&v, factor)
			out[i] = v
		}
		return out
	}
}

// Key returns the CSS name of the property, such as "border-top-width".
func (t CssPropertyType) Key() string {
	if t >= propertyTypeCount {
		return fmt.Sprintf("CssPropertyType(%d)", t)
	}
	return propertyTable[t].key
}

func (t CssPropertyType) String() string { return t.Key() }

// IsInheritable reports whether the property inherits during cascading.
func (t CssPropertyType) IsInheritable() bool {
	return t < propertyTypeCount && propertyTable[t].flags&flagInheritable != 0
}

// CanTriggerRelayout reports whether changing the property can change layout.
func (t CssPropertyType) CanTriggerRelayout() bool {
	return t < propertyTypeCount && propertyTable[t].flags&flagRelayout != 0
}

// IsGPUOnly reports whether the property is applied by the compositor alone,
// without re-rendering content. Only opacity and transform are.
func (t CssPropertyType) IsGPUOnly() bool {
	return t < propertyTypeCount && propertyTable[t].flags&flagGPUOnly != 0
}

// IsAnimatable reports whether the property interpolates smoothly.
func (t CssPropertyType) IsAnimatable() bool {
	return t < propertyTypeCount && propertyTable[t].interpolate != nil
}

// ParsePropertyType finds a property by its CSS name.
func ParsePropertyType(key string) (CssPropertyType, bool) {
	key = strings.TrimSpace(key)
	for i := range propertyTable {
		if propertyTable[i].key == key {
			return CssPropertyType(i), true
		}
	}
	return 0, false
}

// PropertyTypes returns every property type in declaration order.
func PropertyTypes() []CssPropertyType {
	out := make([]CssPropertyType, propertyTypeCount)
	for i := range out {
		out[i] = CssPropertyType(i)
	}
	return out
}

// InterpolateResolver carries what Interpolate needs beyond the two values.
type InterpolateResolver struct {
	Easing      AnimationInterpolationFunction
	ParentRect  geom.LogicalSize
	CurrentRect geom.LogicalSize
}

// CssProperty is one property and its value. The zero CssProperty is not
// valid; build one with NewProperty.
type CssProperty struct {
	typ   CssPropertyType
	value any
}

// NewProperty returns the property t holding v. It panics if T is not the
// value type of t, which is a programming error.
func NewProperty[T any](t CssPropertyType, v CssPropertyValue[T]) CssProperty {
	if t >= propertyTypeCount {
		panic(fmt.Sprintf("style: unknown property type %d", t))
	}
	if !propertyTable[t].holds(v) {
		var zero T
		panic(fmt.Sprintf("style: property %s holds %s, not %T", t, propertyTable[t].valueType, zero))
	}
	return CssProperty{typ: t, value: v}
}

// ValueOf returns the value of p if p holds values of type T.
func ValueOf[T any](p CssProperty) (CssPropertyValue[T], bool) {
	v, ok := p.value.(CssPropertyValue[T])
	return v, ok
}

// Type returns the property type.
func (p CssProperty) Type() CssPropertyType { return p.typ }

// Value returns the CssPropertyValue held by p.
func (p CssProperty) Value() any { return p.value }

// Interpolate returns the value between p (t = 0) and o (t = 1). t is mapped
// through r.Easing first. Properties without an interpolation rule, or pairs
// of different properties, switch from p to o past t = 0.5.
func (p CssProperty) Interpolate(o CssProperty, t float32, r InterpolateResolver) CssProperty {
	if t <= 0 {
		return p
	}
	if t >= 1 {
		return o
	}
	eased := clamp(r.Easing.Evaluate(t), 0, 1)
	if p.typ != o.typ || p.typ >= propertyTypeCount || propertyTable[p.typ].interpolate == nil {
		if eased > 0.5 {
			return o
		}
		return p
	}
	return CssProperty{typ: p.typ, value: propertyTable[p.typ].interpolate(p.value, o.value, eased, r)}
}

// ScaleForDPI multiplies every absolute length in p by factor. Percentages
// and non-length properties are unchanged. Applying a factor of 1 is the
// identity.
func (p *CssProperty) ScaleForDPI(factor float32) {
	if p.typ >= propertyTypeCount || propertyTable[p.typ].scale == nil {
		return
	}
	p.value = propertyTable[p.typ].scale(p.value, factor)
}

func (p CssProperty) String() string {
	return fmt.Sprintf("%s: %v;", p.typ.Key(), p.value)
}
