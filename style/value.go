package style

import "fmt"

// ValueState says whether a CssPropertyValue carries data or a cascade keyword.
type ValueState uint8

// Value states. Only StateExact carries a value.
const (
	StateExact ValueState = iota
	StateAuto
	StateNone
	StateInitial
	StateInherit
)

var valueStateNames = [...]string{
	StateExact:   "exact",
	StateAuto:    "auto",
	StateNone:    "none",
	StateInitial: "initial",
	StateInherit: "inherit",
}

func (s ValueState) String() string {
	if int(s) < len(valueStateNames) {
		return valueStateNames[s]
	}
	return fmt.Sprintf("ValueState(%d)", s)
}

func parseValueState(s string) (ValueState, bool) {
	for i, n := range valueStateNames {
		if i != int(StateExact) && n == s {
			return ValueState(i), true
		}
	}
	return 0, false
}

// CssPropertyValue is a property value of type T or a cascade keyword.
type CssPropertyValue[T any] struct {
	State ValueState
	Value T
}

// Exact wraps v.
func Exact[T any](v T) CssPropertyValue[T] {
	return CssPropertyValue[T]{State: StateExact, Value: v}
}

// Auto returns the auto keyword.
func Auto[T any]() CssPropertyValue[T] { return CssPropertyValue[T]{State: StateAuto} }

// None returns the none keyword.
func None[T any]() CssPropertyValue[T] { return CssPropertyValue[T]{State: StateNone} }

// Initial returns the initial keyword.
func Initial[T any]() CssPropertyValue[T] { return CssPropertyValue[T]{State: StateInitial} }

// Inherit returns the inherit keyword.
func Inherit[T any]() CssPropertyValue[T] { return CssPropertyValue[T]{State: StateInherit} }

// Get returns the exact value and true, or the zero T and false for keywords.
func (v CssPropertyValue[T]) Get() (T, bool) {
	if v.State != StateExact {
		var zero T
		return zero, false
	}
	return v.Value, true
}

// GetOrDefault returns the exact value, or the zero value of T for keywords.
func (v CssPropertyValue[T]) GetOrDefault() T {
	out, _ := v.Get()
	return out
}

// GetOr returns the exact value, or d for keywords.
func (v CssPropertyValue[T]) GetOr(d T) T {
	if out, ok := v.Get(); ok {
		return out
	}
	return d
}

// IsExact reports whether v carries a value.
func (v CssPropertyValue[T]) IsExact() bool { return v.State == StateExact }

// Map converts the exact value of v to another type. Keywords are preserved.
func Map[T, U any](v CssPropertyValue[T], f func(T) U) CssPropertyValue[U] {
	if v.State != StateExact {
		return CssPropertyValue[U]{State: v.State}
	}
	return Exact(f(v.Value))
}

func (v CssPropertyValue[T]) String() string {
	if v.State != StateExact {
		return v.State.String()
	}
	return fmt.Sprint(v.Value)
}

// Ptr returns a pointer to v, for optional fields.
func Ptr[T any](v T) *T { return &v }
