package value

import "fmt"

// A generated argument.
//
// Property runners may hand over either the value itself or a producer of the value
// that has not been evaluated yet. Value is a closed union of the two cases: Concrete and Lazy.
type Value interface {
	// Return the underlying value, invoking the producer if the value is lazy.
	Resolve() any

	// noop method restricting the implementations to this package
	value()
}

// A value that is already available.
type Concrete struct {
	V any
}

func (c Concrete) Resolve() any { return c.V }

func (c Concrete) String() string { return fmt.Sprint(c.V) }

func (Concrete) value() {}

// A value produced on demand by calling F.
// F is called once each time the value is resolved.
type Lazy struct {
	F func() any
}

func (l Lazy) Resolve() any { return l.F() }

func (Lazy) String() string { return "lazy" }

func (Lazy) value() {}

// Wrap v as a Value.
//
// A func() any is treated as a producer and becomes Lazy. A Value is returned unchanged.
// Everything else becomes Concrete.
func Of(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case func() any:
		return Lazy{F: t}
	default:
		return Concrete{V: v}
	}
}

// The generated arguments of one law evaluation, keyed by argument name.
type Args map[string]Value

// The resolved arguments handed to a law evaluator.
type Values map[string]any

// Create Args from plain values. See Of for how each value is wrapped.
func ArgsOf(values map[string]any) Args {
	args := make(Args, len(values))
	for name, v := range values {
		args[name] = Of(v)
	}
	return args
}

// Resolve all arguments.
//
// Returns a new map with the same keys where every Lazy value has been invoked exactly once
// and replaced by its result. Concrete values pass through unchanged. The input is not modified.
// A panic raised by a producer is not recovered.
func Resolve(args Args) Values {
	out := make(Values, len(args))
	for name, v := range args {
		if v == nil {
			out[name] = nil
			continue
		}
		out[name] = v.Resolve()
	}
	return out
}
