package checking

import (
	"fmt"
	"reflect"

	"lawcheck/algebra"
	"lawcheck/compare"
	"lawcheck/law"
	"lawcheck/value"
)

// Reports the outcome of one law evaluation.
//
// A predicate calls the verdict at most once. Not calling it means the evaluation abstained.
type Verdict func(ok bool)

// The evaluated law together with what is needed to judge it.
type Evaluation struct {
	Left  any
	Right any
	// The comparator selected for the law.
	CompareWith compare.Comparator
	// Optional. When set, Left and Right are functions that must be applied to the input before comparing.
	Input value.Value
}

// A strategy turning an Evaluation into a verdict.
//
// The returned function is called once per evaluation and reports to the verdict it was created with.
type PredicateFactory func(verdict Verdict) func(e Evaluation)

// The default predicate.
//
// Compares Left and Right with the selected comparator.
// If an input is configured, Left and Right are applied to the resolved input first.
// Abstains if either side, after application, is undefined.
func DefaultPredicate(verdict Verdict) func(e Evaluation) {
	return func(e Evaluation) {
		left, right := e.Left, e.Right
		if law.IsUndefined(left) || law.IsUndefined(right) {
			return
		}
		if e.Input != nil {
			input := e.Input.Resolve()
			left = apply(left, input)
			right = apply(right, input)
		}
		if law.IsUndefined(left) || law.IsUndefined(right) {
			return
		}
		verdict(e.CompareWith(left, right))
	}
}

var funcType = reflect.TypeOf(algebra.Func(nil))

// Apply a side of a law to the input.
//
// The side must be an algebra.Func or a named function type with the same signature.
// Panics with a descriptive message otherwise.
func apply(side any, input any) any {
	if f, ok := side.(algebra.Func); ok {
		return f(input)
	}
	v := reflect.ValueOf(side)
	if !v.IsValid() || !v.Type().ConvertibleTo(funcType) || v.IsNil() {
		panic(fmt.Sprintf("checking: a side of a law can not be applied to the input, %T is not a func(any) any", side))
	}
	return v.Convert(funcType).Interface().(algebra.Func)(input)
}

// Invert the verdicts of a predicate.
//
// Useful to assert that a deliberately broken implementation is detected.
// Abstentions stay abstentions.
func Inverted(p PredicateFactory) PredicateFactory {
	return func(verdict Verdict) func(e Evaluation) {
		return p(func(ok bool) { verdict(!ok) })
	}
}

// Turn abstentions of a predicate into failures.
func Strict(p PredicateFactory) PredicateFactory {
	return func(verdict Verdict) func(e Evaluation) {
		return func(e Evaluation) {
			reported := false
			p(func(ok bool) {
				reported = true
				verdict(ok)
			})(e)
			if !reported {
				verdict(false)
			}
		}
	}
}
