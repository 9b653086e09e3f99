// Package law defines the shape of a law and of a catalog of laws.
package law

import (
	"lawcheck/algebra"
	"lawcheck/compare"
	"lawcheck/value"
)

// The two sides of a law's equation, evaluated for one set of arguments.
type Outcome struct {
	Left  any
	Right any
}

// Evaluate both sides of a law for the resolved arguments.
type Check func(args value.Values) Outcome

// Bind a law to an implementation.
//
// Returns an error if the implementation does not provide the operations the law uses.
type Evaluator func(impl any) (Check, error)

// A named law of an algebraic interface.
type Law struct {
	Name      string
	Evaluator Evaluator
	// Optional. Overrides every other comparator when set.
	CompareWith compare.Comparator
}

// Maps the interface name to the laws of the interface, in the order they are reported.
type Catalog map[string][]Law

// Create an Evaluator for laws over the capability C.
//
// The implementation is checked for C when the evaluator is bound, not when the law is evaluated.
func For[C any](check func(impl C) Check) Evaluator {
	return func(impl any) (Check, error) {
		c, err := algebra.Require[C](impl)
		if err != nil {
			return nil, err
		}
		return check(c), nil
	}
}

// Create an Evaluator that does not use the implementation.
func Ignoring(check Check) Evaluator {
	return func(any) (Check, error) {
		return check, nil
	}
}

type undefined struct{}

func (undefined) String() string { return "undefined" }

// Marks a side of a law that does not apply to the generated arguments.
//
// A law that returns Undefined for either side is neither passed nor failed.
var Undefined any = undefined{}

// Returns true if v is Undefined.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// An outcome for arguments the law does not apply to.
func NotApplicable() Outcome {
	return Outcome{Left: Undefined, Right: Undefined}
}
