// Package compare provides the comparators used to decide whether the two sides of a law agree.
package compare

import "reflect"

// A Comparator returns true if the left and right result of a law are considered equal.
//
// A comparator must be total over the values it is given and deterministic.
type Comparator func(left, right any) bool

// Return the first comparator that is not nil.
//
// The candidates are given in priority order. Returns nil if all candidates are nil.
func First(candidates ...Comparator) Comparator {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

// Structural equality.
//
// Used when neither the law, the configuration nor the implementation provides a comparator.
func Structural(left, right any) bool {
	return reflect.DeepEqual(left, right)
}

// Equality of boolean results.
//
// Used by laws that check an implementation's own equality or ordering,
// so that the result does not depend on the operation under test.
// Returns false if either side is not a bool.
func Bool(left, right any) bool {
	l, ok := left.(bool)
	if !ok {
		return false
	}
	r, ok := right.(bool)
	if !ok {
		return false
	}
	return l == r
}

// Lift a typed equality into a Comparator.
//
// Returns false if either side does not have type T.
func Typed[T any](eq func(a, b T) bool) Comparator {
	return func(left, right any) bool {
		l, ok := left.(T)
		if !ok {
			return false
		}
		r, ok := right.(T)
		if !ok {
			return false
		}
		return eq(l, r)
	}
}
