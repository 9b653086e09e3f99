// Package catalog contains the laws of the algebraic interfaces.
//
// Laws read their arguments by name. Function arguments must be algebra.Func values,
// filter predicates func(any) bool, reducers func(acc, x any) any,
// and the applicatives A and B of the traversable laws algebra.Applicative values.
package catalog

import (
	"lawcheck/algebra"
	"lawcheck/law"
	"lawcheck/value"
)

// Create the catalog of all laws.
//
// Each call returns a new catalog that can be modified by the caller.
func Default() law.Catalog {
	return law.Catalog{
		"functor":       Functor(),
		"alt":           Alt(),
		"plus":          Plus(),
		"apply":         Apply(),
		"applicative":   Applicative(),
		"chain":         Chain(),
		"alternative":   Alternative(),
		"monad":         Monad(),
		"extend":        Extend(),
		"comonad":       Comonad(),
		"bifunctor":     Bifunctor(),
		"profunctor":    Profunctor(),
		"foldable":      Foldable(),
		"traversable":   Traversable(),
		"semigroupoid":  Semigroupoid(),
		"category":      Category(),
		"contravariant": Contravariant(),
		"filterable":    Filterable(),
		"semigroup":     Semigroup(),
		"monoid":        Monoid(),
		"group":         Group(),
		"setoid":        Setoid(),
		"ord":           Ord(),
	}
}

var identity algebra.Func = func(x any) any { return x }

func compose(f, g algebra.Func) algebra.Func {
	return func(x any) any { return f(g(x)) }
}

// The function argument with the provided name.
func fn(args value.Values, name string) algebra.Func {
	return args[name].(algebra.Func)
}
