// Package algebra defines the capabilities an implementation can provide.
//
// Every algebraic interface is a Go interface over untyped values. An implementation is
// any Go value; it supports an algebraic interface if it implements the matching Go interface.
// Laws bind to an implementation through Require, which reports a missing capability
// before any law is evaluated.
package algebra

// A unary function over untyped values.
type Func = func(any) any

type Setoid interface {
	Equals(a, b any) bool
}

type Ord interface {
	Setoid
	Lte(a, b any) bool
}

type Semigroup interface {
	Concat(a, b any) any
}

type Monoid interface {
	Semigroup
	Empty() any
}

type Group interface {
	Monoid
	Invert(a any) any
}

type Functor interface {
	Map(f Func, u any) any
}

type Alt interface {
	Functor
	Alt(a, b any) any
}

type Plus interface {
	Alt
	Zero() any
}

type Apply interface {
	Functor
	// Apply the functions held by fs to the values held by u.
	Ap(fs, u any) any
}

type Applicative interface {
	Apply
	Of(a any) any
}

type Alternative interface {
	Applicative
	Plus
}

type Chain interface {
	Apply
	Chain(f Func, u any) any
}

type Monad interface {
	Applicative
	Chain
}

type Extend interface {
	Functor
	Extend(f Func, w any) any
}

type Comonad interface {
	Extend
	Extract(w any) any
}

type Bifunctor interface {
	Bimap(f, g Func, u any) any
}

type Profunctor interface {
	Promap(f, g Func, p any) any
}

type Foldable interface {
	Reduce(f func(acc, x any) any, init, u any) any
}

type Traversable interface {
	Functor
	Foldable
	// Traverse u with f, collecting the effects in the applicative a.
	Traverse(a Applicative, f Func, u any) any
}

type Semigroupoid interface {
	Compose(a, b any) any
}

type Category interface {
	Semigroupoid
	Id() any
}

type Contravariant interface {
	Contramap(f Func, u any) any
}

type Filterable interface {
	Filter(p func(any) bool, u any) any
}
