package catalog_test

import (
	"lawcheck/algebra"
)

// Slices of untyped values. Empty results are always non-nil so that they compare equal.
type list struct{}

func (list) Map(f algebra.Func, u any) any {
	out := make([]any, 0, len(u.([]any)))
	for _, x := range u.([]any) {
		out = append(out, f(x))
	}
	return out
}

func (list) Ap(fs, u any) any {
	out := make([]any, 0)
	for _, f := range fs.([]any) {
		for _, x := range u.([]any) {
			out = append(out, f.(algebra.Func)(x))
		}
	}
	return out
}

func (list) Of(a any) any { return []any{a} }

func (list) Chain(f algebra.Func, u any) any {
	out := make([]any, 0)
	for _, x := range u.([]any) {
		out = append(out, f(x).([]any)...)
	}
	return out
}

func (l list) Alt(a, b any) any { return l.Concat(a, b) }

func (list) Zero() any { return []any{} }

func (list) Concat(a, b any) any {
	out := make([]any, 0, len(a.([]any))+len(b.([]any)))
	out = append(out, a.([]any)...)
	return append(out, b.([]any)...)
}

func (list) Empty() any { return []any{} }

func (list) Reduce(f func(acc, x any) any, init, u any) any {
	acc := init
	for _, x := range u.([]any) {
		acc = f(acc, x)
	}
	return acc
}

func (list) Filter(p func(any) bool, u any) any {
	out := make([]any, 0)
	for _, x := range u.([]any) {
		if p(x) {
			out = append(out, x)
		}
	}
	return out
}

func (list) Traverse(a algebra.Applicative, f algebra.Func, u any) any {
	acc := a.Of([]any{})
	for _, x := range u.([]any) {
		appendTo := func(xs any) any {
			return algebra.Func(func(y any) any {
				out := make([]any, 0, len(xs.([]any))+1)
				out = append(out, xs.([]any)...)
				return append(out, y)
			})
		}
		acc = a.Ap(a.Map(appendTo, acc), f(x))
	}
	return acc
}

// An optional value.
type maybe struct {
	ok bool
	v  any
}

func just(v any) maybe { return maybe{ok: true, v: v} }

var nothing = maybe{}

type maybeApplicative struct{}

func (maybeApplicative) Map(f algebra.Func, u any) any {
	m := u.(maybe)
	if !m.ok {
		return nothing
	}
	return just(f(m.v))
}

func (maybeApplicative) Ap(fs, u any) any {
	f, m := fs.(maybe), u.(maybe)
	if !f.ok || !m.ok {
		return nothing
	}
	return just(f.v.(algebra.Func)(m.v))
}

func (maybeApplicative) Of(a any) any { return just(a) }

// The first element of a list, a natural transformation from list to maybe.
var head algebra.Func = func(u any) any {
	xs := u.([]any)
	if len(xs) == 0 {
		return nothing
	}
	return just(xs[0])
}

// Integers under addition.
type intSum struct{}

func (intSum) Concat(a, b any) any { return a.(int) + b.(int) }
func (intSum) Empty() any          { return 0 }
func (intSum) Invert(a any) any    { return -a.(int) }
func (intSum) Equals(a, b any) bool {
	return a.(int) == b.(int)
}
func (intSum) Lte(a, b any) bool { return a.(int) <= b.(int) }

// Functions from int to int, composed right to left.
type arrow struct{}

func (arrow) Compose(a, b any) any {
	f, g := a.(algebra.Func), b.(algebra.Func)
	return algebra.Func(func(x any) any { return f(g(x)) })
}

func (arrow) Id() any { return algebra.Func(func(x any) any { return x }) }

func (arrow) Promap(f, g algebra.Func, p any) any {
	h := p.(algebra.Func)
	return algebra.Func(func(x any) any { return g(h(f(x))) })
}

// Pairs of values.
type pair struct{}

func (pair) Bimap(f, g algebra.Func, u any) any {
	p := u.([2]any)
	return [2]any{f(p[0]), g(p[1])}
}

// Predicates, contravariant in their input.
type predicate struct{}

func (predicate) Contramap(f algebra.Func, u any) any {
	p := u.(algebra.Func)
	return algebra.Func(func(x any) any { return p(f(x)) })
}

// A value in a box, the identity comonad.
type box struct{ v any }

type identityComonad struct{}

func (identityComonad) Map(f algebra.Func, u any) any { return box{f(u.(box).v)} }
func (identityComonad) Extend(f algebra.Func, w any) any {
	return box{f(w)}
}
func (identityComonad) Extract(w any) any { return w.(box).v }
