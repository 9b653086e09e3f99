package catalog

import (
	"lawcheck/algebra"
	"lawcheck/law"
	"lawcheck/value"
)

func Foldable() []law.Law {
	collect := func(acc, x any) any {
		return append(acc.([]any), x)
	}
	return []law.Law{
		{
			Name: "Foldable",
			Evaluator: law.For(func(T algebra.Foldable) law.Check {
				return func(args value.Values) law.Outcome {
					f, x, u := args["f"].(func(acc, x any) any), args["x"], args["u"]
					left := x
					for _, element := range T.Reduce(collect, []any{}, u).([]any) {
						left = f(left, element)
					}
					return law.Outcome{Left: left, Right: T.Reduce(f, x, u)}
				}
			}),
		},
	}
}

// The laws of a traversable.
//
// A and B are applicatives and f is a natural transformation from A to B.
// The four laws need different notions of equality, so the traversable must be configured
// with one comparator per law. The first law checks that f is natural and does not use the implementation.
func Traversable() []law.Law {
	return []law.Law{
		{
			// a: A<a>
			Name: "Traversable: Naturality precondition",
			Evaluator: law.Ignoring(func(args value.Values) law.Outcome {
				A, B := applicative(args, "A"), applicative(args, "B")
				f, g, a := fn(args, "f"), fn(args, "g"), args["a"]
				return law.Outcome{
					Left:  B.Map(g, f(a)),
					Right: f(A.Map(g, a)),
				}
			}),
		},
		{
			// u: T<A<a>>
			Name: "Traversable: Naturality",
			Evaluator: law.For(func(T algebra.Traversable) law.Check {
				return func(args value.Values) law.Outcome {
					A, B := applicative(args, "A"), applicative(args, "B")
					f, u := fn(args, "f"), args["u"]
					return law.Outcome{
						Left:  f(T.Traverse(A, identity, u)),
						Right: T.Traverse(B, f, u),
					}
				}
			}),
		},
		{
			// u: T<a>
			Name: "Traversable: Identity",
			Evaluator: law.For(func(T algebra.Traversable) law.Check {
				return func(args value.Values) law.Outcome {
					B, u := applicative(args, "B"), args["u"]
					return law.Outcome{
						Left:  T.Traverse(B, B.Of, u),
						Right: B.Of(u),
					}
				}
			}),
		},
		{
			// u: T<A<B<a>>>
			Name: "Traversable: Composition",
			Evaluator: law.For(func(T algebra.Traversable) law.Check {
				return func(args value.Values) law.Outcome {
					A, B, u := applicative(args, "A"), applicative(args, "B"), args["u"]
					// Traversing with A turns u into A<T<B<a>>>, each T<B<a>> is then traversed with B
					return law.Outcome{
						Left: T.Traverse(composed{outer: A, inner: B}, identity, u),
						Right: A.Map(func(v any) any {
							return T.Traverse(B, identity, v)
						}, T.Traverse(A, identity, u)),
					}
				}
			}),
		},
	}
}

func applicative(args value.Values, name string) algebra.Applicative {
	return args[name].(algebra.Applicative)
}

// The applicative of outer values holding inner values.
type composed struct {
	outer algebra.Applicative
	inner algebra.Applicative
}

func (c composed) Of(x any) any {
	return c.outer.Of(c.inner.Of(x))
}

func (c composed) Map(f algebra.Func, u any) any {
	return c.outer.Map(func(b any) any {
		return c.inner.Map(f, b)
	}, u)
}

func (c composed) Ap(fs, u any) any {
	return c.outer.Ap(c.outer.Map(func(b1 any) any {
		return algebra.Func(func(b2 any) any {
			return c.inner.Ap(b1, b2)
		})
	}, fs), u)
}
