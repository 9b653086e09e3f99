package catalog

import (
	"lawcheck/algebra"
	"lawcheck/law"
	"lawcheck/value"
)

func Semigroupoid() []law.Law {
	return []law.Law{
		{
			Name: "Semigroupoid: Associativity",
			Evaluator: law.For(func(T algebra.Semigroupoid) law.Check {
				return func(args value.Values) law.Outcome {
					a, b, c := args["a"], args["b"], args["c"]
					return law.Outcome{
						Left:  T.Compose(T.Compose(a, b), c),
						Right: T.Compose(a, T.Compose(b, c)),
					}
				}
			}),
		},
	}
}

func Category() []law.Law {
	return []law.Law{
		{
			Name: "Category: Right identity",
			Evaluator: law.For(func(T algebra.Category) law.Check {
				return func(args value.Values) law.Outcome {
					a := args["a"]
					return law.Outcome{Left: T.Compose(a, T.Id()), Right: a}
				}
			}),
		},
		{
			Name: "Category: Left identity",
			Evaluator: law.For(func(T algebra.Category) law.Check {
				return func(args value.Values) law.Outcome {
					a := args["a"]
					return law.Outcome{Left: T.Compose(T.Id(), a), Right: a}
				}
			}),
		},
	}
}

func Semigroup() []law.Law {
	return []law.Law{
		{
			Name: "Semigroup: Associativity",
			Evaluator: law.For(func(T algebra.Semigroup) law.Check {
				return func(args value.Values) law.Outcome {
					a, b, c := args["a"], args["b"], args["c"]
					return law.Outcome{
						Left:  T.Concat(T.Concat(a, b), c),
						Right: T.Concat(a, T.Concat(b, c)),
					}
				}
			}),
		},
	}
}

func Monoid() []law.Law {
	return []law.Law{
		{
			Name: "Monoid: Right identity",
			Evaluator: law.For(func(T algebra.Monoid) law.Check {
				return func(args value.Values) law.Outcome {
					a := args["a"]
					return law.Outcome{Left: T.Concat(a, T.Empty()), Right: a}
				}
			}),
		},
		{
			Name: "Monoid: Left identity",
			Evaluator: law.For(func(T algebra.Monoid) law.Check {
				return func(args value.Values) law.Outcome {
					a := args["a"]
					return law.Outcome{Left: T.Concat(T.Empty(), a), Right: a}
				}
			}),
		},
	}
}

func Group() []law.Law {
	return []law.Law{
		{
			Name: "Group: Right inverse",
			Evaluator: law.For(func(T algebra.Group) law.Check {
				return func(args value.Values) law.Outcome {
					a := args["a"]
					return law.Outcome{Left: T.Concat(a, T.Invert(a)), Right: T.Empty()}
				}
			}),
		},
		{
			Name: "Group: Left inverse",
			Evaluator: law.For(func(T algebra.Group) law.Check {
				return func(args value.Values) law.Outcome {
					a := args["a"]
					return law.Outcome{Left: T.Concat(T.Invert(a), a), Right: T.Empty()}
				}
			}),
		},
	}
}
