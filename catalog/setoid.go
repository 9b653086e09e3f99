package catalog

import (
	"lawcheck/algebra"
	"lawcheck/compare"
	"lawcheck/law"
	"lawcheck/value"
)

// The laws of equality.
//
// The sides are booleans compared with compare.Bool, never with the Equals under test.
func Setoid() []law.Law {
	return []law.Law{
		{
			Name: "Setoid: Reflexivity",
			Evaluator: law.For(func(T algebra.Setoid) law.Check {
				return func(args value.Values) law.Outcome {
					a := args["a"]
					return law.Outcome{Left: T.Equals(a, a), Right: true}
				}
			}),
			CompareWith: compare.Bool,
		},
		{
			Name: "Setoid: Symmetry",
			Evaluator: law.For(func(T algebra.Setoid) law.Check {
				return func(args value.Values) law.Outcome {
					a, b := args["a"], args["b"]
					return law.Outcome{Left: T.Equals(a, b) == T.Equals(b, a), Right: true}
				}
			}),
			CompareWith: compare.Bool,
		},
		{
			Name: "Setoid: Transitivity",
			Evaluator: law.For(func(T algebra.Setoid) law.Check {
				return func(args value.Values) law.Outcome {
					a, b, c := args["a"], args["b"], args["c"]
					left := T.Equals(a, b) && T.Equals(b, c)
					return law.Outcome{Left: left, Right: left && T.Equals(a, c)}
				}
			}),
			CompareWith: compare.Bool,
		},
	}
}

// The laws of a total order. Antisymmetry relies on the implementation's Equals.
func Ord() []law.Law {
	return []law.Law{
		{
			Name: "Ord: Totality",
			Evaluator: law.For(func(T algebra.Ord) law.Check {
				return func(args value.Values) law.Outcome {
					a, b := args["a"], args["b"]
					return law.Outcome{Left: T.Lte(a, b) || T.Lte(b, a), Right: true}
				}
			}),
			CompareWith: compare.Bool,
		},
		{
			Name: "Ord: Antisymmetry",
			Evaluator: law.For(func(T algebra.Ord) law.Check {
				return func(args value.Values) law.Outcome {
					a, b := args["a"], args["b"]
					return law.Outcome{Left: T.Lte(a, b) && T.Lte(b, a), Right: T.Equals(a, b)}
				}
			}),
			CompareWith: compare.Bool,
		},
		{
			Name: "Ord: Transitivity",
			Evaluator: law.For(func(T algebra.Ord) law.Check {
				return func(args value.Values) law.Outcome {
					a, b, c := args["a"], args["b"], args["c"]
					left := T.Lte(a, b) && T.Lte(b, c)
					return law.Outcome{Left: left, Right: left && T.Lte(a, c)}
				}
			}),
			CompareWith: compare.Bool,
		},
	}
}
