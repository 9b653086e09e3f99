package catalog_test

import (
	"errors"
	"testing"

	"lawcheck/algebra"
	"lawcheck/catalog"
	"lawcheck/checking"
	"lawcheck/compare"
	"lawcheck/value"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	inc    algebra.Func = func(x any) any { return x.(int) + 1 }
	double algebra.Func = func(x any) any { return x.(int) * 2 }
	neg    algebra.Func = func(x any) any { return -x.(int) }
	square algebra.Func = func(x any) any { return x.(int) * x.(int) }

	even     = func(x any) bool { return x.(int)%2 == 0 }
	positive = func(x any) bool { return x.(int) > 0 }

	// Returns [x, x+1]
	twice algebra.Func = func(x any) any { return []any{x, x.(int) + 1} }
	// Returns [] for odd x, [x] otherwise
	evens algebra.Func = func(x any) any {
		if x.(int)%2 != 0 {
			return []any{}
		}
		return []any{x}
	}
)

// Evaluate the laws of an interface for every set of arguments.
// Returns the results per law name.
func evaluate(t *testing.T, iface string, cfg checking.Config, argSets ...map[string]any) map[string][]checking.Result {
	t.Helper()
	tests, err := checking.Build(catalog.Default()[iface], cfg)
	require.NoError(t, err)
	results := map[string][]checking.Result{}
	for _, test := range tests {
		for _, args := range argSets {
			results[test.Name] = append(results[test.Name], test.Evaluate(value.ArgsOf(args)))
		}
	}
	return results
}

// Check that all laws of an interface pass for every set of arguments.
func lawful(t *testing.T, iface string, cfg checking.Config, argSets ...map[string]any) {
	t.Helper()
	for name, results := range evaluate(t, iface, cfg, argSets...) {
		for i, r := range results {
			if r != checking.Passed {
				t.Errorf("%v: Arguments %v: Expected the law to pass. Got: %v", name, i, r)
			}
		}
	}
}

// Check that the law fails for some set of arguments.
func violated(t *testing.T, iface string, law string, cfg checking.Config, argSets ...map[string]any) {
	t.Helper()
	results := evaluate(t, iface, cfg, argSets...)
	require.Contains(t, results, law)
	if !slices.Contains(results[law], checking.Failed) {
		t.Errorf("%v: Expected the law to be violated. Got: %v", law, results[law])
	}
}

var expectedNames = map[string][]string{
	"functor":       {"Functor: Identity", "Functor: Composition"},
	"alt":           {"Alt: Associativity", "Alt: Distributivity"},
	"plus":          {"Plus: Right identity", "Plus: Left identity", "Plus: Annihilation"},
	"apply":         {"Apply: Composition"},
	"applicative":   {"Applicative: Identity", "Applicative: Homomorphism", "Applicative: Interchange"},
	"chain":         {"Chain: Associativity"},
	"alternative":   {"Alternative: Distributivity", "Alternative: Annihilation"},
	"monad":         {"Monad: Left identity", "Monad: Right identity"},
	"extend":        {"Extend: Associativity"},
	"comonad":       {"Comonad: Left Identity", "Comonad: Right Identity"},
	"bifunctor":     {"Bifunctor: Identity", "Bifunctor: Composition"},
	"profunctor":    {"Profunctor: Identity", "Profunctor: Composition"},
	"foldable":      {"Foldable"},
	"traversable":   {"Traversable: Naturality precondition", "Traversable: Naturality", "Traversable: Identity", "Traversable: Composition"},
	"semigroupoid":  {"Semigroupoid: Associativity"},
	"category":      {"Category: Right identity", "Category: Left identity"},
	"contravariant": {"Contravariant: Identity", "Contravariant: Composition"},
	"filterable":    {"Filterable: Distributivity", "Filterable: Identity", "Filterable: Annihilation"},
	"semigroup":     {"Semigroup: Associativity"},
	"monoid":        {"Monoid: Right identity", "Monoid: Left identity"},
	"group":         {"Group: Right inverse", "Group: Left inverse"},
	"setoid":        {"Setoid: Reflexivity", "Setoid: Symmetry", "Setoid: Transitivity"},
	"ord":           {"Ord: Totality", "Ord: Antisymmetry", "Ord: Transitivity"},
}

func TestDefault(t *testing.T) {
	c := catalog.Default()
	keys := maps.Keys(c)
	expected := maps.Keys(expectedNames)
	slices.Sort(keys)
	slices.Sort(expected)
	require.Equal(t, expected, keys)
	for iface, laws := range c {
		names := []string{}
		for _, l := range laws {
			names = append(names, l.Name)
			require.NotNil(t, l.Evaluator, l.Name)
		}
		require.Equal(t, expectedNames[iface], names, iface)
	}
}

func TestDefaultReturnsNewCatalog(t *testing.T) {
	c := catalog.Default()
	delete(c, "functor")
	c["monoid"][0].Name = "Changed"
	d := catalog.Default()
	require.Contains(t, d, "functor")
	require.Equal(t, "Monoid: Right identity", d["monoid"][0].Name)
}

func TestListLaws(t *testing.T) {
	xs := []any{1, 2, 3}
	ys := []any{4}
	zs := []any{}
	fs := []any{inc, double}
	gs := []any{neg}
	cfg := checking.Config{T: list{}}

	lawful(t, "functor", cfg,
		map[string]any{"a": xs, "f": inc, "g": double},
		map[string]any{"a": zs, "f": inc, "g": double},
	)
	lawful(t, "alt", cfg, map[string]any{"a": xs, "b": ys, "c": zs, "f": square})
	lawful(t, "plus", cfg, map[string]any{"a": xs, "f": inc})
	lawful(t, "apply", cfg, map[string]any{"a": xs, "u": fs, "v": gs})
	lawful(t, "applicative", cfg,
		map[string]any{"a": xs, "f": inc, "x": 3, "u": fs},
		map[string]any{"a": zs, "f": double, "x": 0, "u": []any{}},
	)
	lawful(t, "chain", cfg, map[string]any{"f": twice, "g": evens, "u": xs})
	lawful(t, "alternative", cfg, map[string]any{"a": fs, "b": gs, "c": xs})
	lawful(t, "monad", cfg, map[string]any{"f": twice, "a": 5, "u": xs})
	lawful(t, "filterable", cfg, map[string]any{"a": []any{-2, -1, 0, 1, 2, 3, 4}, "b": xs, "f": even, "g": positive})
	lawful(t, "semigroup", cfg, map[string]any{"a": xs, "b": ys, "c": zs})
	lawful(t, "monoid", cfg, map[string]any{"a": xs})

	sum := func(acc, x any) any { return acc.(int) + x.(int) }
	minus := func(acc, x any) any { return acc.(int) - x.(int) }
	lawful(t, "foldable", cfg,
		map[string]any{"f": sum, "x": 10, "u": xs},
		map[string]any{"f": minus, "x": 0, "u": xs},
		map[string]any{"f": minus, "x": 0, "u": zs},
	)
}

func TestTraversableLaws(t *testing.T) {
	structural := []compare.Comparator{compare.Structural, compare.Structural, compare.Structural, compare.Structural}
	cfg := checking.Config{T: list{}, CompareEach: structural}
	lawful(t, "traversable", cfg,
		map[string]any{
			"A": list{}, "B": maybeApplicative{}, "f": head, "g": inc,
			"a": []any{1, 2},
			"u": []any{[]any{just(1), nothing}, []any{just(2)}},
		},
		map[string]any{
			"A": list{}, "B": maybeApplicative{}, "f": head, "g": double,
			"a": []any{},
			"u": []any{[]any{just(1), just(3)}, []any{just(2), just(4)}},
		},
	)
}

func TestTraversableRequiresComparatorPerLaw(t *testing.T) {
	_, err := checking.Flatten(
		checking.Synthesize(catalog.Default()),
		checking.Suite{{Interface: "traversable", Config: checking.Config{T: list{}, CompareEach: []compare.Comparator{compare.Structural}}}},
	)
	var arity *checking.ComparatorArityError
	require.True(t, errors.As(err, &arity))
	require.Equal(t, 4, arity.Laws)
}

func TestTraversableNaturalityPreconditionIgnoresImplementation(t *testing.T) {
	laws := catalog.Traversable()
	check, err := laws[0].Evaluator(nil)
	require.NoError(t, err)
	out := check(value.Values{"A": list{}, "B": maybeApplicative{}, "f": head, "g": inc, "a": []any{1}})
	require.Equal(t, just(2), out.Left)
	require.Equal(t, just(2), out.Right)
}

func TestGroupLaws(t *testing.T) {
	cfg := checking.Config{T: intSum{}}
	for _, a := range []int{-3, 0, 7} {
		lawful(t, "semigroup", cfg, map[string]any{"a": a, "b": 2, "c": -5})
		lawful(t, "monoid", cfg, map[string]any{"a": a})
		lawful(t, "group", cfg, map[string]any{"a": a})
		lawful(t, "setoid", cfg, map[string]any{"a": a, "b": a, "c": a}, map[string]any{"a": a, "b": 1, "c": 2})
		lawful(t, "ord", cfg, map[string]any{"a": a, "b": 1, "c": 2}, map[string]any{"a": a, "b": a, "c": a})
	}
}

func TestArrowLaws(t *testing.T) {
	for _, input := range []int{-2, 0, 5} {
		cfg := checking.Config{T: arrow{}, Input: value.Concrete{V: input}}
		lawful(t, "semigroupoid", cfg, map[string]any{"a": inc, "b": double, "c": square})
		lawful(t, "category", cfg, map[string]any{"a": square})
		lawful(t, "profunctor", cfg, map[string]any{"g": double, "f": inc, "h": neg, "i": square, "a": inc})
	}
}

func TestContravariantLaws(t *testing.T) {
	isEven := algebra.Func(func(x any) any { return x.(int)%2 == 0 })
	for _, input := range []int{-1, 0, 3} {
		cfg := checking.Config{T: predicate{}, Input: value.Concrete{V: input}}
		lawful(t, "contravariant", cfg, map[string]any{"a": isEven, "f": inc, "g": square})
	}
}

func TestBifunctorLaws(t *testing.T) {
	lawful(t, "bifunctor", checking.Config{T: pair{}},
		map[string]any{"a": [2]any{1, 2}, "f": inc, "g": double, "h": neg, "i": square},
	)
}

func TestComonadLaws(t *testing.T) {
	get := algebra.Func(func(w any) any { return w.(box).v.(int) + 1 })
	cfg := checking.Config{T: identityComonad{}}
	lawful(t, "extend", cfg, map[string]any{"f": get, "g": get, "w": box{3}})
	lawful(t, "comonad", cfg, map[string]any{"f": get, "w": box{3}})
}

// Map that applies the function twice
type brokenFunctor struct{ list }

func (b brokenFunctor) Map(f algebra.Func, u any) any {
	return b.list.Map(func(x any) any { return f(f(x)) }, u)
}

// Subtraction, which is not associative
type brokenSemigroup struct{}

func (brokenSemigroup) Concat(a, b any) any { return a.(int) - b.(int) }

// Filter that ignores the predicate
type brokenFilterable struct{}

func (brokenFilterable) Filter(p func(any) bool, u any) any { return u }

// Lte that is not total
type brokenOrd struct{ intSum }

func (brokenOrd) Lte(a, b any) bool { return a.(int) < b.(int) }

func TestViolations(t *testing.T) {
	xs := []any{1, 2, 3}
	violated(t, "functor", "Functor: Composition", checking.Config{T: brokenFunctor{}},
		map[string]any{"a": xs, "f": inc, "g": double})
	violated(t, "semigroup", "Semigroup: Associativity", checking.Config{T: brokenSemigroup{}},
		map[string]any{"a": 1, "b": 2, "c": 3})
	violated(t, "filterable", "Filterable: Annihilation", checking.Config{T: brokenFilterable{}},
		map[string]any{"a": xs, "b": []any{4}, "f": even, "g": positive})
	violated(t, "ord", "Ord: Totality", checking.Config{T: brokenOrd{}},
		map[string]any{"a": 1, "b": 1, "c": 1})
}

func TestMissingCapabilityIsReportedAtBuildTime(t *testing.T) {
	_, err := checking.Flatten(
		checking.Synthesize(catalog.Default()),
		checking.Suite{{Interface: "monad", Config: checking.Config{T: brokenSemigroup{}}}},
	)
	var missing *algebra.MissingCapabilityError
	require.True(t, errors.As(err, &missing))
	require.Equal(t, "Monad", missing.Capability)
}
