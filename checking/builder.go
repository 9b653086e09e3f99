package checking

import (
	"fmt"

	"lawcheck/algebra"
	"lawcheck/compare"
	"lawcheck/law"
	"lawcheck/value"
)

// The configuration of the tests for one interface.
type Config struct {
	// The implementation under test.
	T any
	// How arguments are generated. Passed through to the runner.
	Signature any
	// Optional. Used for every law that does not define its own comparator.
	CompareWith compare.Comparator
	// Optional. One comparator per law, in the order of the laws.
	// Each entry replaces the comparator of the law at the same position.
	// A nil entry keeps the law's own comparator.
	// Can not be combined with CompareWith.
	CompareEach []compare.Comparator
	// Optional. A probe applied to both sides of every law before they are compared.
	Input value.Value
	// Optional. Replaces DefaultPredicate.
	Predicate PredicateFactory
}

// Creates the tests of one interface from a configuration.
type Builder func(cfg Config) ([]Test, error)

// Create one test per law.
//
// The tests are returned in the order of laws.
// Returns an error if the configuration is inconsistent with the laws,
// or if the implementation lacks a capability used by some law.
func Build(laws []law.Law, cfg Config) ([]Test, error) {
	return build("", laws, cfg)
}

func build(name string, laws []law.Law, cfg Config) ([]Test, error) {
	if cfg.CompareWith != nil && cfg.CompareEach != nil {
		return nil, ComparatorConflictError
	}

	predicate := cfg.Predicate
	if predicate == nil {
		predicate = DefaultPredicate
	}

	// Pair every law with the comparator at the same position
	if cfg.CompareEach != nil {
		if len(cfg.CompareEach) != len(laws) {
			return nil, &ComparatorArityError{
				Interface:   name,
				Laws:        len(laws),
				Comparators: len(cfg.CompareEach),
			}
		}
		laws = zipWith(laws, cfg.CompareEach, func(l law.Law, c compare.Comparator) law.Law {
			l.CompareWith = compare.First(c, l.CompareWith)
			return l
		})
	}

	var equals compare.Comparator
	if s, ok := cfg.T.(algebra.Setoid); ok {
		equals = s.Equals
	}

	tests := make([]Test, 0, len(laws))
	for _, l := range laws {
		check, err := l.Evaluator(cfg.T)
		if err != nil {
			return nil, fmt.Errorf("checking: %v: %w", l.Name, err)
		}
		cmp := compare.First(l.CompareWith, cfg.CompareWith, equals, compare.Structural)
		tests = append(tests, Test{
			Name:      l.Name,
			Predicate: prepare(predicate, check, cmp, cfg.Input),
			Signature: []any{cfg.Signature},
		})
	}
	return tests, nil
}

// Create the predicate of a test.
//
// Resolves the generated arguments, evaluates the law and hands the result to the predicate strategy.
func prepare(predicate PredicateFactory, check law.Check, cmp compare.Comparator, input value.Value) func(Verdict) func(value.Args) {
	return func(verdict Verdict) func(value.Args) {
		strategy := predicate(verdict)
		return func(args value.Args) {
			out := check(value.Resolve(args))
			strategy(Evaluation{
				Left:        out.Left,
				Right:       out.Right,
				CompareWith: cmp,
				Input:       input,
			})
		}
	}
}
