package lawcheck

import (
	"lawcheck/checking"
	"lawcheck/compare"
	"lawcheck/config"
	"lawcheck/value"
)

// A option used to configure the tests of an interface
type SuiteOption interface {
	// noop method
	SuiteOpt()
}

// Configure the tests of one interface.
//
// name is the name of the interface in the catalog, e.g. "functor".
// impl is the implementation under test. It must implement the capability of every law of the interface,
// e.g. algebra.Functor for "functor".
// signature describes how the runner generates arguments, e.g. a gopter.Gen created with runner.Record.
func Interface(name string, impl any, signature any, opts ...SuiteOption) checking.Entry {
	cfg := checking.Config{
		T:         impl,
		Signature: signature,
	}
	for _, opt := range opts {
		switch t := opt.(type) {
		case config.CompareWithOption:
			cfg.CompareWith = t.Cmp
		case config.CompareEachOption:
			cfg.CompareEach = t.Cmps
		case config.InputOption:
			cfg.Input = t.Input
		case config.PredicateOption:
			cfg.Predicate = t.Predicate
		}
	}
	return checking.Entry{Interface: name, Config: cfg}
}

// Compare the sides of the laws with cmp.
//
// Laws that define their own comparator keep it.
// Default value is the implementation's Equals, or structural equality if it has none.
func CompareWith(cmp compare.Comparator) SuiteOption {
	return config.CompareWithOption{Cmp: cmp}
}

// Compare the sides of each law with its own comparator.
//
// The comparators are paired with the laws by position, and must be as many as the laws of the interface.
// A nil comparator keeps the law's own comparator, if any, and otherwise falls back to the implementation's Equals or structural equality.
// Can not be combined with CompareWith.
func CompareEach(cmps ...compare.Comparator) SuiteOption {
	return config.CompareEachOption{Cmps: append([]compare.Comparator{}, cmps...)}
}

// Apply both sides of every law to input before comparing them.
//
// Used for implementations whose values are functions, e.g. a category of functions.
// Both sides must be func(any) any, possibly under a named type.
// A func() any is called to produce the input each time a law is evaluated.
func WithInput(input any) SuiteOption {
	return config.InputOption{Input: value.Of(input)}
}

// Replace the default predicate strategy.
func WithPredicate(p checking.PredicateFactory) SuiteOption {
	return config.PredicateOption{Predicate: p}
}
