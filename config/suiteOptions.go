package config

import (
	"lawcheck/checking"
	"lawcheck/compare"
	"lawcheck/value"
)

// Configures a comparator shared by all laws of an interface

// Laws that define their own comparator keep it.
// Default value is the implementation's Equals, or structural equality if it has none.
type CompareWithOption struct {
	Cmp compare.Comparator
}

func (o CompareWithOption) SuiteOpt() {}

// Configures one comparator per law

// The comparators are paired with the laws by position and replace the laws' own comparators.
// Can not be combined with CompareWithOption.
type CompareEachOption struct {
	Cmps []compare.Comparator
}

func (o CompareEachOption) SuiteOpt() {}

// Configures an input that both sides of every law are applied to before they are compared
type InputOption struct {
	Input value.Value
}

func (o InputOption) SuiteOpt() {}

// Configures the predicate strategy

// Default value is checking.DefaultPredicate
type PredicateOption struct {
	Predicate checking.PredicateFactory
}

func (o PredicateOption) SuiteOpt() {}
