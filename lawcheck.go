// Package lawcheck synthesizes property tests from the laws of algebraic interfaces.
//
// A suite names the interfaces an implementation claims to satisfy:
//
//	tests, err := lawcheck.Tests(
//		lawcheck.Interface("semigroup", concat{}, signature),
//		lawcheck.Interface("monoid", concat{}, signature),
//	)
//
// Every law of every interface becomes one checking.Test. The tests can be checked with a runner:
//
//	report, err := lawcheck.PrepareRunner(lawcheck.Seed(42)).Run(tests)
package lawcheck

import (
	"log"

	"lawcheck/catalog"
	"lawcheck/checking"
	"lawcheck/law"
)

var builders = checking.Synthesize(catalog.Default())

// Create the tests of the interfaces in the suite using the default catalog.
//
// Tests are returned in the order of the entries, and in the order of the laws within an interface.
// Returns a checking.MissingInterfaceError if an entry names an interface that is not in the catalog.
// Returns an algebra.MissingCapabilityError if an implementation lacks an operation used by a law of its interface.
func Tests(entries ...checking.Entry) ([]checking.Test, error) {
	return checking.Flatten(builders, entries)
}

// Create the tests of the interfaces in the suite using the provided catalog.
func TestsFrom(c law.Catalog, entries ...checking.Entry) ([]checking.Test, error) {
	return checking.Flatten(checking.Synthesize(c), entries)
}

// Create the tests of the interfaces in the suite using the default catalog.
//
// Panics if the tests can not be created.
func MustTests(entries ...checking.Entry) []checking.Test {
	tests, err := Tests(entries...)
	if err != nil {
		log.Panicf("Unable to create the tests of the suite: %v", err)
	}
	return tests
}
