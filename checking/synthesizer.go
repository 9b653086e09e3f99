package checking

import (
	"fmt"

	"lawcheck/law"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// The configuration of one interface in a Suite.
type Entry struct {
	Interface string
	Config    Config
}

// The interfaces to test, in the order their tests are produced.
type Suite []Entry

// Create a Suite from a map. The interfaces are ordered by name.
func SuiteOf(configs map[string]Config) Suite {
	names := maps.Keys(configs)
	slices.Sort(names)
	suite := make(Suite, 0, len(names))
	for _, name := range names {
		suite = append(suite, Entry{Interface: name, Config: configs[name]})
	}
	return suite
}

// Create a Builder for every interface in the catalog.
//
// The laws are copied, later changes to the catalog do not affect the builders.
func Synthesize(catalog law.Catalog) map[string]Builder {
	return mapValues(catalog, func(name string, laws []law.Law) Builder {
		laws = slices.Clone(laws)
		return func(cfg Config) ([]Test, error) {
			return build(name, laws, cfg)
		}
	})
}

// Create the tests of all interfaces in the suite.
//
// Tests are returned in the order of the suite, and in the order of the laws within an interface.
// Returns a MissingInterfaceError if the suite contains an interface without a builder.
// Errors from the builders are returned wrapped with the name of the interface.
func Flatten(builders map[string]Builder, suite Suite) ([]Test, error) {
	nested := make([][]Test, 0, len(suite))
	for _, entry := range suite {
		builder, ok := builders[entry.Interface]
		if !ok {
			return nil, &MissingInterfaceError{Interface: entry.Interface}
		}
		tests, err := builder(entry.Config)
		if err != nil {
			return nil, fmt.Errorf("checking: interface %q: %w", entry.Interface, err)
		}
		nested = append(nested, tests)
	}
	return flatten(nested), nil
}
