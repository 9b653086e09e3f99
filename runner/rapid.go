package runner

import (
	"testing"

	"lawcheck/checking"
	"lawcheck/value"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"pgregory.net/rapid"
)

// Create a rapid generator of law arguments from one generator per argument name.
//
// A drawn func() any becomes a lazy value.
func RapidRecord(gens map[string]*rapid.Generator[any]) *rapid.Generator[value.Args] {
	names := maps.Keys(gens)
	slices.Sort(names)
	return rapid.Custom(func(t *rapid.T) value.Args {
		args := make(value.Args, len(names))
		for _, name := range names {
			args[name] = value.Of(gens[name].Draw(t, name))
		}
		return args
	})
}

// Convert a generator to a generator of untyped values, to be used with RapidRecord.
func Untyped[V any](g *rapid.Generator[V]) *rapid.Generator[any] {
	return rapid.Map(g, func(v V) any { return v })
}

// Create the rapid property of a test.
//
// The property fails when the law is violated and skips the arguments when the law abstains.
// Returns an UnsupportedSignatureError if the signature is not a *rapid.Generator[value.Args].
func RapidProperty(test checking.Test) (func(*rapid.T), error) {
	gen, ok := signature(test).(*rapid.Generator[value.Args])
	if !ok {
		return nil, &UnsupportedSignatureError{Test: test.Name, Signature: signature(test)}
	}
	return func(t *rapid.T) {
		args := gen.Draw(t, "args")
		switch test.Evaluate(args) {
		case checking.Failed:
			t.Fatalf("law %q does not hold", test.Name)
		case checking.Abstained:
			t.Skip("law does not apply to the arguments")
		}
	}, nil
}

// Check every test with rapid, each in its own subtest.
func CheckRapid(t *testing.T, tests []checking.Test) {
	t.Helper()
	for _, test := range tests {
		p, err := RapidProperty(test)
		if err != nil {
			t.Errorf("%v", err)
			continue
		}
		t.Run(test.Name, func(t *testing.T) {
			rapid.Check(t, p)
		})
	}
}
