package runner

import (
	"fmt"

	"lawcheck/value"

	"github.com/leanovate/gopter"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Create a generator of law arguments from one generator per argument name.
//
// A generated func() any becomes a lazy value that is resolved when the law is evaluated.
// Generated arguments are not shrunk.
func Record(gens map[string]gopter.Gen) gopter.Gen {
	names := maps.Keys(gens)
	slices.Sort(names)
	ordered := make([]gopter.Gen, 0, len(names))
	for _, name := range names {
		ordered = append(ordered, gens[name].WithLabel(name))
	}
	return gopter.CombineGens(ordered...).Map(func(values []interface{}) value.Args {
		args := make(value.Args, len(names))
		for i, name := range names {
			args[name] = value.Of(values[i])
		}
		return args
	})
}

// Convert a generated value to law arguments.
func toArgs(v any) (value.Args, error) {
	switch t := v.(type) {
	case value.Args:
		return t, nil
	case map[string]value.Value:
		return value.Args(t), nil
	case map[string]any:
		return value.ArgsOf(t), nil
	default:
		return nil, fmt.Errorf("runner: generated %T, expected law arguments", v)
	}
}
