package checking

import "lawcheck/value"

// A runnable check of one law, ready to be handed to a property runner.
type Test struct {
	Name string
	// Bind the verdict callback, then evaluate the law for one set of generated arguments.
	Predicate func(verdict Verdict) func(args value.Args)
	// Describes how the runner generates arguments. Always holds one element, the configured signature.
	Signature []any
}

// The outcome of one evaluation of a Test.
type Result int

const (
	Abstained Result = iota
	Passed
	Failed
)

func (r Result) String() string {
	switch r {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	default:
		return "abstained"
	}
}

// Evaluate the test once for the provided arguments.
func (t Test) Evaluate(args value.Args) Result {
	result := Abstained
	t.Predicate(func(ok bool) {
		if ok {
			result = Passed
		} else {
			result = Failed
		}
	})(args)
	return result
}
