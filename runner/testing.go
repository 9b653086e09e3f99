package runner

import (
	"testing"

	"lawcheck/checking"

	"github.com/leanovate/gopter"
)

// Check the tests as gopter properties of a Go test.
//
// The results are reported on the console. Fails t if some law does not hold.
// If parameters is nil default parameters are used.
func TestingRun(t *testing.T, tests []checking.Test, parameters *gopter.TestParameters) {
	t.Helper()
	properties := gopter.NewProperties(parameters)
	for _, test := range tests {
		p, err := Property(test)
		if err != nil {
			t.Fatalf("%v", err)
		}
		properties.Property(test.Name, p)
	}
	properties.TestingRun(t)
}
