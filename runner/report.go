package runner

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/leanovate/gopter"
)

// The outcome of checking one law.
type Status int

const (
	// The law held for every generated set of arguments
	Passed Status = iota
	// Some generated set of arguments violated the law
	Failed
	// The law abstained for too many generated sets of arguments.
	// Not counted as a violation.
	Exhausted
	// Evaluating the law raised an error
	Errored
)

func (s Status) String() string {
	switch s {
	case Passed:
		return "PASSED"
	case Failed:
		return "FAILED"
	case Exhausted:
		return "EXHAUSTED"
	case Errored:
		return "ERROR"
	}
	return ""
}

// The result of checking one law.
type Result struct {
	Name   string
	Status Status
	// The number of evaluations that passed
	Succeeded int
	// The number of evaluations that abstained
	Discarded int
	// The arguments that violated the law. Empty unless Status is Failed or Errored
	Args []string
	// nil unless Status is Errored
	Error error
}

func newResult(name string, res *gopter.TestResult) Result {
	result := Result{
		Name:      name,
		Succeeded: res.Succeeded,
		Discarded: res.Discarded,
		Error:     res.Error,
	}
	switch res.Status {
	case gopter.TestPassed, gopter.TestProved:
		result.Status = Passed
	case gopter.TestFailed:
		result.Status = Failed
	case gopter.TestExhausted:
		result.Status = Exhausted
	case gopter.TestError:
		result.Status = Errored
		if result.Error == nil {
			result.Error = fmt.Errorf("runner: law %q raised an error", name)
		}
	}
	if result.Status == Failed || result.Status == Errored {
		for _, arg := range res.Args {
			result.Args = append(result.Args, arg.ArgFormatted)
		}
	}
	return result
}

// The results of a run, in the order of the tests.
type Report struct {
	Results []Result
}

// Returns true if no law was violated and no law raised an error.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if res.Status == Failed || res.Status == Errored {
			return false
		}
	}
	return true
}

// Generate a response
// Returns two parameters, result, and description.
// Result is true if all laws hold, false otherwise.
// Description is a formatted table of the results of every law.
// If result is false the description also contains the arguments that violated each law.
func (r *Report) Response() (bool, string) {
	ok := r.Passed()
	var buffer bytes.Buffer
	wrt := tabwriter.NewWriter(&buffer, 4, 4, 1, ' ', 0)
	out := "All laws hold. Laws: \n"
	if !ok {
		out = fmt.Sprintf("Laws broken: %v. Laws: \n", len(r.Export()))
	}
	for _, res := range r.Results {
		fmt.Fprintf(wrt, "-> %v\t%v\tpassed: %v\tdiscarded: %v\t\n", res.Name, res.Status, res.Succeeded, res.Discarded)
		for _, arg := range res.Args {
			fmt.Fprintf(wrt, "   \targs: %v\t\t\t\n", arg)
		}
		if res.Error != nil {
			fmt.Fprintf(wrt, "   \terror: %v\t\t\t\n", res.Error)
		}
	}
	wrt.Flush()
	out += buffer.String()
	return ok, out
}

// Export the names of the laws that were violated or raised an error, to be replayed by a Replay order
func (r *Report) Export() []string {
	names := []string{}
	for _, res := range r.Results {
		if res.Status == Failed || res.Status == Errored {
			names = append(names, res.Name)
		}
	}
	return names
}
