// Package runner checks law tests as properties.
//
// The Runner uses gopter to generate arguments and checks many laws concurrently.
// CheckRapid and TestingRun check the laws inside a Go test.
package runner

import (
	"fmt"
	"io"
	"math"

	"lawcheck/checking"
	"lawcheck/config"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/rs/zerolog"
)

// Checks tests with gopter.
//
// Every test is checked as a gopter property.
// The first element of a test's signature must be a gopter.Gen generating law arguments,
// e.g. a generator created with Record.
type Runner struct {
	minSuccessfulTests int
	maxDiscardRatio    float64
	// 0 seeds the generators from the current time
	seed    int64
	workers int

	// The number of laws that are checked at the same time
	numConcurrent int

	// If true will check all laws even if errors occur. Will return aggregate of errors at the end.
	// If false will stop starting new laws after the first error.
	ignoreErrors bool

	order Order

	log    zerolog.Logger
	export []io.Writer
}

// Create a new Runner
//
// params configures the number of evaluations, the seed and the concurrency.
// Zero fields of params get their default value.
//
// order decides which tests are checked and in which order they are started. If nil the tests are started in the order provided.
//
// The report of every run is written to the export writers.
func NewRunner(params config.Parameters, order Order, logger zerolog.Logger, export ...io.Writer) *Runner {
	params = params.WithDefaults()
	if order == nil {
		order = Declared()
	}
	return &Runner{
		minSuccessfulTests: params.MinSuccessfulTests,
		maxDiscardRatio:    params.MaxDiscardRatio,
		seed:               params.Seed,
		workers:            params.Workers,

		numConcurrent: params.NumConcurrent,
		ignoreErrors:  params.IgnoreErrors,

		order: order,

		log:    logger.With().Str("component", "lawcheck").Logger(),
		export: export,
	}
}

// Create the gopter property of a test.
//
// A passed evaluation is true, a failed evaluation false and an abstention is undecided.
// Returns an UnsupportedSignatureError if the signature is not a gopter.Gen.
func Property(test checking.Test) (gopter.Prop, error) {
	gen, ok := signature(test).(gopter.Gen)
	if !ok {
		return nil, &UnsupportedSignatureError{Test: test.Name, Signature: signature(test)}
	}
	return prop.ForAll1(gen, func(v interface{}) (interface{}, error) {
		args, err := toArgs(v)
		if err != nil {
			return nil, err
		}
		switch test.Evaluate(args) {
		case checking.Passed:
			return true, nil
		case checking.Failed:
			return false, nil
		default:
			return &gopter.PropResult{Status: gopter.PropUndecided}, nil
		}
	}), nil
}

func signature(test checking.Test) any {
	if len(test.Signature) == 0 {
		return nil
	}
	return test.Signature[0]
}

// The gopter parameters of one law.
func (r *Runner) parameters() *gopter.TestParameters {
	var params *gopter.TestParameters
	if r.seed == 0 {
		params = gopter.DefaultTestParameters()
	} else {
		params = gopter.DefaultTestParametersWithSeed(r.seed)
	}
	params.MinSuccessfulTests = r.minSuccessfulTests
	params.MaxDiscardRatio = math.Max(r.maxDiscardRatio, 0)
	params.Workers = r.workers
	return params
}

// Check a single test.
func (r *Runner) Check(test checking.Test) (Result, error) {
	p, err := Property(test)
	if err != nil {
		return Result{}, err
	}
	return newResult(test.Name, p.Check(r.parameters())), nil
}

type outcome struct {
	index  int
	result Result
}

// Check the tests.
//
// All signatures are validated before any law is checked.
// Returns an UnsupportedSignatureError if some test has a signature the runner can not generate arguments from.
//
// The report contains the results of the checked laws in the order of the tests.
// If a law raises an error and errors are not ignored, no new laws are started,
// the report holds the laws checked so far and the error is returned as a LawError.
// If errors are ignored all laws are checked and an aggregate of the errors is returned.
func (r *Runner) Run(tests []checking.Test) (*Report, error) {
	props := make([]gopter.Prop, len(tests))
	for i, test := range tests {
		p, err := Property(test)
		if err != nil {
			return nil, err
		}
		props[i] = p
	}

	order, err := r.order.Schedule(tests)
	if err != nil {
		return nil, err
	}
	r.log.Info().Int("laws", len(order)).Msg("checking laws")

	results := make([]*Result, len(tests))

	// Used to send the index of the next law to check
	next := make(chan int)
	// Used by the workers to return the result of a law
	status := make(chan outcome)
	// Used by the workers to signal that they have stopped
	closing := make(chan bool)

	ongoing := 0
	started := 0
	for ongoing < r.numConcurrent && started < len(order) {
		ongoing++
		go r.checkLaws(tests, props, next, status, closing)

		next <- order[started]
		started++
	}

	err = r.mainLoop(order, ongoing, started, results, next, status, closing)

	report := &Report{}
	for _, res := range results {
		if res != nil {
			report.Results = append(report.Results, *res)
		}
	}
	if len(r.export) > 0 {
		_, description := report.Response()
		for _, w := range r.export {
			fmt.Fprint(w, description)
		}
	}
	return report, err
}

// Check laws until the next channel is closed
func (r *Runner) checkLaws(tests []checking.Test, props []gopter.Prop, next <-chan int, status chan<- outcome, closing chan<- bool) {
	for i := range next {
		status <- outcome{
			index:  i,
			result: newResult(tests[i].Name, props[i].Check(r.parameters())),
		}
	}
	closing <- true
}

// The main loop of the run.
//
// Receives the result of each law and starts the next one.
// Returns when all workers have stopped.
func (r *Runner) mainLoop(order []int, ongoing int, started int, results []*Result, next chan int, status chan outcome, closing chan bool) error {
	errorSlice := []error{}
	var out error

	// Stop starting new laws by closing the next channel if it is not already closed
	stopped := false
	stop := func() {
		if !stopped {
			stopped = true
			close(next)
		}
	}
	for ongoing > 0 {
		select {
		case o := <-status:
			res := o.result
			results[o.index] = &res
			r.logResult(res)

			if res.Error != nil {
				err := &LawError{Law: res.Name, Err: res.Error}
				if !r.ignoreErrors {
					out = err
					stop()
					break
				}
				errorSlice = append(errorSlice, err)
			}

			if !stopped && started < len(order) {
				next <- order[started]
				started++
			} else {
				stop()
			}
		case <-closing:
			ongoing--
		}
	}

	stop()

	// All workers have stopped and will not send on the channels
	close(closing)
	close(status)

	if r.ignoreErrors && len(errorSlice) > 0 {
		return runError{
			errorSlice: errorSlice,
		}
	}
	return out
}

func (r *Runner) logResult(res Result) {
	var evt *zerolog.Event
	switch res.Status {
	case Failed:
		evt = r.log.Warn().Strs("args", res.Args)
	case Errored:
		evt = r.log.Error().Err(res.Error)
	default:
		evt = r.log.Debug()
	}
	evt.Str("law", res.Name).
		Stringer("status", res.Status).
		Int("passed", res.Succeeded).
		Int("discarded", res.Discarded).
		Msg("checked law")
}
