package lawcheck

import (
	"io"

	"lawcheck/config"
	"lawcheck/runner"

	"github.com/rs/zerolog"
)

// Prepare a runner with initial configuration.
//
// See the RunnerOptions for a full overview of possible options.
// Default values will be used if no value is provided.
func PrepareRunner(opts ...RunnerOption) *runner.Runner {
	var (
		params = config.DefaultParameters()

		// nil starts the laws in the order of the tests
		order runner.Order

		// Names of the laws to replay. nil checks all laws
		replay []string

		logger = zerolog.Nop()

		export []io.Writer
	)

	for _, opt := range opts {
		switch t := opt.(type) {
		case config.ParametersOption:
			params = t.Parameters
		case config.MinSuccessfulTestsOption:
			params.MinSuccessfulTests = t.N
		case config.MaxDiscardRatioOption:
			params.MaxDiscardRatio = t.Ratio
		case config.SeedOption:
			params.Seed = t.Seed
		case config.WorkersOption:
			params.Workers = t.N
		case config.NumConcurrentOption:
			params.NumConcurrent = t.N
		case config.IgnoreErrorOption:
			params.IgnoreErrors = true
		case config.RandomOrderOption:
			order = runner.NewRandom(t.Seed)
		case config.ReplayOption:
			replay = t.Names
		case config.LoggerOption:
			logger = t.Logger
		case config.ExportOption:
			export = append(export, t.W)
		}
	}
	if replay != nil {
		order = runner.NewReplay(replay, order)
	}

	return runner.NewRunner(params, order, logger, export...)
}

// A option used to configure the Runner
type RunnerOption interface {
	// noop method
	RunnerOpt()
}

// Configure the number of evaluations that must pass for a law to hold.
//
// Default value is 100
func MinSuccessfulTests(n int) RunnerOption {
	return config.MinSuccessfulTestsOption{N: n}
}

// Configure how many abstentions are tolerated per passed evaluation before a law is reported as exhausted.
//
// Default value is 5. Use config.NoDiscards to tolerate no abstentions.
func MaxDiscardRatio(ratio float64) RunnerOption {
	return config.MaxDiscardRatioOption{Ratio: ratio}
}

// Configure the seed of the argument generators.
//
// Default value is 0, which seeds the generators from the current time
func Seed(seed int64) RunnerOption {
	return config.SeedOption{Seed: seed}
}

// Configure the number of goroutines evaluating a single law.
//
// Default value is 1
func Workers(n int) RunnerOption {
	return config.WorkersOption{N: n}
}

// Configure the number of laws that are checked concurrently.
//
// Default value is GOMAXPROCS
func NumConcurrent(n int) RunnerOption {
	return config.NumConcurrentOption{N: n}
}

// Set the ignoreError flag to true.
//
// If true will check all laws even if some raise errors. Will return aggregate of errors at the end.
// If false will stop starting new laws after the first error.
func IgnoreErrors() RunnerOption {
	return config.IgnoreErrorOption{}
}

// Start the laws in a random order.
//
// Results are still reported in the order of the tests.
func RandomOrder(seed int64) RunnerOption {
	return config.RandomOrderOption{Seed: seed}
}

// Only check the laws with the provided names
//
// The names of the violated laws can be exported using the Report.Export()
func Replay(names ...string) RunnerOption {
	return config.ReplayOption{Names: append([]string{}, names...)}
}

// Log the progress of the run to logger.
//
// Default value is a disabled logger
func WithLogger(logger zerolog.Logger) RunnerOption {
	return config.LoggerOption{Logger: logger}
}

// Use the provided parameters, e.g. parameters read with config.LoadParameters.
//
// Options given after this one override the fields of the parameters.
func WithParameters(params config.Parameters) RunnerOption {
	return config.ParametersOption{Parameters: params}
}

// Add a writer that the report will be written to
//
// Can be called multiple times.
// Default value is no writers
func Export(w io.Writer) RunnerOption {
	return config.ExportOption{W: w}
}
