package config

import (
	"io"

	"github.com/rs/zerolog"
)

// Configures the number of successful evaluations needed for a law to pass

// Default value is 100
type MinSuccessfulTestsOption struct {
	N int
}

func (o MinSuccessfulTestsOption) RunnerOpt() {}

// Configures how many abstentions are tolerated per successful evaluation

// Default value is 5
type MaxDiscardRatioOption struct {
	Ratio float64
}

func (o MaxDiscardRatioOption) RunnerOpt() {}

// Configures the seed of the argument generators

// Default value is 0, which seeds the generators from the current time
type SeedOption struct {
	Seed int64
}

func (o SeedOption) RunnerOpt() {}

// Configures how many goroutines evaluate a single law

// Default value is 1
type WorkersOption struct {
	N int
}

func (o WorkersOption) RunnerOpt() {}

// Configures how many laws are checked at the same time

// Default value is GOMAXPROCS
type NumConcurrentOption struct {
	N int
}

func (o NumConcurrentOption) RunnerOpt() {}

// Configures the runner to continue after a law raised an error
type IgnoreErrorOption struct{}

func (o IgnoreErrorOption) RunnerOpt() {}

// Configures the runner to start the laws in a random order
type RandomOrderOption struct {
	Seed int64
}

func (o RandomOrderOption) RunnerOpt() {}

// Configures the runner to only check the laws with the provided names

// The names are usually taken from Report.Export
type ReplayOption struct {
	Names []string
}

func (o ReplayOption) RunnerOpt() {}

// Configures the logger of the runner

// Default value is a disabled logger
type LoggerOption struct {
	Logger zerolog.Logger
}

func (o LoggerOption) RunnerOpt() {}

// Configures io.writers that the report will be written to

// Can be applied multiple times to add multiple io.writers.
// Default value is no writers.
type ExportOption struct {
	W io.Writer
}

func (o ExportOption) RunnerOpt() {}

// Configures all numeric parameters at once

// Fields of the parameters override earlier options. Later options override the parameters.
type ParametersOption struct {
	Parameters Parameters
}

func (o ParametersOption) RunnerOpt() {}
