package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// The parameters of a run.
//
// Can be read from a YAML file:
//
//	min_successful_tests: 200
//	max_discard_ratio: 10
//	seed: 42
//	workers: 2
//	num_concurrent: 4
//	ignore_errors: true
type Parameters struct {
	MinSuccessfulTests int `yaml:"min_successful_tests"`
	// Abstentions tolerated per passed evaluation. 0 gives the default, NoDiscards tolerates none.
	MaxDiscardRatio float64 `yaml:"max_discard_ratio"`
	// 0 seeds the generators from the current time
	Seed          int64 `yaml:"seed"`
	Workers       int   `yaml:"workers"`
	NumConcurrent int   `yaml:"num_concurrent"`
	IgnoreErrors  bool  `yaml:"ignore_errors"`
}

// A MaxDiscardRatio tolerating no abstentions. Any negative ratio has the same effect.
const NoDiscards = -1.0

// The parameters used when nothing else is configured.
func DefaultParameters() Parameters {
	return Parameters{
		MinSuccessfulTests: 100,
		MaxDiscardRatio:    5,
		Workers:            1,
		NumConcurrent:      runtime.GOMAXPROCS(0), // Will not change GOMAXPROCS but only return the current value
	}
}

// Replace fields that are not set with the default values.
func (p Parameters) WithDefaults() Parameters {
	def := DefaultParameters()
	if p.MinSuccessfulTests <= 0 {
		p.MinSuccessfulTests = def.MinSuccessfulTests
	}
	if p.MaxDiscardRatio == 0 {
		p.MaxDiscardRatio = def.MaxDiscardRatio
	}
	if p.Workers <= 0 {
		p.Workers = def.Workers
	}
	if p.NumConcurrent <= 0 {
		p.NumConcurrent = def.NumConcurrent
	}
	return p
}

// Read the parameters from a YAML document.
//
// Unknown fields are rejected. Missing fields get their default value.
// An empty document gives the default parameters.
func ReadParameters(r io.Reader) (Parameters, error) {
	var p Parameters
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Parameters{}, fmt.Errorf("config: unable to read parameters: %w", err)
	}
	return p.WithDefaults(), nil
}

// Read the parameters from the YAML file at path.
func LoadParameters(path string) (Parameters, error) {
	f, err := os.Open(path)
	if err != nil {
		return Parameters{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return ReadParameters(f)
}
