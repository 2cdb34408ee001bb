package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/teller-sim/sim/trace"
)

// Scenario holds run parameters loadable from a YAML file.
// Nil pointer fields mean "not set in YAML" — they do not override the base config.
type Scenario struct {
	Lambda     *float64 `yaml:"lambda"`
	Tellers    *int     `yaml:"tellers"`
	Horizon    *int     `yaml:"horizon"`
	Seed       *int64   `yaml:"seed"`
	TraceLevel string   `yaml:"trace_level"`
}

// LoadScenario reads and parses a YAML scenario file.
// Unknown fields are rejected so typos surface as errors.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes a YAML scenario document.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// Validate checks parameter ranges for the fields that are set.
func (sc *Scenario) Validate() error {
	if sc.Lambda != nil && !(*sc.Lambda > 0) {
		return fmt.Errorf("%w: lambda must be positive, got %v", ErrInvalidParameter, *sc.Lambda)
	}
	if sc.Tellers != nil && *sc.Tellers <= 0 {
		return fmt.Errorf("%w: tellers must be positive, got %d", ErrInvalidParameter, *sc.Tellers)
	}
	if sc.Horizon != nil && *sc.Horizon <= 0 {
		return fmt.Errorf("%w: horizon must be positive, got %d", ErrInvalidParameter, *sc.Horizon)
	}
	if !trace.IsValidTraceLevel(sc.TraceLevel) {
		return fmt.Errorf("%w: unknown trace level %q", ErrInvalidParameter, sc.TraceLevel)
	}
	return nil
}

// ApplyTo overlays the fields set in the scenario onto base.
func (sc *Scenario) ApplyTo(base SimConfig) SimConfig {
	if sc.Lambda != nil {
		base.Lambda = *sc.Lambda
	}
	if sc.Tellers != nil {
		base.NumTellers = *sc.Tellers
	}
	if sc.Horizon != nil {
		base.Horizon = *sc.Horizon
	}
	if sc.Seed != nil {
		base.Seed = *sc.Seed
	}
	if sc.TraceLevel != "" {
		base.TraceLevel = trace.TraceLevel(sc.TraceLevel)
	}
	return base
}
