package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/inference-sim/teller-sim/sim"
	"github.com/inference-sim/teller-sim/sim/report"
	"github.com/inference-sim/teller-sim/sim/trace"
)

// RunResults is everything a finished run reports, in the shape written by --results-path.
type RunResults struct {
	Metrics *sim.Metrics        `yaml:"metrics"`
	Summary *report.Summary     `yaml:"summary,omitempty"` // nil when nobody was served
	Trace   *trace.TraceSummary `yaml:"trace,omitempty"`   // nil unless --trace-level=ticks
}

// writeResults marshals results to YAML at path, replacing any existing file.
func writeResults(path string, results *RunResults) error {
	data, err := yaml.Marshal(results)
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing results to %s: %w", path, err)
	}
	return nil
}

// readResults loads a file produced by writeResults.
func readResults(path string) (*RunResults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading results: %w", err)
	}
	var results RunResults
	if err := yaml.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("parsing results: %w", err)
	}
	return &results, nil
}
