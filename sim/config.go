package sim

import (
	"errors"
	"fmt"

	"github.com/inference-sim/teller-sim/sim/trace"
)

// DefaultHorizon is the length of an 8-hour business day in minutes.
const DefaultHorizon = 480

// ErrInvalidParameter is wrapped by every config validation failure.
var ErrInvalidParameter = errors.New("invalid parameter")

// SimConfig groups everything one simulation run needs.
type SimConfig struct {
	Lambda     float64          // mean arrivals per minute (must be > 0)
	NumTellers int              // tellers at the counter (must be > 0)
	Horizon    int              // minutes during which customers arrive (must be > 0)
	Seed       int64            // master seed for PartitionedRNG
	TraceLevel trace.TraceLevel // "none" (default) or "ticks"
}

// NewSimConfig returns a config for a standard business day.
func NewSimConfig(lambda float64, numTellers int, seed int64) SimConfig {
	return SimConfig{
		Lambda:     lambda,
		NumTellers: numTellers,
		Horizon:    DefaultHorizon,
		Seed:       seed,
		TraceLevel: trace.TraceLevelNone,
	}
}

// Validate rejects configs the simulation clock cannot run.
// Every returned error wraps ErrInvalidParameter.
func (c SimConfig) Validate() error {
	if !(c.Lambda > 0) {
		return fmt.Errorf("%w: lambda must be positive, got %v", ErrInvalidParameter, c.Lambda)
	}
	if c.NumTellers <= 0 {
		return fmt.Errorf("%w: teller count must be positive, got %d", ErrInvalidParameter, c.NumTellers)
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("%w: horizon must be positive, got %d", ErrInvalidParameter, c.Horizon)
	}
	if !trace.IsValidTraceLevel(string(c.TraceLevel)) {
		return fmt.Errorf("%w: unknown trace level %q", ErrInvalidParameter, c.TraceLevel)
	}
	return nil
}
