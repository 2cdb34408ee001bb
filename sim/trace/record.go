// Package trace provides per-tick recording of counter state for post-run analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// Phase identifies which part of the run a tick belongs to.
type Phase string

const (
	// PhaseHorizon ticks accept new arrivals.
	PhaseHorizon Phase = "horizon"
	// PhaseDrain ticks only serve customers already waiting.
	PhaseDrain Phase = "drain"
)

// TickRecord captures the counter state for a single simulated minute.
type TickRecord struct {
	Minute      int   `yaml:"minute"`
	Phase       Phase `yaml:"phase"`
	Arrivals    int   `yaml:"arrivals"`     // customers that arrived this minute (0 while draining)
	QueueLen    int   `yaml:"queue_len"`    // queue length after arrivals, before service
	BusyTellers int   `yaml:"busy_tellers"` // tellers serving at the end of the minute
	Served      int   `yaml:"served"`       // customers picked up by a teller this minute
}
