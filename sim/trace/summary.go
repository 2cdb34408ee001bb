package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalTicks   int     `yaml:"total_ticks"`
	DrainTicks   int     `yaml:"drain_ticks"`
	PeakQueueLen int     `yaml:"peak_queue_len"`
	MeanQueueLen float64 `yaml:"mean_queue_len"`
	Utilization  float64 `yaml:"utilization"` // busy teller-minutes / available teller-minutes
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil || len(st.Ticks) == 0 {
		return summary
	}

	summary.TotalTicks = len(st.Ticks)
	queueSum := 0
	busySum := 0
	for _, tick := range st.Ticks {
		if tick.Phase == PhaseDrain {
			summary.DrainTicks++
		}
		if tick.QueueLen > summary.PeakQueueLen {
			summary.PeakQueueLen = tick.QueueLen
		}
		queueSum += tick.QueueLen
		busySum += tick.BusyTellers
	}
	summary.MeanQueueLen = float64(queueSum) / float64(summary.TotalTicks)

	if st.Config.NumTellers > 0 {
		summary.Utilization = float64(busySum) / float64(summary.TotalTicks*st.Config.NumTellers)
	}

	return summary
}
