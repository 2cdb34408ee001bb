package trace

import (
	"math"
	"testing"
)

func TestSummarize_EmptyTrace_ZeroValues(t *testing.T) {
	// GIVEN an empty trace
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelTicks, NumTellers: 2})

	// WHEN summarized
	summary := Summarize(st)

	// THEN all values are zero
	if summary.TotalTicks != 0 || summary.DrainTicks != 0 {
		t.Errorf("expected 0 ticks, got %d/%d", summary.TotalTicks, summary.DrainTicks)
	}
	if summary.PeakQueueLen != 0 || summary.MeanQueueLen != 0 {
		t.Error("expected zero queue statistics")
	}
	if summary.Utilization != 0 {
		t.Errorf("expected 0 utilization, got %f", summary.Utilization)
	}
}

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalTicks != 0 {
		t.Errorf("expected 0 ticks for nil trace, got %d", summary.TotalTicks)
	}
}

func TestSummarize_PopulatedTrace_CorrectAggregates(t *testing.T) {
	// GIVEN a 4-tick trace on 2 tellers, the last tick in the drain phase
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelTicks, NumTellers: 2})
	st.RecordTick(TickRecord{Minute: 0, Phase: PhaseHorizon, Arrivals: 3, QueueLen: 3, BusyTellers: 2, Served: 2})
	st.RecordTick(TickRecord{Minute: 1, Phase: PhaseHorizon, Arrivals: 2, QueueLen: 3, BusyTellers: 2})
	st.RecordTick(TickRecord{Minute: 2, Phase: PhaseHorizon, Arrivals: 0, QueueLen: 3, BusyTellers: 2, Served: 1})
	st.RecordTick(TickRecord{Minute: 3, Phase: PhaseDrain, QueueLen: 1, BusyTellers: 1, Served: 1})

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts and means match
	if summary.TotalTicks != 4 {
		t.Errorf("expected 4 ticks, got %d", summary.TotalTicks)
	}
	if summary.DrainTicks != 1 {
		t.Errorf("expected 1 drain tick, got %d", summary.DrainTicks)
	}
	if summary.PeakQueueLen != 3 {
		t.Errorf("expected peak queue 3, got %d", summary.PeakQueueLen)
	}
	if math.Abs(summary.MeanQueueLen-2.5) > 1e-9 {
		t.Errorf("expected mean queue 2.5, got %f", summary.MeanQueueLen)
	}
	// busy teller-minutes = 7 of 8 available
	if math.Abs(summary.Utilization-0.875) > 1e-9 {
		t.Errorf("expected utilization 0.875, got %f", summary.Utilization)
	}
}
