package cmd

import (
	"fmt"
	"io"

	sim "github.com/inference-sim/teller-sim/sim"
	"github.com/inference-sim/teller-sim/sim/report"
)

const banner = "========================================"

// renderRun prints the simulation counters followed by the wait time analysis.
func renderRun(w io.Writer, r *RunResults) {
	m := r.Metrics
	fmt.Fprintln(w, "\n========== SIMULATION RESULTS ==========")
	fmt.Fprintf(w, "Arrival rate (lambda):   %.3f per minute\n", m.Lambda)
	fmt.Fprintf(w, "Tellers:                 %d\n", m.NumTellers)
	fmt.Fprintf(w, "Total customers arrived: %d\n", m.TotalArrived)
	fmt.Fprintf(w, "Total customers served:  %d\n", m.TotalServed)
	fmt.Fprintf(w, "Maximum queue size:      %d\n", m.MaxQueueSize)
	fmt.Fprintf(w, "Extra time needed:       %d minutes\n", m.ExtraMinutes)
	if m.NumTellers > 1 {
		for i, n := range m.TellerServed {
			fmt.Fprintf(w, "   Teller %d served:     %d\n", i, n)
		}
	}
	if r.Trace != nil {
		fmt.Fprintf(w, "Mean queue length:       %.2f\n", r.Trace.MeanQueueLen)
		fmt.Fprintf(w, "Teller utilization:      %.1f%%\n", r.Trace.Utilization*100)
	}

	if r.Summary != nil {
		renderSummary(w, r.Summary)
	}
}

// renderSummary prints the statistics block and staffing recommendations.
func renderSummary(w io.Writer, s *report.Summary) {
	fmt.Fprintf(w, "\n%s\n     WAIT TIME ANALYSIS REPORT\n%s\n\n", banner, banner)

	fmt.Fprintln(w, "📊 Central Tendency Measures:")
	fmt.Fprintf(w, "   Mean Wait Time:     %.2f minutes\n", s.Mean)
	fmt.Fprintf(w, "   Median Wait Time:   %.2f minutes\n", s.Median)
	fmt.Fprintf(w, "   Mode Wait Time:     %d minutes\n\n", s.Mode)

	fmt.Fprintln(w, "📈 Dispersion Measures:")
	fmt.Fprintf(w, "   Standard Deviation: %.2f minutes\n", s.StdDev)
	fmt.Fprintf(w, "   Variance:           %.2f minutes²\n\n", s.Variance)

	fmt.Fprintln(w, "⏱️  Extreme Values:")
	fmt.Fprintf(w, "   Minimum Wait Time:  %d minutes\n", s.Min)
	fmt.Fprintf(w, "   Maximum Wait Time:  %d minutes\n\n", s.Max)

	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "\n💡 RECOMMENDATIONS:")
	switch s.Staffing {
	case report.StaffingUnderstaffed:
		fmt.Fprintln(w, "⚠️  Average wait time exceeds 10 minutes!")
		fmt.Fprintln(w, "   Consider hiring additional tellers.")
	case report.StaffingModerate:
		fmt.Fprintln(w, "⚡ Wait times are moderate.")
		fmt.Fprintln(w, "   Monitor during peak hours.")
	default:
		fmt.Fprintln(w, "✅ Wait times are excellent!")
		fmt.Fprintln(w, "   Current staffing is adequate.")
	}
	if s.ExtremeWait {
		fmt.Fprintf(w, "⚠️  Some customers waited over %d minutes!\n", report.ExtremeWaitThreshold)
		fmt.Fprintln(w, "   This may lead to customer dissatisfaction.")
	}
	fmt.Fprintln(w, banner)
}

// renderSweep prints one row per teller count and marks the recommended count.
func renderSweep(w io.Writer, cfg sim.SimConfig, rows []sweepRow) {
	fmt.Fprintf(w, "Staffing sweep: lambda=%.3f, horizon=%d, seed=%d\n\n", cfg.Lambda, cfg.Horizon, cfg.Seed)
	fmt.Fprintf(w, "%-8s %-8s %-10s %-9s %-9s %-12s %s\n", "Tellers", "Arrived", "Mean Wait", "Max Wait", "Max Queue", "Extra Min", "Staffing")
	rec := recommendedTellers(rows)
	for _, r := range rows {
		mark := ""
		if r.Tellers == rec {
			mark = " <- recommended"
		}
		fmt.Fprintf(w, "%-8d %-8d %-10.2f %-9d %-9d %-12d %s%s\n",
			r.Tellers, r.Arrived, r.MeanWait, r.MaxWait, r.MaxQueueSize, r.ExtraMinutes, r.Staffing, mark)
	}
	if rec == 0 {
		fmt.Fprintln(w, "\n⚠️  No teller count in the sweep brings the mean wait to an adequate level.")
	}
}
