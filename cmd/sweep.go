package cmd

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	sim "github.com/inference-sim/teller-sim/sim"
	"github.com/inference-sim/teller-sim/sim/report"
)

// sweepRow summarizes one run of a staffing sweep.
type sweepRow struct {
	Tellers      int
	Arrived      int
	MeanWait     float64
	MaxWait      int
	MaxQueueSize int
	ExtraMinutes int
	Staffing     report.StaffingLevel
	ExtremeWait  bool
}

// runSweep simulates base once per teller count in [1, maxCount].
// Every run shares base.Seed, so all counts see the same arrival stream.
func runSweep(base sim.SimConfig, maxCount int) ([]sweepRow, error) {
	if maxCount <= 0 {
		return nil, fmt.Errorf("%w: max-tellers must be positive, got %d", sim.ErrInvalidParameter, maxCount)
	}
	rows := make([]sweepRow, 0, maxCount)
	for n := 1; n <= maxCount; n++ {
		cfg := base
		cfg.NumTellers = n
		m, _, err := sim.RunSimulation(cfg)
		if err != nil {
			return nil, err
		}
		row := sweepRow{
			Tellers:      n,
			Arrived:      m.TotalArrived,
			MaxQueueSize: m.MaxQueueSize,
			ExtraMinutes: m.ExtraMinutes,
			Staffing:     report.StaffingAdequate,
		}
		s, err := report.Summarize(m.WaitTimes)
		switch {
		case errors.Is(err, report.ErrEmptyDataset):
		case err != nil:
			return nil, err
		default:
			row.MeanWait = s.Mean
			row.MaxWait = s.Max
			row.Staffing = s.Staffing
			row.ExtremeWait = s.ExtremeWait
		}
		logrus.Debugf("sweep: %d teller(s) mean wait %.2f (%s)", n, row.MeanWait, row.Staffing)
		rows = append(rows, row)
	}
	return rows, nil
}

// recommendedTellers returns the smallest teller count rated adequate, or 0 if none is.
func recommendedTellers(rows []sweepRow) int {
	for _, r := range rows {
		if r.Staffing == report.StaffingAdequate {
			return r.Tellers
		}
	}
	return 0
}
