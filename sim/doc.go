// Package sim provides the tick-driven queueing simulation engine for a teller counter.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - customer.go: Customer lifecycle (waiting → served), recorded once
//   - queue.go: FIFO WaitQueue in front of the counter
//   - tellers.go: TellerBank countdown timers (0 = idle)
//   - simulator.go: the horizon loop and the post-horizon drain
//
// # Tick Order
//
// Each minute of the horizon runs, in order: sample arrivals and enqueue
// them, fold the queue length into MaxQueueSize, tick every teller down by
// one minute, then hand waiting customers to idle tellers from index 0
// upward. After the horizon the drain phase repeats the last two steps
// until the queue is empty and every teller is idle.
//
// # Randomness
//
// All draws come from a PartitionedRNG seeded by SimConfig.Seed, with
// arrivals and service times on separate subsystems. The same seed and
// config always reproduce the same run.
//
// # Sub-packages
//   - sim/report/: descriptive statistics and staffing assessment of wait times
//   - sim/trace/: optional per-tick recording
package sim
