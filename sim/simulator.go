// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/teller-sim/sim/trace"
)

// Simulator is the core object that holds simulation time, counter state, and the tick loop.
type Simulator struct {
	Clock   int // current minute; runs past Horizon while draining
	Horizon int // minutes during which new customers arrive
	Lambda  float64
	// WaitQ aka the line in front of the counter
	WaitQ   *WaitQueue
	Tellers *TellerBank
	Metrics *Metrics
	// Trace is nil unless the config asked for tick tracing.
	Trace *trace.SimulationTrace

	// draw functions; tests in this package swap them for scripted sequences
	nextArrivals    func() int
	nextServiceTime func() int
}

// NewSimulator validates cfg and builds a simulator with an empty queue and idle tellers.
func NewSimulator(cfg SimConfig) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	s := &Simulator{
		Clock:   0,
		Horizon: cfg.Horizon,
		Lambda:  cfg.Lambda,
		WaitQ:   NewWaitQueue(),
		Tellers: NewTellerBank(cfg.NumTellers),
		Metrics: NewMetrics(cfg),
	}
	arrivalRNG := rng.ForSubsystem(SubsystemArrivals)
	serviceRNG := rng.ForSubsystem(SubsystemService)
	s.nextArrivals = func() int { return SampleArrivals(arrivalRNG, cfg.Lambda) }
	s.nextServiceTime = func() int { return SampleServiceTime(serviceRNG) }

	traceCfg := trace.TraceConfig{Level: cfg.TraceLevel, NumTellers: cfg.NumTellers}
	if traceCfg.Enabled() {
		s.Trace = trace.NewSimulationTrace(traceCfg)
	}
	return s, nil
}

// Run simulates the full business day and then drains the queue.
// On return every customer that arrived has been served.
func (sim *Simulator) Run() *Metrics {
	logrus.Infof("[tick %07d] Opening with %d teller(s), lambda=%.3f, horizon=%d",
		sim.Clock, sim.Tellers.Len(), sim.Lambda, sim.Horizon)

	for sim.Clock = 0; sim.Clock < sim.Horizon; sim.Clock++ {
		arrivals := sim.arrive(sim.Clock)
		queueLen := sim.WaitQ.Len()
		sim.Metrics.observeQueue(queueLen)
		sim.Tellers.Tick()
		served := sim.serve(sim.Clock)
		sim.recordTick(trace.PhaseHorizon, arrivals, queueLen, served)
	}
	logrus.Infof("[tick %07d] Doors closed: %d arrived, %d served, %d still waiting",
		sim.Clock, sim.Metrics.TotalArrived, sim.Metrics.TotalServed, sim.WaitQ.Len())

	extra := 0
	for !sim.WaitQ.IsEmpty() || sim.Tellers.AnyBusy() {
		extra++
		sim.Clock = sim.Horizon + extra
		queueLen := sim.WaitQ.Len()
		sim.Tellers.Tick()
		served := sim.serve(sim.Clock)
		sim.recordTick(trace.PhaseDrain, 0, queueLen, served)
	}
	sim.Metrics.ExtraMinutes = extra
	sim.Metrics.SimEndedTime = sim.Horizon + extra

	logrus.Infof("[tick %07d] Simulation ended after %d extra minute(s)", sim.Metrics.SimEndedTime, extra)
	return sim.Metrics
}

// arrive samples this minute's arrivals and adds them to the back of the queue.
func (sim *Simulator) arrive(minute int) int {
	n := sim.nextArrivals()
	for i := 0; i < n; i++ {
		sim.WaitQ.Enqueue(NewCustomer(minute))
	}
	sim.Metrics.recordArrivals(n)
	if n > 0 {
		logrus.Debugf("[tick %07d] %d arrival(s), queue=%d", minute, n, sim.WaitQ.Len())
	}
	return n
}

// serve hands waiting customers to idle tellers, lowest index first, and returns how many started service.
func (sim *Simulator) serve(minute int) int {
	served := 0
	for !sim.WaitQ.IsEmpty() {
		t, ok := sim.Tellers.FindFree()
		if !ok {
			break
		}
		c, err := sim.WaitQ.Dequeue()
		if err != nil {
			panic(fmt.Sprintf("serve: teller %d at minute %d: %v", t, minute, err))
		}
		c.startService(minute)
		sim.Metrics.recordService(t, c)

		duration := sim.nextServiceTime()
		sim.Tellers.Assign(t, duration)
		served++
		logrus.Debugf("[tick %07d] teller %d serving %v for %d min", minute, t, c, duration)
	}
	return served
}

func (sim *Simulator) recordTick(phase trace.Phase, arrivals, queueLen, served int) {
	if sim.Trace == nil {
		return
	}
	sim.Trace.RecordTick(trace.TickRecord{
		Minute:      sim.Clock,
		Phase:       phase,
		Arrivals:    arrivals,
		QueueLen:    queueLen,
		BusyTellers: sim.Tellers.BusyCount(),
		Served:      served,
	})
}

// RunSimulation validates cfg, runs one simulation, and returns its metrics and trace.
func RunSimulation(cfg SimConfig) (*Metrics, *trace.SimulationTrace, error) {
	s, err := NewSimulator(cfg)
	if err != nil {
		return nil, nil, err
	}
	m := s.Run()
	return m, s.Trace, nil
}
