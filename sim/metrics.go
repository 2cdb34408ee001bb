// Tracks the counters and wait-time dataset produced by a simulation run.

package sim

// Metrics aggregates the outcome of a simulation run for final reporting.
// After Run, TotalServed == TotalArrived == len(WaitTimes).
type Metrics struct {
	Lambda     float64 `yaml:"lambda"`
	NumTellers int     `yaml:"num_tellers"`
	Horizon    int     `yaml:"horizon"`

	TotalArrived int `yaml:"total_arrived"`  // customers that joined the queue
	TotalServed  int `yaml:"total_served"`   // customers a teller picked up
	MaxQueueSize int `yaml:"max_queue_size"` // peak queue length, sampled after each minute's arrivals
	ExtraMinutes int `yaml:"extra_minutes"`  // drain time past the horizon
	SimEndedTime int `yaml:"sim_ended_time"` // Horizon + ExtraMinutes

	TellerServed []int `yaml:"teller_served"` // customers served per teller index
	WaitTimes    []int `yaml:"wait_times"`    // one entry per served customer, in service order
}

// NewMetrics creates empty metrics for a run with the given config.
func NewMetrics(cfg SimConfig) *Metrics {
	return &Metrics{
		Lambda:       cfg.Lambda,
		NumTellers:   cfg.NumTellers,
		Horizon:      cfg.Horizon,
		TellerServed: make([]int, cfg.NumTellers),
		WaitTimes:    make([]int, 0, 100),
	}
}

// recordArrivals counts n new customers.
func (m *Metrics) recordArrivals(n int) {
	m.TotalArrived += n
}

// observeQueue folds the current queue length into the running peak.
func (m *Metrics) observeQueue(length int) {
	if length > m.MaxQueueSize {
		m.MaxQueueSize = length
	}
}

// recordService appends a served customer's wait and credits the teller.
func (m *Metrics) recordService(teller int, c Customer) {
	m.WaitTimes = append(m.WaitTimes, c.WaitTime)
	m.TellerServed[teller]++
	m.TotalServed++
}

// Unserved returns how many arrivals never reached a teller.
// Zero after a complete run.
func (m *Metrics) Unserved() int {
	return m.TotalArrived - m.TotalServed
}
