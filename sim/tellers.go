package sim

import "fmt"

// TellerBank is a fixed set of tellers, each tracked by a countdown timer.
// A timer of 0 means the teller is idle; a positive value is the number of
// minutes left on the current customer.
type TellerBank struct {
	busy []int
}

// NewTellerBank creates n idle tellers.
func NewTellerBank(n int) *TellerBank {
	if n <= 0 {
		panic(fmt.Sprintf("NewTellerBank: teller count must be positive, got %d", n))
	}
	return &TellerBank{busy: make([]int, n)}
}

// Len returns the number of tellers.
func (tb *TellerBank) Len() int {
	return len(tb.busy)
}

// Tick advances every busy teller by one minute. Idle tellers stay at 0.
func (tb *TellerBank) Tick() {
	for i := range tb.busy {
		if tb.busy[i] > 0 {
			tb.busy[i]--
		}
	}
}

// AnyBusy reports whether at least one teller is still serving.
func (tb *TellerBank) AnyBusy() bool {
	for _, remaining := range tb.busy {
		if remaining > 0 {
			return true
		}
	}
	return false
}

// BusyCount returns how many tellers are currently serving.
func (tb *TellerBank) BusyCount() int {
	n := 0
	for _, remaining := range tb.busy {
		if remaining > 0 {
			n++
		}
	}
	return n
}

// FindFree returns the lowest-indexed idle teller.
// Scanning from index 0 keeps teller assignment deterministic for a fixed seed.
func (tb *TellerBank) FindFree() (int, bool) {
	for i, remaining := range tb.busy {
		if remaining == 0 {
			return i, true
		}
	}
	return -1, false
}

// IsIdle reports whether teller i is available.
func (tb *TellerBank) IsIdle(i int) bool {
	return tb.busy[i] == 0
}

// Remaining returns the minutes left on teller i's current customer.
func (tb *TellerBank) Remaining(i int) int {
	return tb.busy[i]
}

// Assign starts a service of the given duration on teller i.
// The teller must be idle and the duration positive.
func (tb *TellerBank) Assign(i, duration int) {
	if duration <= 0 {
		panic(fmt.Sprintf("Assign: duration must be positive, got %d", duration))
	}
	if tb.busy[i] != 0 {
		panic(fmt.Sprintf("Assign: teller %d still busy for %d minutes", i, tb.busy[i]))
	}
	tb.busy[i] = duration
}
