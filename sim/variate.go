package sim

import (
	"math"
	"math/rand"
)

const (
	// MinServiceTime and MaxServiceTime bound a teller's service duration in minutes (inclusive).
	MinServiceTime = 2
	MaxServiceTime = 4
)

// SampleArrivals returns a Poisson(lambda)-distributed number of arrivals for one minute.
// Uses Knuth's multiplicative method: multiply uniform draws until the running
// product drops to e^(-lambda); the number of draws minus one is the sample.
// The product underflows for large lambda, so results are only reliable for lambda < ~30.
func SampleArrivals(rng *rand.Rand, lambda float64) int {
	limit := math.Exp(-lambda)
	p := 1.0
	k := 0
	for {
		k++
		p *= rng.Float64()
		if p <= limit {
			break
		}
	}
	return k - 1
}

// SampleServiceTime returns a service duration drawn uniformly from
// [MinServiceTime, MaxServiceTime].
func SampleServiceTime(rng *rand.Rand) int {
	return MinServiceTime + rng.Intn(MaxServiceTime-MinServiceTime+1)
}
