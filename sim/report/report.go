// Package report turns a wait-time dataset into descriptive statistics
// and a staffing assessment. It never mutates the dataset it is given.
package report

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyDataset is returned when there are no wait times to summarize.
var ErrEmptyDataset = errors.New("empty wait-time dataset")

// StaffingLevel is the qualitative assessment derived from the mean wait.
type StaffingLevel string

const (
	StaffingUnderstaffed StaffingLevel = "understaffed" // mean > 10 minutes
	StaffingModerate     StaffingLevel = "moderate"     // 5 < mean <= 10 minutes
	StaffingAdequate     StaffingLevel = "adequate"     // mean <= 5 minutes
)

const (
	// UnderstaffedMeanWait is the mean wait above which more tellers are recommended.
	UnderstaffedMeanWait = 10.0
	// ModerateMeanWait is the mean wait above which peak hours need monitoring.
	ModerateMeanWait = 5.0
	// ExtremeWaitThreshold flags any single wait longer than this many minutes.
	ExtremeWaitThreshold = 30
)

// Summary holds the statistics of one run's wait times, in minutes.
type Summary struct {
	Count       int           `yaml:"count"`
	Mean        float64       `yaml:"mean"`
	Median      float64       `yaml:"median"`
	Mode        int           `yaml:"mode"`
	StdDev      float64       `yaml:"std_dev"`
	Variance    float64       `yaml:"variance"`
	Min         int           `yaml:"min"`
	Max         int           `yaml:"max"`
	Staffing    StaffingLevel `yaml:"staffing"`
	ExtremeWait bool          `yaml:"extreme_wait"` // some customer waited more than ExtremeWaitThreshold
}

// Summarize computes every statistic for waits.
func Summarize(waits []int) (*Summary, error) {
	if len(waits) == 0 {
		return nil, ErrEmptyDataset
	}
	sorted := sortedCopy(waits)
	x := toFloats(sorted)

	mean := stat.Mean(x, nil)
	std := stdDevAbout(x, mean)
	maxWait := int(floats.Max(x))

	return &Summary{
		Count:       len(waits),
		Mean:        mean,
		Median:      medianSorted(sorted),
		Mode:        modeSorted(sorted),
		StdDev:      std,
		Variance:    std * std,
		Min:         int(floats.Min(x)),
		Max:         maxWait,
		Staffing:    AssessStaffing(mean),
		ExtremeWait: maxWait > ExtremeWaitThreshold,
	}, nil
}

// Mean returns the arithmetic mean of data. Returns 0 for empty input.
func Mean(data []int) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(toFloats(data), nil)
}

// Median returns the middle value of data; for an even count, the average
// of the two middle values. Returns 0 for empty input.
func Median(data []int) float64 {
	if len(data) == 0 {
		return 0
	}
	return medianSorted(sortedCopy(data))
}

// Mode returns the most frequent value in data.
// Among values sharing the highest frequency, the smallest wins:
// runs are compared in ascending order and only a strictly longer run replaces the current mode.
// Returns 0 for empty input.
func Mode(data []int) int {
	if len(data) == 0 {
		return 0
	}
	return modeSorted(sortedCopy(data))
}

// PopStdDev returns the population standard deviation of data around the given mean
// (divides by N, not N-1). Returns 0 for empty input.
func PopStdDev(data []int, mean float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stdDevAbout(toFloats(data), mean)
}

// Min returns the smallest value in data. Panics on empty input.
func Min(data []int) int {
	return int(floats.Min(toFloats(data)))
}

// Max returns the largest value in data. Panics on empty input.
func Max(data []int) int {
	return int(floats.Max(toFloats(data)))
}

// AssessStaffing maps a mean wait onto a staffing level.
func AssessStaffing(mean float64) StaffingLevel {
	switch {
	case mean > UnderstaffedMeanWait:
		return StaffingUnderstaffed
	case mean > ModerateMeanWait:
		return StaffingModerate
	default:
		return StaffingAdequate
	}
}

func medianSorted(sorted []int) float64 {
	n := len(sorted)
	if n%2 == 0 {
		return float64(sorted[n/2-1]+sorted[n/2]) / 2.0
	}
	return float64(sorted[n/2])
}

func modeSorted(sorted []int) int {
	mode := sorted[0]
	maxRun := 1
	run := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			run++
			continue
		}
		if run > maxRun {
			maxRun = run
			mode = sorted[i-1]
		}
		run = 1
	}
	if run > maxRun {
		mode = sorted[len(sorted)-1]
	}
	return mode
}

func stdDevAbout(x []float64, mean float64) float64 {
	return math.Sqrt(stat.MomentAbout(2, x, mean, nil))
}

func sortedCopy(data []int) []int {
	sorted := make([]int, len(data))
	copy(sorted, data)
	sort.Ints(sorted)
	return sorted
}

func toFloats(data []int) []float64 {
	x := make([]float64, len(data))
	for i, v := range data {
		x[i] = float64(v)
	}
	return x
}
