// Package report aggregates benchmark samples and renders them to the
// console, plain-text tables, and JSON, with optional comparison against a
// previously saved run.
package report

import "math"

// Summary is the aggregate of one sample set.
type Summary struct {
	Mean   float64
	StdDev float64 // population standard deviation
}

// Summarize reduces throughput samples to their mean and population
// standard deviation. It is a pure function. It panics on an empty slice:
// every benchmark emits at least one sample, so an empty set means the run
// is corrupted and its statistics would be meaningless.
func Summarize(samples []float64) Summary {
	if len(samples) == 0 {
		panic("report: summarizing an empty sample set")
	}

	mean := 0.0
	for _, v := range samples {
		mean += v
	}
	mean /= float64(len(samples))

	variance := 0.0
	for _, v := range samples {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(samples))

	return Summary{Mean: mean, StdDev: math.Sqrt(variance)}
}
