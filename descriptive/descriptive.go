// Package descriptive provides summary statistics over numeric samples.
//
// Every function treats an empty sample as "no data" and returns a neutral
// value instead of an error, so aggregations built on top never see NaN.
// The only exception is Percentile, whose percentile argument carries a
// [0, 100] contract enforced with an error.
package descriptive

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"dqkit/domain/core"
)

// Mean returns the arithmetic mean; 0 for an empty sample.
func Mean(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return m
}

// Median returns the middle value of the sorted sample, averaging the two
// middle values for even lengths; 0 for an empty sample. Input is not mutated.
func Median(values []float64) float64 {
	m, err := stats.Median(values)
	if err != nil {
		return 0
	}
	return m
}

// Mode returns the most frequent value. Ties resolve to the value seen first
// in scan order. The second return is false when the sample is empty.
func Mode(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}

	counts := make(map[float64]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	// Second pass over the input so ties resolve to the earliest-seen value.
	best := values[0]
	bestCount := 0
	for _, v := range values {
		if counts[v] > bestCount {
			bestCount = counts[v]
			best = v
		}
	}
	return best, true
}

// StandardDeviation returns the population standard deviation (divide by N);
// 0 for an empty sample.
func StandardDeviation(values []float64) float64 {
	sd, err := stats.StandardDeviationPopulation(values)
	if err != nil {
		return 0
	}
	return sd
}

// Variance is the square of the population standard deviation. It re-derives
// through StandardDeviation rather than computing the sum of squares itself
// so the two can never disagree.
func Variance(values []float64) float64 {
	sd := StandardDeviation(values)
	return sd * sd
}

// Percentile computes the p-th percentile with linear interpolation between
// closest ranks (the PERCENTILE.INC method): rank = p/100 * (n-1), then
// interpolate between the neighboring sorted values. Returns an error for p
// outside [0, 100] and 0 for an empty sample.
func Percentile(values []float64, p float64) (float64, error) {
	if p < 0 || p > 100 {
		return 0, core.NewPercentileRangeError(p)
	}
	if len(values) == 0 {
		return 0, nil
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower], nil
	}

	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower]), nil
}

// QuartileSet holds the three quartiles of a sample
type QuartileSet struct {
	Q1 float64 `json:"q1"`
	Q2 float64 `json:"q2"`
	Q3 float64 `json:"q3"`
}

// Quartiles returns the 25th, 50th and 75th percentiles of the sample.
func Quartiles(values []float64) QuartileSet {
	q1, _ := Percentile(values, 25)
	q2, _ := Percentile(values, 50)
	q3, _ := Percentile(values, 75)
	return QuartileSet{Q1: q1, Q2: q2, Q3: q3}
}

// InterquartileRange returns Q3 - Q1.
func InterquartileRange(values []float64) float64 {
	q := Quartiles(values)
	return q.Q3 - q.Q1
}
