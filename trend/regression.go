package trend

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"dqkit/descriptive"
	"dqkit/domain/core"
)

// TrendResult holds an ordinary least squares fit of a series against its
// index sequence 0..n-1
type TrendResult struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	R2        float64 `json:"r2"`
}

// Trend fits values against the index sequence 0..n-1 by ordinary least
// squares. Fewer than two points yield the zero result. A perfectly flat
// series (zero total sum of squares) is a perfect fit, so R² is 1 rather
// than NaN.
func Trend(values []float64) TrendResult {
	n := len(values)
	if n < 2 {
		return TrendResult{}
	}

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}

	intercept, slope := stat.LinearRegression(xs, values, nil, false)

	meanY := descriptive.Mean(values)
	ssTot := 0.0
	ssRes := 0.0
	for i, y := range values {
		fitted := intercept + slope*xs[i]
		ssTot += (y - meanY) * (y - meanY)
		ssRes += (y - fitted) * (y - fitted)
	}

	r2 := 1.0
	if ssTot != 0 {
		r2 = 1 - ssRes/ssTot
	}

	return TrendResult{Slope: slope, Intercept: intercept, R2: r2}
}

// Interval is a symmetric confidence interval around a sample mean
type Interval struct {
	Mean   float64 `json:"mean"`
	Lower  float64 `json:"lower"`
	Upper  float64 `json:"upper"`
	Margin float64 `json:"margin"`
}

// ConfidenceInterval returns mean ± z·(sd/√n) where z is the standard-normal
// quantile for the requested two-sided level (z ≈ 1.96 at 0.95). The level
// must lie strictly within (0, 1). An empty sample yields the zero interval.
func ConfidenceInterval(values []float64, level float64) (Interval, error) {
	if level <= 0 || level >= 1 {
		return Interval{}, core.NewConfidenceLevelError(level)
	}
	if len(values) == 0 {
		return Interval{}, nil
	}

	mean := descriptive.Mean(values)
	sd := descriptive.StandardDeviation(values)

	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(0.5 + level/2)
	margin := z * sd / math.Sqrt(float64(len(values)))

	return Interval{
		Mean:   mean,
		Lower:  mean - margin,
		Upper:  mean + margin,
		Margin: margin,
	}, nil
}

// Correlation returns the Pearson correlation coefficient of the two series.
// Mismatched lengths, empty input or a zero-variance series all yield 0 -
// those cases carry no correlation signal, and a hard failure here would
// poison aggregate sweeps over many column pairs.
func Correlation(x, y []float64) float64 {
	if len(x) == 0 || len(x) != len(y) {
		return 0
	}

	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}
