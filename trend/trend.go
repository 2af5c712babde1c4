// Package trend provides time-ordered analysis over numeric series: growth
// rates, smoothing, seasonal adjustment, least-squares trend fitting and
// forecast error metrics.
package trend

// Defaults for the optional parameters of seasonal adjustment and confidence
// intervals.
const (
	DefaultSeasonLength    = 12
	DefaultConfidenceLevel = 0.95
)

// GrowthRate returns (current - previous) / previous.
//
// When previous is 0 the rate is defined as 1 for positive current and 0
// otherwise. This conflates "100% growth" with "growth from nothing"; it is
// the established convention for the metric, kept to avoid a division by
// zero, not a claim of mathematical correctness.
func GrowthRate(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 1
		}
		return 0
	}
	return (current - previous) / previous
}

// MovingAverage returns the sliding-window means of the series. The result
// has len(values)-window+1 elements. A window that is non-positive or longer
// than the series yields nil.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 0 || window > len(values) {
		return nil
	}

	result := make([]float64, 0, len(values)-window+1)
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			result = append(result, sum/float64(window))
		}
	}
	return result
}

// SeasonalAdjustment removes a repeating seasonal pattern of the given length
// from the series. The per-phase factor is the mean of that phase's values
// across cycles; each element is scaled by overallMean/factor for its phase.
// A non-positive season length falls back to DefaultSeasonLength. Series
// shorter than one season are returned as an unchanged copy. Phases whose
// factor is 0 are left unscaled.
func SeasonalAdjustment(values []float64, seasonLength int) []float64 {
	if seasonLength <= 0 {
		seasonLength = DefaultSeasonLength
	}
	if len(values) < seasonLength {
		return append([]float64(nil), values...)
	}

	sums := make([]float64, seasonLength)
	counts := make([]int, seasonLength)
	for i, v := range values {
		phase := i % seasonLength
		sums[phase] += v
		counts[phase]++
	}

	factors := make([]float64, seasonLength)
	overall := 0.0
	for p := range factors {
		factors[p] = sums[p] / float64(counts[p])
		overall += factors[p]
	}
	overall /= float64(seasonLength)

	adjusted := make([]float64, len(values))
	for i, v := range values {
		factor := factors[i%seasonLength]
		if factor == 0 {
			adjusted[i] = v
			continue
		}
		adjusted[i] = v * overall / factor
	}
	return adjusted
}
