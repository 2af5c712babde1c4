package trend

import (
	"math"

	"dqkit/domain/core"
)

// PredictionMetrics summarizes forecast error between an actual and a
// predicted series
type PredictionMetrics struct {
	MAE  float64 `json:"mae"`
	MSE  float64 `json:"mse"`
	RMSE float64 `json:"rmse"`
	MAPE float64 `json:"mape"` // Percentage, terms with actual == 0 excluded
}

// EvaluatePredictions computes MAE, MSE, RMSE and MAPE for the two series.
// Mismatched lengths are a caller bug and return an error. MAPE terms where
// the actual value is 0 are skipped entirely - excluded from the average
// rather than counted as infinite error.
func EvaluatePredictions(actual, predicted []float64) (PredictionMetrics, error) {
	if len(actual) != len(predicted) {
		return PredictionMetrics{}, core.NewVectorLengthError(len(actual), len(predicted))
	}
	if len(actual) == 0 {
		return PredictionMetrics{}, nil
	}

	n := float64(len(actual))
	sumAbs := 0.0
	sumSq := 0.0
	sumPct := 0.0
	pctTerms := 0

	for i := range actual {
		diff := actual[i] - predicted[i]
		sumAbs += math.Abs(diff)
		sumSq += diff * diff
		if actual[i] != 0 {
			sumPct += math.Abs(diff / actual[i])
			pctTerms++
		}
	}

	m := PredictionMetrics{
		MAE:  sumAbs / n,
		MSE:  sumSq / n,
		RMSE: math.Sqrt(sumSq / n),
	}
	if pctTerms > 0 {
		m.MAPE = sumPct / float64(pctTerms) * 100
	}
	return m, nil
}
