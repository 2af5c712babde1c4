// Package quality scores datasets along the five governance dimensions:
// completeness, uniqueness, validity, accuracy and consistency.
//
// Each dimension is a plain matching/total ratio. A zero total is defined to
// score 0 rather than NaN or an error - "no data" must stay distinguishable
// from a perfect score without crashing downstream aggregation.
package quality

// Weights assigns the relative importance of each dimension in the composite
// score. Callers own the weights; Score does not renormalize when they do not
// sum to 1.
type Weights struct {
	Completeness float64 `json:"completeness"`
	Uniqueness   float64 `json:"uniqueness"`
	Validity     float64 `json:"validity"`
	Accuracy     float64 `json:"accuracy"`
	Consistency  float64 `json:"consistency"`
}

// DefaultWeights is the conventional weighting, summing to 1.0.
var DefaultWeights = Weights{
	Completeness: 0.25,
	Uniqueness:   0.20,
	Validity:     0.20,
	Accuracy:     0.20,
	Consistency:  0.15,
}

// Dimensions holds the five per-dimension scores, each within [0, 1]
type Dimensions struct {
	Completeness float64 `json:"completeness"`
	Uniqueness   float64 `json:"uniqueness"`
	Validity     float64 `json:"validity"`
	Accuracy     float64 `json:"accuracy"`
	Consistency  float64 `json:"consistency"`
}

func ratio(matching, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(matching) / float64(total)
}

// Completeness is the fraction of records with a populated value.
func Completeness(populated, total int) float64 {
	return ratio(populated, total)
}

// Uniqueness is the fraction of records carrying a distinct value.
func Uniqueness(distinct, total int) float64 {
	return ratio(distinct, total)
}

// Validity is the fraction of records passing format validation.
func Validity(valid, total int) float64 {
	return ratio(valid, total)
}

// Accuracy is the fraction of records matching the reference source.
func Accuracy(accurate, total int) float64 {
	return ratio(accurate, total)
}

// Consistency is the fraction of records consistent across systems.
func Consistency(consistent, total int) float64 {
	return ratio(consistent, total)
}

// Score computes the weighted composite quality score. With DefaultWeights
// and all dimensions at 1.0 the score is exactly 1.0. Weights that do not sum
// to 1 are applied as given - keeping the sum at 1 is the caller's
// responsibility.
func Score(d Dimensions, w Weights) float64 {
	return d.Completeness*w.Completeness +
		d.Uniqueness*w.Uniqueness +
		d.Validity*w.Validity +
		d.Accuracy*w.Accuracy +
		d.Consistency*w.Consistency
}
