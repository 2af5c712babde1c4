// Package similarity provides distance and similarity measures between
// vectors, sets and strings. Vector functions require equal lengths - a
// mismatch is a caller bug and fails loudly instead of degrading into a
// misleading score.
package similarity

import (
	"math"

	"dqkit/domain/core"
)

// EuclideanDistance returns the L2 distance between two equal-length vectors.
func EuclideanDistance(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, core.NewVectorLengthError(len(x), len(y))
	}

	sum := 0.0
	for i := range x {
		d := x[i] - y[i]
		sum += d * d
	}
	return math.Sqrt(sum), nil
}

// CosineSimilarity returns the cosine of the angle between two equal-length
// vectors. A zero-magnitude vector has no direction, so the similarity is
// defined as 0.
func CosineSimilarity(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, core.NewVectorLengthError(len(x), len(y))
	}

	dot := 0.0
	magX := 0.0
	magY := 0.0
	for i := range x {
		dot += x[i] * y[i]
		magX += x[i] * x[i]
		magY += y[i] * y[i]
	}

	if magX == 0 || magY == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(magX) * math.Sqrt(magY)), nil
}
