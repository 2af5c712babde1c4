package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions.
//
// These sentinels mark contract violations: a caller passed arguments that
// no valid program should produce (a percentile outside [0,100], vectors of
// different lengths). Expected data-quality failures are never signaled this
// way - validators return structured results instead.
var (
	ErrPercentileRange = errors.New("percentile must be within [0, 100]")
	ErrVectorLength    = errors.New("vectors must have equal length")
	ErrConfidenceLevel = errors.New("confidence level must be within (0, 1)")
)

// Error constructors with context
func NewPercentileRangeError(p float64) error {
	return fmt.Errorf("%w: got %v", ErrPercentileRange, p)
}

func NewVectorLengthError(lenX, lenY int) error {
	return fmt.Errorf("%w: got %d and %d", ErrVectorLength, lenX, lenY)
}

func NewConfidenceLevelError(level float64) error {
	return fmt.Errorf("%w: got %v", ErrConfidenceLevel, level)
}

// Error checking helpers
func IsContractError(err error) bool {
	return errors.Is(err, ErrPercentileRange) ||
		errors.Is(err, ErrVectorLength) ||
		errors.Is(err, ErrConfidenceLevel)
}
