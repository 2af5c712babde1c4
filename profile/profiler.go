// Package profile computes structural quality profiles over numeric dataset
// columns: summary statistics, outliers, missing and distinct ratios, and a
// composite quality score per column. Columns are profiled concurrently but
// the report preserves input order.
package profile

import (
	"context"
	"math"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"dqkit/descriptive"
	"dqkit/domain/core"
	"dqkit/internal/config"
	"dqkit/quality"
)

// Column is a named numeric sample to profile
type Column struct {
	Name   string
	Values []float64
}

// Summary holds the core summary statistics of a column
type Summary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
}

// ColumnProfile is the per-column profiling result
type ColumnProfile struct {
	Name          string                    `json:"name"`
	SampleSize    int                       `json:"sample_size"`
	MissingRatio  float64                   `json:"missing_ratio"`
	DistinctRatio float64                   `json:"distinct_ratio"`
	Summary       Summary                   `json:"summary"`
	Outliers      descriptive.OutlierReport `json:"outliers"`
	Dimensions    quality.Dimensions        `json:"dimensions"`
	Score         float64                   `json:"score"`
}

// Report is a complete dataset profile
type Report struct {
	ID           core.ReportID   `json:"id"`
	Columns      []ColumnProfile `json:"columns"`
	OverallScore float64         `json:"overall_score"`
	Fingerprint  core.Hash       `json:"fingerprint"`
	CreatedAt    core.Timestamp  `json:"created_at"`
}

// Profiler computes dataset profiles with configurable weights and
// concurrency. Zero-configuration callers should use New.
type Profiler struct {
	weights quality.Weights
	limit   int
}

// New creates a profiler with default weights and one worker per CPU.
func New() *Profiler {
	return &Profiler{weights: quality.DefaultWeights, limit: 0}
}

// NewFromEnv creates a profiler configured from the environment
// (DQ_WEIGHT_*, DQ_PROFILE_CONCURRENCY).
func NewFromEnv() (*Profiler, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return &Profiler{weights: cfg.Weights, limit: cfg.MaxConcurrency}, nil
}

// NewWithWeights creates a profiler with explicit score weights.
func NewWithWeights(w quality.Weights) *Profiler {
	return &Profiler{weights: w}
}

// Profile computes a profile for every column. Columns run concurrently
// under the configured limit; the context cancels outstanding work.
func (p *Profiler) Profile(ctx context.Context, columns []Column) (*Report, error) {
	profiles := make([]ColumnProfile, len(columns))

	g, ctx := errgroup.WithContext(ctx)
	if p.limit > 0 {
		g.SetLimit(p.limit)
	}

	for i, col := range columns {
		i, col := i, col
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			profiles[i] = p.profileColumn(col)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	scores := make([]float64, len(profiles))
	byName := make(map[string]float64, len(profiles))
	for i, cp := range profiles {
		scores[i] = cp.Score
		byName[cp.Name] = cp.Score
	}

	return &Report{
		ID:           core.ReportID(core.NewID()),
		Columns:      profiles,
		OverallScore: descriptive.Mean(scores),
		Fingerprint:  core.ComputeProfileFingerprint(byName),
		CreatedAt:    core.Now(),
	}, nil
}

// profileColumn computes the full profile for one column. NaN and infinite
// entries count as missing and are excluded from the statistics.
func (p *Profiler) profileColumn(col Column) ColumnProfile {
	total := len(col.Values)

	present := make([]float64, 0, total)
	distinct := make(map[float64]struct{}, total)
	for _, v := range col.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		present = append(present, v)
		distinct[v] = struct{}{}
	}

	missingRatio := 0.0
	if total > 0 {
		missingRatio = float64(total-len(present)) / float64(total)
	}

	// Structural profiling only sees completeness and uniqueness; the
	// remaining dimensions need reference data the profiler does not have,
	// so they score as perfect and the caller may override downstream.
	dims := quality.Dimensions{
		Completeness: quality.Completeness(len(present), total),
		Uniqueness:   quality.Uniqueness(len(distinct), len(present)),
		Validity:     1,
		Accuracy:     1,
		Consistency:  1,
	}

	min, _ := stats.Min(present)
	max, _ := stats.Max(present)
	quartiles := descriptive.Quartiles(present)

	return ColumnProfile{
		Name:          col.Name,
		SampleSize:    total,
		MissingRatio:  missingRatio,
		DistinctRatio: quality.Uniqueness(len(distinct), len(present)),
		Summary: Summary{
			Mean:   descriptive.Mean(present),
			StdDev: descriptive.StandardDeviation(present),
			Min:    min,
			Max:    max,
			Median: quartiles.Q2,
			Q1:     quartiles.Q1,
			Q3:     quartiles.Q3,
		},
		Outliers:   descriptive.DetectOutliers(present),
		Dimensions: dims,
		Score:      quality.Score(dims, p.weights),
	}
}
