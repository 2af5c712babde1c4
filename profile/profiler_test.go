package profile

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dqkit/quality"
)

func TestProfileKeepsColumnOrder(t *testing.T) {
	columns := []Column{
		{Name: "amount", Values: []float64{1, 2, 3}},
		{Name: "region", Values: []float64{1, 1, 2}},
		{Name: "age", Values: []float64{30, 40, 50, 60}},
	}

	report, err := New().Profile(context.Background(), columns)
	require.NoError(t, err)
	require.Len(t, report.Columns, 3)

	assert.Equal(t, "amount", report.Columns[0].Name)
	assert.Equal(t, "region", report.Columns[1].Name)
	assert.Equal(t, "age", report.Columns[2].Name)
	assert.False(t, report.ID.String() == "")
	assert.False(t, report.CreatedAt.IsZero())
	assert.False(t, report.Fingerprint.IsEmpty())
}

func TestProfilePerfectColumnScoresOne(t *testing.T) {
	report, err := New().Profile(context.Background(), []Column{
		{Name: "id", Values: []float64{1, 2, 3, 4, 5}},
	})
	require.NoError(t, err)
	require.Len(t, report.Columns, 1)

	cp := report.Columns[0]
	assert.Equal(t, 1.0, cp.Dimensions.Completeness)
	assert.Equal(t, 1.0, cp.Dimensions.Uniqueness)
	assert.InDelta(t, 1.0, cp.Score, 1e-12)
	assert.InDelta(t, 1.0, report.OverallScore, 1e-12)
}

func TestProfileTreatsNaNAsMissing(t *testing.T) {
	report, err := New().Profile(context.Background(), []Column{
		{Name: "price", Values: []float64{10, math.NaN(), 20, math.Inf(1)}},
	})
	require.NoError(t, err)

	cp := report.Columns[0]
	assert.Equal(t, 4, cp.SampleSize)
	assert.InDelta(t, 0.5, cp.MissingRatio, 1e-12)
	assert.InDelta(t, 0.5, cp.Dimensions.Completeness, 1e-12)
	// Statistics are computed over the present values only
	assert.InDelta(t, 15.0, cp.Summary.Mean, 1e-12)
	assert.Equal(t, 10.0, cp.Summary.Min)
	assert.Equal(t, 20.0, cp.Summary.Max)
}

func TestProfileSummaryAndOutliers(t *testing.T) {
	report, err := New().Profile(context.Background(), []Column{
		{Name: "latency", Values: []float64{1, 2, 3, 4, 100}},
	})
	require.NoError(t, err)

	cp := report.Columns[0]
	assert.Equal(t, []float64{100}, cp.Outliers.Outliers)
	assert.InDelta(t, 3.0, cp.Summary.Median, 1e-12)
}

func TestProfileDuplicatesLowerUniqueness(t *testing.T) {
	report, err := New().Profile(context.Background(), []Column{
		{Name: "status", Values: []float64{1, 1, 1, 2}},
	})
	require.NoError(t, err)

	cp := report.Columns[0]
	assert.InDelta(t, 0.5, cp.Dimensions.Uniqueness, 1e-12)
	assert.Less(t, cp.Score, 1.0)
}

func TestProfileEmptyColumn(t *testing.T) {
	report, err := New().Profile(context.Background(), []Column{
		{Name: "empty"},
	})
	require.NoError(t, err)

	cp := report.Columns[0]
	assert.Equal(t, 0, cp.SampleSize)
	assert.Equal(t, 0.0, cp.MissingRatio)
	assert.Equal(t, 0.0, cp.Dimensions.Completeness)
	assert.Empty(t, cp.Outliers.Outliers)
}

func TestProfileNoColumns(t *testing.T) {
	report, err := New().Profile(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, report.Columns)
	assert.Equal(t, 0.0, report.OverallScore)
}

func TestProfileHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	columns := make([]Column, 64)
	for i := range columns {
		columns[i] = Column{Name: "col", Values: []float64{1, 2, 3}}
	}

	_, err := New().Profile(ctx, columns)
	assert.Error(t, err)
}

func TestProfileCustomWeights(t *testing.T) {
	// Weight everything on completeness; duplicates then cost nothing
	w := quality.Weights{Completeness: 1}
	report, err := NewWithWeights(w).Profile(context.Background(), []Column{
		{Name: "status", Values: []float64{1, 1, 1, 1}},
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, report.Columns[0].Score, 1e-12)
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("DQ_PROFILE_CONCURRENCY", "2")
	p, err := NewFromEnv()
	require.NoError(t, err)

	report, err := p.Profile(context.Background(), []Column{
		{Name: "a", Values: []float64{1, 2}},
		{Name: "b", Values: []float64{3, 4}},
	})
	require.NoError(t, err)
	assert.Len(t, report.Columns, 2)
}
