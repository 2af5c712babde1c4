package descriptive

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dqkit/domain/core"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 0.0, Mean([]float64{}))
	assert.Equal(t, 42.0, Mean([]float64{42}))
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-12)

	// Reorder invariance
	assert.InDelta(t, Mean([]float64{4, 1, 3, 2}), Mean([]float64{1, 2, 3, 4}), 1e-12)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 0.0, Median(nil))
	assert.InDelta(t, 2.5, Median([]float64{1, 2, 3, 4}), 1e-12)
	assert.InDelta(t, 2.0, Median([]float64{1, 2, 3}), 1e-12)
	assert.InDelta(t, 2.0, Median([]float64{3, 1, 2}), 1e-12)
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Median(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestMode(t *testing.T) {
	_, ok := Mode(nil)
	assert.False(t, ok)

	m, ok := Mode([]float64{5})
	require.True(t, ok)
	assert.Equal(t, 5.0, m)

	m, ok = Mode([]float64{1, 2, 2, 3})
	require.True(t, ok)
	assert.Equal(t, 2.0, m)

	// Tie resolves to the first-seen value
	m, ok = Mode([]float64{7, 3, 3, 7})
	require.True(t, ok)
	assert.Equal(t, 7.0, m)
}

func TestStandardDeviationAndVariance(t *testing.T) {
	assert.Equal(t, 0.0, StandardDeviation(nil))
	assert.Equal(t, 0.0, StandardDeviation([]float64{9}))
	assert.Equal(t, 0.0, StandardDeviation([]float64{4, 4, 4, 4}))

	// Population formula: divide by N, not N-1
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 2.0, StandardDeviation(values), 1e-12)

	// Variance is exactly the square of the standard deviation
	sd := StandardDeviation(values)
	assert.Equal(t, sd*sd, Variance(values))
	assert.Equal(t, 0.0, Variance([]float64{6, 6, 6}))
}

func TestPercentile(t *testing.T) {
	t.Run("range contract", func(t *testing.T) {
		_, err := Percentile([]float64{1, 2, 3}, -1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrPercentileRange))

		_, err = Percentile([]float64{1, 2, 3}, 100.5)
		require.Error(t, err)
		assert.True(t, errors.Is(err, core.ErrPercentileRange))
	})

	t.Run("empty sample", func(t *testing.T) {
		v, err := Percentile(nil, 50)
		require.NoError(t, err)
		assert.Equal(t, 0.0, v)
	})

	t.Run("single element", func(t *testing.T) {
		for _, p := range []float64{0, 25, 50, 99, 100} {
			v, err := Percentile([]float64{8}, p)
			require.NoError(t, err)
			assert.Equal(t, 8.0, v)
		}
	})

	t.Run("linear interpolation", func(t *testing.T) {
		values := []float64{1, 2, 3, 4}
		v, err := Percentile(values, 25)
		require.NoError(t, err)
		assert.InDelta(t, 1.75, v, 1e-12)

		v, err = Percentile(values, 100)
		require.NoError(t, err)
		assert.Equal(t, 4.0, v)
	})

	t.Run("matches median at 50", func(t *testing.T) {
		samples := [][]float64{
			{1, 2, 3},
			{1, 2, 3, 4},
			{10, 2.5, -3, 7, 0},
			{5},
		}
		for _, s := range samples {
			v, err := Percentile(s, 50)
			require.NoError(t, err)
			assert.InDelta(t, Median(s), v, 1e-12)
		}
	})
}

func TestQuartiles(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	q := Quartiles(values)
	assert.InDelta(t, 3.0, q.Q1, 1e-12)
	assert.InDelta(t, 5.0, q.Q2, 1e-12)
	assert.InDelta(t, 7.0, q.Q3, 1e-12)

	assert.InDelta(t, 4.0, InterquartileRange(values), 1e-12)
	assert.Equal(t, QuartileSet{}, Quartiles(nil))
}

func TestDetectOutliers(t *testing.T) {
	report := DetectOutliers([]float64{1, 2, 3, 4, 100})
	assert.Equal(t, []float64{100}, report.Outliers)
	assert.Less(t, report.Bounds.Upper, 100.0)

	// Bounds must agree with a direct quartile computation
	q := Quartiles([]float64{1, 2, 3, 4, 100})
	iqr := q.Q3 - q.Q1
	assert.Equal(t, q.Q1-1.5*iqr, report.Bounds.Lower)
	assert.Equal(t, q.Q3+1.5*iqr, report.Bounds.Upper)
}

func TestDetectOutliersEdgeCases(t *testing.T) {
	// Single element: the fences collapse onto the value, nothing is outside
	report := DetectOutliers([]float64{5})
	assert.Empty(t, report.Outliers)
	assert.Equal(t, 5.0, report.Bounds.Lower)
	assert.Equal(t, 5.0, report.Bounds.Upper)

	// All-equal values: zero IQR, no outliers
	report = DetectOutliers([]float64{3, 3, 3, 3})
	assert.Empty(t, report.Outliers)

	report = DetectOutliers(nil)
	assert.Empty(t, report.Outliers)
}

func TestDetectOutliersKeepsInputOrder(t *testing.T) {
	report := DetectOutliers([]float64{200, 1, 2, 3, 4, -100})
	assert.Equal(t, []float64{200, -100}, report.Outliers)
}

func TestPercentileHandlesUnsortedInput(t *testing.T) {
	v, err := Percentile([]float64{9, 1, 5, 3, 7}, 50)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, v, 1e-12)
	assert.False(t, math.IsNaN(v))
}
