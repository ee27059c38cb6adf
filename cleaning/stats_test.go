package cleaning

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabular/table"
)

func TestQuantile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"median of odd count", []float64{1, 2, 3}, 0.5, 2},
		{"median of even count interpolates", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"q1 interpolates between order statistics", []float64{25, 35, 120}, 0.25, 30},
		{"q3 interpolates between order statistics", []float64{25, 35, 120}, 0.75, 77.5},
		{"p=0 is the minimum", []float64{5, 9, 11}, 0, 5},
		{"p=1 is the maximum", []float64{5, 9, 11}, 1, 11},
		{"exact order statistic needs no interpolation", []float64{1, 2, 3, 4, 5}, 0.25, 2},
		{"single value", []float64{7}, 0.75, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, quantile(tt.sorted, tt.p), 1e-12)
		})
	}

	t.Run("empty input is NaN", func(t *testing.T) {
		assert.True(t, math.IsNaN(quantile(nil, 0.5)))
	})
}

func TestTukeyFences(t *testing.T) {
	t.Run("classical factor", func(t *testing.T) {
		lower, upper := tukeyFences(30, 77.5, 1.5)
		assert.InDelta(t, -41.25, lower, 1e-12)
		assert.InDelta(t, 148.75, upper, 1e-12)
	})

	t.Run("zero factor collapses to the quartiles", func(t *testing.T) {
		lower, upper := tukeyFences(30, 77.5, 0)
		assert.Equal(t, 30.0, lower)
		assert.Equal(t, 77.5, upper)
	})

	t.Run("zero IQR collapses to a single value", func(t *testing.T) {
		lower, upper := tukeyFences(5, 5, 1.5)
		assert.Equal(t, 5.0, lower)
		assert.Equal(t, 5.0, upper)
	})
}

func TestSortedNonMissing(t *testing.T) {
	col, err := table.NewNumeric("v", 35, nil, 25, 120, nil)
	require.NoError(t, err)

	assert.Equal(t, []float64{25, 35, 120}, sortedNonMissing(col))
}
