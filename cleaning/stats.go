package cleaning

import (
	"math"
	"sort"

	"tabular/table"
)

// sortedNonMissing collects the non-missing values of a numeric column in
// ascending order.
func sortedNonMissing(col table.Column) []float64 {
	values := make([]float64, 0, col.Len())
	for i := 0; i < col.Len(); i++ {
		if v := col.Float(i); !math.IsNaN(v) {
			values = append(values, v)
		}
	}
	sort.Float64s(values)
	return values
}

// quantile returns the p-quantile (0 <= p <= 1) of the sorted values using
// linear interpolation between order statistics: the value at fractional
// position p*(n-1). This is the standard percentile definition, so Q1/Q3
// computed here agree bit-for-bit with other implementations of it.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	pos := p * float64(n-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}

	weight := pos - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// tukeyFences returns the inclusive outlier bounds
// [q1 - factor*iqr, q3 + factor*iqr]. With equal quartiles the fences
// collapse to that single value regardless of factor.
func tukeyFences(q1, q3, factor float64) (lower, upper float64) {
	iqr := q3 - q1
	return q1 - factor*iqr, q3 + factor*iqr
}
