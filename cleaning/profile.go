package cleaning

import (
	"gonum.org/v1/gonum/stat"

	"tabular/table"
)

// ColumnProfile summarizes a single column. Numeric fields are only
// populated for numeric columns with at least one non-missing value;
// Distinct and Top only for text and categorical columns.
type ColumnProfile struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Rows    int    `json:"rows"`
	Missing int    `json:"missing"`

	Mean   float64 `json:"mean,omitempty"`
	Std    float64 `json:"std,omitempty"`
	Min    float64 `json:"min,omitempty"`
	Q1     float64 `json:"q1,omitempty"`
	Median float64 `json:"median,omitempty"`
	Q3     float64 `json:"q3,omitempty"`
	Max    float64 `json:"max,omitempty"`

	Distinct int    `json:"distinct,omitempty"`
	Top      string `json:"top,omitempty"`
	TopCount int    `json:"top_count,omitempty"`
}

// Describe summarizes every column of the table, in column order. It is
// read-only: the table is never modified. Comparing the profiles of a
// table before and after cleaning shows what each operation removed.
func Describe(t table.Table) []ColumnProfile {
	profiles := make([]ColumnProfile, 0, t.NumCols())
	for _, col := range t.Columns() {
		p := ColumnProfile{
			Name: col.Name(),
			Kind: col.Kind().String(),
			Rows: col.Len(),
		}
		for i := 0; i < col.Len(); i++ {
			if col.IsMissing(i) {
				p.Missing++
			}
		}

		if col.Kind() == table.Numeric {
			profileNumeric(col, &p)
		} else {
			profileStrings(col, &p)
		}
		profiles = append(profiles, p)
	}
	return profiles
}

func profileNumeric(col table.Column, p *ColumnProfile) {
	values := sortedNonMissing(col)
	if len(values) == 0 {
		return
	}
	p.Mean = stat.Mean(values, nil)
	if len(values) > 1 {
		p.Std = stat.StdDev(values, nil)
	}
	p.Min = values[0]
	p.Q1 = quantile(values, 0.25)
	p.Median = quantile(values, 0.5)
	p.Q3 = quantile(values, 0.75)
	p.Max = values[len(values)-1]
}

func profileStrings(col table.Column, p *ColumnProfile) {
	counts := make(map[string]int)
	for i := 0; i < col.Len(); i++ {
		if col.IsMissing(i) {
			continue
		}
		counts[col.Text(i)]++
	}
	p.Distinct = len(counts)
	for v, n := range counts {
		// Break count ties on the smaller value for a stable result.
		if n > p.TopCount || (n == p.TopCount && v < p.Top) {
			p.Top = v
			p.TopCount = n
		}
	}
}
