// Package cleaning provides composable cleaning operations over
// [tabular/table] data: whitespace trimming on text columns, row removal
// on missing-value conditions, and statistical outlier removal using the
// interquartile-range (IQR) method.
//
// # Operations
//
// All operations live on [Cleaner], hold no state between calls, and
// return a fresh table without touching the input:
//
//	c := cleaning.NewCleaner(nil)
//	t, err := c.TrimStrings(t, []string{"name"})
//	t, err = c.DropInvalidRows(t, []string{"name", "age"})
//	t, err = c.RemoveOutliersIQR(t, "age", cleaning.DefaultIQRFactor)
//
// Each operation validates column existence and logical type before doing
// any data work. Failures surface as [MissingColumnError] or
// [TypeMismatchError]; both signal caller misuse, not transient
// conditions, so there is no retry behavior.
//
// # Chaining
//
// [Pipeline] composes operations into a named, logged sequence:
//
//	p := cleaning.NewPipeline(c, nil)
//	err := p.Add(
//		cleaning.TrimStep{Cols: []string{"name"}},
//		cleaning.DropInvalidStep{Cols: []string{"name", "age"}},
//		cleaning.IQRStep{Col: "age", Factor: 0.5},
//	)
//	cleaned, err := p.Run(ctx, t)
//
// # Profiling
//
// [Describe] summarizes each column (missing counts, quartiles, top
// categories) so callers can compare a table before and after cleaning.
package cleaning
