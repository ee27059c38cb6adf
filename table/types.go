package table

// Kind identifies the logical type of a column. Operations dispatch on the
// kind rather than inspecting cell values at runtime.
type Kind int

const (
	// Text columns hold free-form strings.
	Text Kind = iota
	// Numeric columns hold float64 values; NaN marks a missing cell.
	Numeric
	// Categorical columns hold string codes from a bounded vocabulary.
	Categorical
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	default:
		return "unknown"
	}
}

// Column is a named, homogeneously typed sequence of cells. The zero value
// is not usable; build columns with NewText, NewNumeric, or NewCategorical.
type Column struct {
	name string
	kind Kind

	// Numeric storage. NaN marks a missing cell.
	floats []float64

	// Text and Categorical storage. valid[i] is false for a missing cell;
	// the corresponding strs[i] is always the empty string.
	strs  []string
	valid []bool
}

// Name returns the column name.
func (c Column) Name() string { return c.name }

// Kind returns the column's logical type.
func (c Column) Kind() Kind { return c.kind }

// Len returns the number of cells in the column.
func (c Column) Len() int {
	if c.kind == Numeric {
		return len(c.floats)
	}
	return len(c.strs)
}
