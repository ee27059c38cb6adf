package cleaning

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabular/table"
)

func testPipeline() *Pipeline {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPipeline(NewCleaner(logger), logger)
}

func TestPipelineRun(t *testing.T) {
	t.Run("applies steps in order", func(t *testing.T) {
		p := testPipeline()
		require.NoError(t, p.Add(
			TrimStep{Cols: []string{"name"}},
			DropInvalidStep{Cols: []string{"name", "age"}},
			IQRStep{Col: "age", Factor: 0.5},
		))
		assert.Equal(t, 3, p.Steps())

		tbl := sampleTable(t)
		got, err := p.Run(context.Background(), tbl)
		require.NoError(t, err)

		// After trimming and dropping incomplete rows, ages {25, 120}
		// remain; the factor-0.5 fences around them are exactly
		// [25, 120], so both survive the outlier step.
		assert.Equal(t, []int{0, 3}, got.Index())

		name, _ := got.Column("name")
		assert.Equal(t, "Alice", name.Text(0))
		assert.Equal(t, "Carol", name.Text(1))

		// The input table is untouched by the whole run.
		orig, _ := tbl.Column("name")
		assert.Equal(t, " Alice ", orig.Text(0))
	})

	t.Run("empty pipeline returns the table as-is", func(t *testing.T) {
		p := testPipeline()
		tbl := sampleTable(t)
		got, err := p.Run(context.Background(), tbl)
		require.NoError(t, err)
		assert.Equal(t, tbl.NumRows(), got.NumRows())
	})

	t.Run("first failing step aborts the run", func(t *testing.T) {
		p := testPipeline()
		require.NoError(t, p.Add(
			DropInvalidStep{Cols: []string{"does_not_exist"}},
			TrimStep{Cols: []string{"name"}},
		))

		_, err := p.Run(context.Background(), sampleTable(t))
		require.Error(t, err)
		assert.ErrorContains(t, err, "drop_invalid_rows")

		var missing *MissingColumnError
		assert.ErrorAs(t, err, &missing)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		p := testPipeline()
		require.NoError(t, p.Add(TrimStep{Cols: []string{"name"}}))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := p.Run(ctx, sampleTable(t))
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("supports caller-defined steps", func(t *testing.T) {
		p := testPipeline()
		require.NoError(t, p.Add(headStep{N: 2}))

		got, err := p.Run(context.Background(), sampleTable(t))
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1}, got.Index())
	})
}

func TestPipelineAddValidation(t *testing.T) {
	tests := []struct {
		name string
		step Step
		ok   bool
	}{
		{"valid trim step", TrimStep{Cols: []string{"name"}}, true},
		{"trim step without columns", TrimStep{}, false},
		{"trim step with empty column name", TrimStep{Cols: []string{""}}, false},
		{"valid drop step", DropInvalidStep{Cols: []string{"a", "b"}}, true},
		{"drop step without columns", DropInvalidStep{Cols: []string{}}, false},
		{"valid iqr step", IQRStep{Col: "age", Factor: 1.5}, true},
		{"zero factor is a valid tight fence", IQRStep{Col: "age", Factor: 0}, true},
		{"iqr step without column", IQRStep{Factor: 1.5}, false},
		{"negative factor", IQRStep{Col: "age", Factor: -0.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPipeline()
			err := p.Add(tt.step)
			if tt.ok {
				assert.NoError(t, err)
				assert.Equal(t, 1, p.Steps())
			} else {
				assert.Error(t, err)
				assert.Zero(t, p.Steps())
			}
		})
	}
}

func TestPipelineDefaults(t *testing.T) {
	p := NewPipeline(nil, nil)
	require.NotNil(t, p)
	require.NoError(t, p.Add(TrimStep{Cols: []string{"name"}}))

	got, err := p.Run(context.Background(), sampleTable(t))
	require.NoError(t, err)

	name, _ := got.Column("name")
	assert.Equal(t, "Alice", name.Text(0))
}

// headStep keeps the first N rows. It exercises the caller-defined step
// path of Pipeline.Add.
type headStep struct {
	N int `json:"n" validate:"gte=0"`
}

func (s headStep) Name() string { return "head" }

func (s headStep) Apply(c *Cleaner, t table.Table) (table.Table, error) {
	n := s.N
	if n > t.NumRows() {
		n = t.NumRows()
	}
	positions := make([]int, n)
	for i := range positions {
		positions[i] = i
	}
	return t.Select(positions)
}
