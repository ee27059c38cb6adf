package cleaning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"tabular/table"
)

// Step is a single cleaning operation in a pipeline.
type Step interface {
	// Name identifies the step in logs and error messages.
	Name() string
	// Apply runs the step against t using the pipeline's cleaner.
	Apply(c *Cleaner, t table.Table) (table.Table, error)
}

// TrimStep trims whitespace on the named text columns.
type TrimStep struct {
	Cols []string `json:"cols" validate:"required,min=1,dive,required"`
}

// Name identifies the step.
func (s TrimStep) Name() string { return "trim_strings" }

// Apply runs the step.
func (s TrimStep) Apply(c *Cleaner, t table.Table) (table.Table, error) {
	return c.TrimStrings(t, s.Cols)
}

// DropInvalidStep drops rows holding a missing value in any of the named
// columns.
type DropInvalidStep struct {
	Cols []string `json:"cols" validate:"required,min=1,dive,required"`
}

// Name identifies the step.
func (s DropInvalidStep) Name() string { return "drop_invalid_rows" }

// Apply runs the step.
func (s DropInvalidStep) Apply(c *Cleaner, t table.Table) (table.Table, error) {
	return c.DropInvalidRows(t, s.Cols)
}

// IQRStep removes outliers from the named numeric column. Factor may be
// zero for the tightest fence; DefaultIQRFactor gives the classical one.
type IQRStep struct {
	Col    string  `json:"col" validate:"required"`
	Factor float64 `json:"factor" validate:"gte=0"`
}

// Name identifies the step.
func (s IQRStep) Name() string { return "remove_outliers_iqr" }

// Apply runs the step.
func (s IQRStep) Apply(c *Cleaner, t table.Table) (table.Table, error) {
	return c.RemoveOutliersIQR(t, s.Col, s.Factor)
}

// Pipeline composes cleaning steps into a named, logged sequence. Steps
// run in the order they were added; the first failure aborts the run. A
// pipeline holds no state between runs and never mutates its input table,
// so it may be reused and run concurrently.
type Pipeline struct {
	cleaner  *Cleaner
	steps    []Step
	logger   *slog.Logger
	validate *validator.Validate
}

// NewPipeline creates an empty pipeline. A nil cleaner gets a default one;
// a nil logger falls back to slog.Default().
func NewPipeline(cleaner *Cleaner, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cleaner == nil {
		cleaner = NewCleaner(logger)
	}

	v := validator.New()
	// Report JSON field names in validation errors.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Pipeline{
		cleaner:  cleaner,
		logger:   logger.With(slog.String("component", "cleaning_pipeline")),
		validate: v,
	}
}

// Add validates the given steps and appends them to the pipeline. A step
// with an invalid configuration (for example an empty column list or a
// negative factor) is rejected before it can run against data.
func (p *Pipeline) Add(steps ...Step) error {
	for _, s := range steps {
		if err := p.validate.Struct(s); err != nil {
			var invalid *validator.InvalidValidationError
			if errors.As(err, &invalid) {
				// Non-struct custom steps carry no validation tags.
				continue
			}
			return fmt.Errorf("step %s: invalid configuration: %w", s.Name(), err)
		}
	}
	p.steps = append(p.steps, steps...)
	return nil
}

// Steps returns the number of steps added so far.
func (p *Pipeline) Steps() int { return len(p.steps) }

// Run applies the steps in order to t and returns the cleaned table. The
// input table is left untouched. Each run is tagged with a fresh run ID in
// the logs. Run honors context cancellation between steps.
func (p *Pipeline) Run(ctx context.Context, t table.Table) (table.Table, error) {
	runID := uuid.NewString()
	start := time.Now()

	p.logger.InfoContext(ctx, "starting cleaning run",
		"run_id", runID,
		"steps", len(p.steps),
		"rows", t.NumRows(),
	)

	cur := t
	for _, s := range p.steps {
		if err := ctx.Err(); err != nil {
			return table.Table{}, fmt.Errorf("cleaning run %s: %w", runID, err)
		}

		next, err := s.Apply(p.cleaner, cur)
		if err != nil {
			p.logger.ErrorContext(ctx, "cleaning step failed",
				"run_id", runID, "step", s.Name(), "error", err)
			return table.Table{}, fmt.Errorf("step %s: %w", s.Name(), err)
		}

		p.logger.InfoContext(ctx, "cleaning step complete",
			"run_id", runID,
			"step", s.Name(),
			"rows_in", cur.NumRows(),
			"rows_out", next.NumRows(),
		)
		cur = next
	}

	p.logger.InfoContext(ctx, "cleaning run complete",
		"run_id", runID,
		"rows_in", t.NumRows(),
		"rows_out", cur.NumRows(),
		"duration", time.Since(start),
	)
	return cur, nil
}
