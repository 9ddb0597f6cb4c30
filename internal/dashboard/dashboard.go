package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/litperf/internal/chart"
	apperrors "github.com/agbru/litperf/internal/errors"
	"github.com/agbru/litperf/internal/explorer"
)

const tracerName = "github.com/agbru/litperf/internal/dashboard"

// Option configures a dashboard render.
type Option func(*options)

type options struct {
	measured  bool
	observers []Observer
	ops       []Operation
	now       func() time.Time
}

func newOptions(opts []Option) options {
	o := options{ops: Operations(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMeasuredTimings makes the tiles, chart and table show the durations
// measured during the render instead of the illustrative figures.
func WithMeasuredTimings() Option {
	return func(o *options) { o.measured = true }
}

// WithObserver registers an observer for operation outcomes.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observers = append(o.observers, obs) }
}

// WithOperations replaces the monitored operation list.
func WithOperations(ops []Operation) Option {
	return func(o *options) { o.ops = ops }
}

// ExecuteOperations runs ops one at a time in order, each inside an
// in-progress indicator. A failing or panicking operation is recorded as an
// apperrors.OperationError and reported on the surface; the loop always runs
// to completion.
func ExecuteOperations(ctx context.Context, ex explorer.Explorer, ops []Operation, surface Surface, observers ...Observer) []OperationResult {
	return executeOperations(ctx, ex, ops, surface, time.Now, observers)
}

func executeOperations(ctx context.Context, ex explorer.Explorer, ops []Operation, surface Surface, now func() time.Time, observers []Observer) []OperationResult {
	tracer := otel.Tracer(tracerName)
	results := make([]OperationResult, len(ops))

	for i, op := range ops {
		spanCtx, span := tracer.Start(ctx, string(op.Name), trace.WithAttributes(
			attribute.String("litperf.operation", string(op.Name)),
			attribute.String("litperf.argument", op.Arg),
		))

		var value any
		var err error
		start := now()
		surface.InProgress(fmt.Sprintf(progressMessage, op.Name), func() {
			value, err = invoke(spanCtx, ex, op)
		})
		result := OperationResult{Name: op.Name, Duration: now().Sub(start)}

		if err != nil {
			result.Err = apperrors.OperationError{Operation: string(op.Name), Cause: err}
			surface.Error("Error in " + result.Err.Error())
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			result.Value = value
		}
		span.End()

		results[i] = result
		for _, obs := range observers {
			obs.Observe(result)
		}
	}
	return results
}

// invoke calls op and converts a panic into an error.
func invoke(ctx context.Context, ex explorer.Explorer, op Operation) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("panic: %w", e)
				return
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	if op.Invoke == nil {
		return nil, errors.New("operation has no implementation")
	}
	return op.Invoke(ctx, ex, op.Arg)
}

// RenderPerformanceDashboard writes the full performance report to surface:
// header, operation results, summary tiles, comparison chart, results table
// and one expandable panel per successful operation.
//
// Operation failures are reported inline and never returned. The returned
// error is non-nil only when the report itself could not be rendered, in
// which case it is an apperrors.RenderError.
func RenderPerformanceDashboard(ctx context.Context, ex explorer.Explorer, surface Surface, opts ...Option) ([]OperationResult, error) {
	o := newOptions(opts)

	surface.Header(Title)
	results := executeOperations(ctx, ex, o.ops, surface, o.now, o.observers)

	tiles := SummaryTiles()
	var entries []chart.BenchmarkEntry
	table := ResultsTable()
	if o.measured {
		tiles = measuredTiles(results)
		entries = measuredEntries(results)
		table = newTable(entries, "%.3f")
	}

	surface.MetricGrid(tiles)

	c, err := chart.BuildInferenceChart(entries)
	if err != nil {
		return results, err
	}
	surface.Subheader(ChartHeading)
	surface.Chart(c)

	surface.Subheader(TableHeading)
	surface.Table(table)

	for _, r := range Succeeded(results) {
		surface.Expander(string(r.Name), r.Value)
	}

	if err := surface.Err(); err != nil {
		return results, apperrors.RenderError{Component: "surface", Cause: err}
	}
	return results, nil
}
