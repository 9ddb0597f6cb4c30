package dashboard

import (
	"context"
	"time"

	"github.com/agbru/litperf/internal/explorer"
)

// OperationName is the display name of a monitored explorer operation.
type OperationName string

// Monitored operations, in execution order.
const (
	PaperSearch              OperationName = "Paper Search"
	RecommendationGeneration OperationName = "Recommendation Generation"
	TrendAnalysis            OperationName = "Research Trend Analysis"
)

// Demonstration arguments passed to the explorer.
const (
	SearchTopic     = "Quantum Machine Learning"
	ReferencePaper  = "doi:example-paper-doi"
	progressMessage = "Measuring %s performance..."
)

// Operation binds a display name to an explorer call and its argument.
type Operation struct {
	Name OperationName
	Arg  string
	// Invoke performs the call. The returned value is treated as opaque
	// structured data.
	Invoke func(ctx context.Context, ex explorer.Explorer, arg string) (any, error)
}

// Operations returns the monitored operations in their fixed order.
func Operations() []Operation {
	return []Operation{
		{
			Name: PaperSearch,
			Arg:  SearchTopic,
			Invoke: func(ctx context.Context, ex explorer.Explorer, arg string) (any, error) {
				return ex.SearchPapers(ctx, arg)
			},
		},
		{
			Name: RecommendationGeneration,
			Arg:  ReferencePaper,
			Invoke: func(ctx context.Context, ex explorer.Explorer, arg string) (any, error) {
				return ex.RecommendPapers(ctx, arg)
			},
		},
		{
			Name: TrendAnalysis,
			Invoke: func(ctx context.Context, ex explorer.Explorer, _ string) (any, error) {
				return ex.AnalyzeTrends(ctx)
			},
		},
	}
}

// Status is the lifecycle state of one operation within a render.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusSucceeded
	StatusFailed
)

// String returns a human readable status.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not started"
	case StatusInProgress:
		return "in progress"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// OperationResult encapsulates the outcome of a single monitored operation.
type OperationResult struct {
	// Name is the operation's display name.
	Name OperationName
	// Value is the raw payload returned by the explorer. It is nil on failure.
	Value any
	// Duration is the wall time of the call.
	Duration time.Duration
	// Err is an apperrors.OperationError when the call failed.
	Err error
}

// Status reports whether the operation succeeded or failed.
func (r OperationResult) Status() Status {
	if r.Err != nil {
		return StatusFailed
	}
	return StatusSucceeded
}

// Succeeded filters results down to the successful ones, preserving order.
func Succeeded(results []OperationResult) []OperationResult {
	var out []OperationResult
	for _, r := range results {
		if r.Err == nil {
			out = append(out, r)
		}
	}
	return out
}
