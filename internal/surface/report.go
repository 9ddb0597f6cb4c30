package surface

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/agbru/litperf/internal/dashboard"
)

// OperationSummary is the machine-readable outcome of one operation.
type OperationSummary struct {
	Name            string  `json:"name"`
	Status          string  `json:"status"`
	DurationSeconds float64 `json:"duration_seconds"`
	Error           string  `json:"error,omitempty"`
}

// Report is the JSON document emitted by --format json.
type Report struct {
	ID          string             `json:"id"`
	GeneratedAt time.Time          `json:"generated_at"`
	Operations  []OperationSummary `json:"operations"`
	Blocks      []Block            `json:"blocks"`
}

// NewReport assembles a report from the recorded blocks and the operation
// results of the same render.
func NewReport(rec *Recorder, results []dashboard.OperationResult, now time.Time) Report {
	r := Report{
		ID:          uuid.NewString(),
		GeneratedAt: now.UTC(),
		Operations:  make([]OperationSummary, 0, len(results)),
		Blocks:      rec.Blocks(),
	}
	for _, res := range results {
		s := OperationSummary{
			Name:            string(res.Name),
			Status:          res.Status().String(),
			DurationSeconds: res.Duration.Seconds(),
		}
		if res.Err != nil {
			s.Error = res.Err.Error()
		}
		r.Operations = append(r.Operations, s)
	}
	return r
}

// WriteJSON writes the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
