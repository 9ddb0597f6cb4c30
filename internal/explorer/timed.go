package explorer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/agbru/litperf/internal/logging"
)

// Timed decorates an Explorer and logs the inference time and result size of
// every call.
type Timed struct {
	next   Explorer
	logger logging.Logger
	now    func() time.Time
}

// Verify interface compliance.
var _ Explorer = (*Timed)(nil)

// NewTimed wraps next, logging to logger.
func NewTimed(next Explorer, logger logging.Logger) *Timed {
	return &Timed{next: next, logger: logger, now: time.Now}
}

// SearchPapers forwards and logs.
func (t *Timed) SearchPapers(ctx context.Context, topic string) ([]Paper, error) {
	start := t.now()
	res, err := t.next.SearchPapers(ctx, topic)
	t.record("SearchPapers", start, res, err)
	return res, err
}

// RecommendPapers forwards and logs.
func (t *Timed) RecommendPapers(ctx context.Context, paperID string) ([]Recommendation, error) {
	start := t.now()
	res, err := t.next.RecommendPapers(ctx, paperID)
	t.record("RecommendPapers", start, res, err)
	return res, err
}

// AnalyzeTrends forwards and logs.
func (t *Timed) AnalyzeTrends(ctx context.Context) (TrendSummary, error) {
	start := t.now()
	res, err := t.next.AnalyzeTrends(ctx)
	t.record("AnalyzeTrends", start, res, err)
	return res, err
}

func (t *Timed) record(method string, start time.Time, result any, err error) {
	elapsed := t.now().Sub(start)
	if err != nil {
		// Failures are reported once, by the dashboard's observers.
		t.logger.Debug("explorer call failed",
			logging.String("method", method),
			logging.Duration("inference_time", elapsed),
			logging.Err(err))
		return
	}
	t.logger.Debug("explorer call",
		logging.String("method", method),
		logging.Duration("inference_time", elapsed),
		logging.Int("result_size", resultSize(result)))
}

// resultSize is the length of the JSON encoding of v, in bytes.
func resultSize(v any) int {
	b, err := json.Marshal(v)
	if err != nil {
		return 0
	}
	return len(b)
}
