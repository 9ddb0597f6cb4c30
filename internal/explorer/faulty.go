package explorer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Fault keys accepted by NewFaulty.
const (
	FaultSearch    = "search"
	FaultRecommend = "recommend"
	FaultTrends    = "trends"
)

// FaultKeys lists every valid fault key.
func FaultKeys() []string {
	return []string{FaultSearch, FaultRecommend, FaultTrends}
}

// Faulty decorates an Explorer so that selected operations fail with a fixed
// reason. It backs the --fail demo option.
type Faulty struct {
	next   Explorer
	faults map[string]error
}

// Verify interface compliance.
var _ Explorer = (*Faulty)(nil)

// NewFaulty wraps next. faults maps a fault key to the failure reason.
func NewFaulty(next Explorer, faults map[string]string) (*Faulty, error) {
	f := &Faulty{next: next, faults: make(map[string]error, len(faults))}
	valid := FaultKeys()
	for key, reason := range faults {
		key = strings.ToLower(strings.TrimSpace(key))
		if !contains(valid, key) {
			return nil, fmt.Errorf("unknown fault %q (valid: %s)", key, strings.Join(valid, ", "))
		}
		if reason == "" {
			reason = "injected failure"
		}
		f.faults[key] = errors.New(reason)
	}
	return f, nil
}

// Faults returns the configured fault keys in sorted order.
func (f *Faulty) Faults() []string {
	keys := make([]string, 0, len(f.faults))
	for k := range f.faults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SearchPapers fails when the search fault is set.
func (f *Faulty) SearchPapers(ctx context.Context, topic string) ([]Paper, error) {
	if err := f.faults[FaultSearch]; err != nil {
		return nil, err
	}
	return f.next.SearchPapers(ctx, topic)
}

// RecommendPapers fails when the recommend fault is set.
func (f *Faulty) RecommendPapers(ctx context.Context, paperID string) ([]Recommendation, error) {
	if err := f.faults[FaultRecommend]; err != nil {
		return nil, err
	}
	return f.next.RecommendPapers(ctx, paperID)
}

// AnalyzeTrends fails when the trends fault is set.
func (f *Faulty) AnalyzeTrends(ctx context.Context) (TrendSummary, error) {
	if err := f.faults[FaultTrends]; err != nil {
		return TrendSummary{}, err
	}
	return f.next.AnalyzeTrends(ctx)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
