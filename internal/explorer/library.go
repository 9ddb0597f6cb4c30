package explorer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	apperrors "github.com/agbru/litperf/internal/errors"
)

// DefaultResultLimit caps search and recommendation results.
const DefaultResultLimit = 5

// Library is an Explorer backed by a paper Store.
type Library struct {
	store *Store
	limit int
}

// Verify interface compliance.
var _ Explorer = (*Library)(nil)

// NewLibrary returns a Library reading from store.
func NewLibrary(store *Store) *Library {
	return &Library{store: store, limit: DefaultResultLimit}
}

// SearchPapers ranks papers by how often the topic's terms occur in their
// title (weighted double), concepts and content.
func (l *Library) SearchPapers(ctx context.Context, topic string) ([]Paper, error) {
	terms := strings.Fields(strings.ToLower(topic))
	if len(terms) == 0 {
		return nil, apperrors.ValidationError{Field: "topic", Message: "must not be empty"}
	}
	papers, err := l.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		paper Paper
		score int
	}
	var hits []scored
	for _, p := range papers {
		title := strings.ToLower(p.Title)
		content := strings.ToLower(p.Content)
		concepts := strings.ToLower(strings.Join(p.Concepts, " "))
		score := 0
		for _, term := range terms {
			score += 2*strings.Count(title, term) + strings.Count(concepts, term) + strings.Count(content, term)
		}
		if score > 0 {
			hits = append(hits, scored{p, score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].paper.Title < hits[j].paper.Title
	})

	results := make([]Paper, 0, min(len(hits), l.limit))
	for _, h := range hits[:min(len(hits), l.limit)] {
		results = append(results, h.paper)
	}
	return results, nil
}

// RecommendPapers ranks other papers by shared concepts and citation links
// with the paper identified by paperID. A citation link in either direction
// counts double.
func (l *Library) RecommendPapers(ctx context.Context, paperID string) ([]Recommendation, error) {
	papers, err := l.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	var target *Paper
	for i := range papers {
		if papers[i].DOI == paperID {
			target = &papers[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("%w: %s", ErrPaperNotFound, paperID)
	}

	targetConcepts := lowerSet(target.Concepts)
	var recs []Recommendation
	for _, p := range papers {
		if p.DOI == target.DOI {
			continue
		}
		var shared []string
		for _, c := range p.Concepts {
			if targetConcepts[strings.ToLower(c)] {
				shared = append(shared, c)
			}
		}
		score := float64(len(shared))
		if cites(*target, p) || cites(p, *target) {
			score += 2
		}
		if score > 0 {
			recs = append(recs, Recommendation{DOI: p.DOI, Title: p.Title, Score: score, Shared: shared})
		}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].DOI < recs[j].DOI
	})
	if len(recs) > l.limit {
		recs = recs[:l.limit]
	}
	return recs, nil
}

// AnalyzeTrends counts concept mentions per ingestion month.
func (l *Library) AnalyzeTrends(ctx context.Context) (TrendSummary, error) {
	papers, err := l.store.Load(ctx)
	if err != nil {
		return TrendSummary{}, err
	}

	totals := make(map[string]int)
	perPeriod := make(map[string]map[string]int)
	for _, p := range papers {
		period := p.IngestedAt.UTC().Format("2006-01")
		if perPeriod[period] == nil {
			perPeriod[period] = make(map[string]int)
		}
		for _, c := range p.Concepts {
			totals[c]++
			perPeriod[period][c]++
		}
	}

	summary := TrendSummary{PaperCount: len(papers), TopConcepts: rankCounts(totals)}
	periods := make([]string, 0, len(perPeriod))
	for period := range perPeriod {
		periods = append(periods, period)
	}
	sort.Strings(periods)
	for _, period := range periods {
		summary.Periods = append(summary.Periods, PeriodTrend{Period: period, Concepts: rankCounts(perPeriod[period])})
	}
	return summary, nil
}

// rankCounts orders counts descending, ties broken alphabetically.
func rankCounts(counts map[string]int) []ConceptCount {
	out := make([]ConceptCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, ConceptCount{Concept: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Concept < out[j].Concept
	})
	return out
}

// cites reports whether a lists b among its citations, by DOI or title.
func cites(a, b Paper) bool {
	for _, ref := range a.Citations {
		if ref == b.DOI || (b.Title != "" && strings.EqualFold(ref, b.Title)) {
			return true
		}
	}
	return false
}

func lowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[strings.ToLower(it)] = true
	}
	return set
}
