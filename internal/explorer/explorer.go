//go:generate mockgen -source=explorer.go -destination=mocks/mock_explorer.go -package=mocks

package explorer

import (
	"context"
	"errors"
	"time"
)

// ErrPaperNotFound is returned when a paper identifier is not in the library.
var ErrPaperNotFound = errors.New("paper not found")

// Explorer is the capability monitored by the performance dashboard.
type Explorer interface {
	// SearchPapers returns papers relevant to a research topic.
	SearchPapers(ctx context.Context, topic string) ([]Paper, error)
	// RecommendPapers returns papers related to the paper with the given DOI.
	RecommendPapers(ctx context.Context, paperID string) ([]Recommendation, error)
	// AnalyzeTrends summarises concept frequencies across the library.
	AnalyzeTrends(ctx context.Context) (TrendSummary, error)
}

// Paper is a scientific paper held by the library.
type Paper struct {
	DOI        string    `json:"doi" yaml:"doi"`
	Title      string    `json:"title" yaml:"title"`
	Authors    []string  `json:"authors,omitempty" yaml:"authors,omitempty"`
	Content    string    `json:"content,omitempty" yaml:"content,omitempty"`
	Citations  []string  `json:"citations,omitempty" yaml:"citations,omitempty"`
	Concepts   []string  `json:"concepts,omitempty" yaml:"concepts,omitempty"`
	Source     string    `json:"source,omitempty" yaml:"source,omitempty"`
	IngestedAt time.Time `json:"ingested_at" yaml:"ingested_at"`
}

// Recommendation is a paper related to a reference paper.
type Recommendation struct {
	DOI    string   `json:"doi" yaml:"doi"`
	Title  string   `json:"title" yaml:"title"`
	Score  float64  `json:"score" yaml:"score"`
	Shared []string `json:"shared,omitempty" yaml:"shared,omitempty"`
}

// ConceptCount is the number of papers mentioning a concept.
type ConceptCount struct {
	Concept string `json:"concept" yaml:"concept"`
	Count   int    `json:"count" yaml:"count"`
}

// PeriodTrend holds concept counts for one ingestion month ("2006-01").
type PeriodTrend struct {
	Period   string         `json:"period" yaml:"period"`
	Concepts []ConceptCount `json:"concepts" yaml:"concepts"`
}

// TrendSummary is the result of a research trend analysis.
type TrendSummary struct {
	PaperCount  int            `json:"paper_count" yaml:"paper_count"`
	TopConcepts []ConceptCount `json:"top_concepts" yaml:"top_concepts"`
	Periods     []PeriodTrend  `json:"periods" yaml:"periods"`
}
