package explorer

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/agbru/litperf/internal/errors"
)

func seededLibrary(t *testing.T) *Library {
	t.Helper()
	store := newTestStore(t)
	ctx := context.Background()
	march := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	april := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	for i, p := range SamplePapers() {
		p.IngestedAt = march
		if i >= 2 {
			p.IngestedAt = april
		}
		if _, err := store.Ingest(ctx, p); err != nil {
			t.Fatal(err)
		}
	}
	return NewLibrary(store)
}

func TestLibrary_SearchPapers(t *testing.T) {
	t.Parallel()
	lib := seededLibrary(t)

	papers, err := lib.SearchPapers(context.Background(), "Quantum Machine Learning")
	if err != nil {
		t.Fatalf("SearchPapers: %v", err)
	}
	if len(papers) == 0 {
		t.Fatal("expected matches")
	}
	if papers[0].DOI != "doi:example-paper-doi" {
		t.Errorf("expected the survey to rank first, got %s", papers[0].DOI)
	}
	for _, p := range papers {
		if p.DOI == "doi:demo-natural-language-processing" {
			t.Error("NLP paper should not match the quantum query")
		}
	}
}

func TestLibrary_SearchPapers_Limit(t *testing.T) {
	t.Parallel()
	lib := seededLibrary(t)
	lib.limit = 1

	papers, err := lib.SearchPapers(context.Background(), "learning")
	if err != nil {
		t.Fatal(err)
	}
	if len(papers) != 1 {
		t.Errorf("expected limit of 1, got %d", len(papers))
	}
}

func TestLibrary_SearchPapers_EmptyTopic(t *testing.T) {
	t.Parallel()
	lib := seededLibrary(t)
	_, err := lib.SearchPapers(context.Background(), "   ")
	var valErr apperrors.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestLibrary_RecommendPapers(t *testing.T) {
	t.Parallel()
	lib := seededLibrary(t)

	recs, err := lib.RecommendPapers(context.Background(), "doi:example-paper-doi")
	if err != nil {
		t.Fatalf("RecommendPapers: %v", err)
	}
	if len(recs) < 2 {
		t.Fatalf("expected at least 2 recommendations, got %d", len(recs))
	}
	for _, r := range recs {
		if r.DOI == "doi:example-paper-doi" {
			t.Error("a paper must not recommend itself")
		}
		if r.DOI == "doi:demo-natural-language-processing" {
			t.Error("unrelated paper should not be recommended")
		}
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Errorf("recommendations not sorted by score: %+v", recs)
		}
	}
}

func TestLibrary_RecommendPapers_NotFound(t *testing.T) {
	t.Parallel()
	lib := seededLibrary(t)
	_, err := lib.RecommendPapers(context.Background(), "doi:missing")
	if !errors.Is(err, ErrPaperNotFound) {
		t.Fatalf("expected ErrPaperNotFound, got %v", err)
	}
}

func TestLibrary_AnalyzeTrends(t *testing.T) {
	t.Parallel()
	lib := seededLibrary(t)

	summary, err := lib.AnalyzeTrends(context.Background())
	if err != nil {
		t.Fatalf("AnalyzeTrends: %v", err)
	}
	if summary.PaperCount != len(SamplePapers()) {
		t.Errorf("PaperCount = %d", summary.PaperCount)
	}
	if len(summary.Periods) != 2 || summary.Periods[0].Period != "2024-03" || summary.Periods[1].Period != "2024-04" {
		t.Errorf("unexpected periods: %+v", summary.Periods)
	}
	if len(summary.TopConcepts) == 0 {
		t.Fatal("expected top concepts")
	}
	top := summary.TopConcepts[0]
	if top.Count != 2 {
		t.Errorf("expected top concept count 2, got %+v", top)
	}
}

func TestLibrary_AnalyzeTrends_Empty(t *testing.T) {
	t.Parallel()
	lib := NewLibrary(newTestStore(t))
	summary, err := lib.AnalyzeTrends(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if summary.PaperCount != 0 || len(summary.Periods) != 0 {
		t.Errorf("expected empty summary, got %+v", summary)
	}
}
