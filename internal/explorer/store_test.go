package explorer

import (
	"context"
	"reflect"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(":memory:")
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_IngestLoadRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)
	at := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	in := Paper{
		DOI:        "doi:1",
		Title:      "Deep Learning Advances",
		Authors:    []string{"Ada", "Grace"},
		Content:    "content",
		Citations:  []string{"Paper1", "Paper2"},
		Concepts:   []string{"deep learning", "neural networks"},
		Source:     "Demo Source",
		IngestedAt: at,
	}
	res, err := store.Ingest(ctx, in)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if res.Status != "success" || res.DOI != "doi:1" || res.Title != in.Title {
		t.Errorf("unexpected ingest result %+v", res)
	}

	papers, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(papers) != 1 {
		t.Fatalf("expected 1 paper, got %d", len(papers))
	}
	if !reflect.DeepEqual(papers[0], in) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", papers[0], in)
	}
}

func TestStore_IngestReplacesByDOI(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newTestStore(t)

	store.Ingest(ctx, Paper{DOI: "doi:1", Title: "first"})
	store.Ingest(ctx, Paper{DOI: "doi:1", Title: "second"})

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected replace semantics, got %d papers", n)
	}
	papers, _ := store.Load(ctx)
	if papers[0].Title != "second" {
		t.Errorf("expected latest title, got %q", papers[0].Title)
	}
}

func TestStore_IngestWithoutDOI(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	res, err := store.Ingest(context.Background(), Paper{Title: "anonymous"})
	if err != nil {
		t.Fatal(err)
	}
	if res.DOI != "unknown" {
		t.Errorf("expected DOI 'unknown', got %q", res.DOI)
	}
}

func TestStore_IngestUsesClockWhenUnset(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	store.Ingest(context.Background(), Paper{DOI: "doi:clock"})
	papers, _ := store.Load(context.Background())
	if !papers[0].IngestedAt.Equal(fixed) {
		t.Errorf("IngestedAt = %v, want %v", papers[0].IngestedAt, fixed)
	}
}

func TestSplitList(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a, b,,c ", []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitList(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSeedSamples(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	n, err := SeedSamples(context.Background(), store)
	if err != nil {
		t.Fatal(err)
	}
	count, _ := store.Count(context.Background())
	if n != len(SamplePapers()) || count != n {
		t.Errorf("seeded %d, stored %d, want %d", n, count, len(SamplePapers()))
	}
}
