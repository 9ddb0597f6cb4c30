package dashboard

import (
	"fmt"

	"github.com/agbru/litperf/internal/chart"
	"github.com/agbru/litperf/internal/format"
)

// Report headings.
const (
	Title        = "Cerebras Inference Performance"
	ChartHeading = chart.Title
	TableHeading = "Benchmark Results"
)

// SummaryStat is a single metric tile.
type SummaryStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SummaryTiles returns the illustrative metric tiles as two columns of two.
func SummaryTiles() [][]SummaryStat {
	return [][]SummaryStat{
		{
			{Label: "Avg. Paper Search Time", Value: "0.52 seconds"},
			{Label: "Recommendation Generation", Value: "0.37 seconds"},
		},
		{
			{Label: "Research Trend Analysis", Value: "0.64 seconds"},
			{Label: "Token Processing Speed", Value: "5000 tokens/sec"},
		},
	}
}

// Table is a rectangular table of display strings.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Results table columns.
const (
	ColumnMethod      = "Method"
	ColumnAverageTime = "Average Time (seconds)"
)

// benchmarkRows are the illustrative figures behind ResultsTable.
var benchmarkRows = []chart.BenchmarkEntry{
	{Method: "Paper Search", Time: 0.52},
	{Method: "Recommendations", Time: 0.37},
	{Method: "Trend Analysis", Time: 0.64},
}

// ResultsTable returns the illustrative benchmark table.
func ResultsTable() Table {
	return newTable(benchmarkRows, "%.2f")
}

func newTable(entries []chart.BenchmarkEntry, format string) Table {
	t := Table{Columns: []string{ColumnMethod, ColumnAverageTime}}
	for _, e := range entries {
		t.Rows = append(t.Rows, []string{e.Method, fmt.Sprintf(format, e.Time)})
	}
	return t
}

// measuredEntries converts successful results into chart entries.
func measuredEntries(results []OperationResult) []chart.BenchmarkEntry {
	entries := make([]chart.BenchmarkEntry, 0, len(results))
	for _, r := range Succeeded(results) {
		entries = append(entries, chart.BenchmarkEntry{Method: string(r.Name), Time: r.Duration.Seconds()})
	}
	return entries
}

// measuredTiles replaces the illustrative timings with measured ones. Tiles
// for failed operations show "n/a"; token throughput is not measured.
func measuredTiles(results []OperationResult) [][]SummaryStat {
	value := func(name OperationName) string {
		for _, r := range results {
			if r.Name == name && r.Err == nil {
				return format.Seconds(r.Duration, 3)
			}
		}
		return "n/a"
	}
	tiles := SummaryTiles()
	tiles[0][0].Value = value(PaperSearch)
	tiles[0][1].Value = value(RecommendationGeneration)
	tiles[1][0].Value = value(TrendAnalysis)
	return tiles
}
