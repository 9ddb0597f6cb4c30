package chart

import (
	"math"

	apperrors "github.com/agbru/litperf/internal/errors"
)

// Chart labels.
const (
	Title  = "Inference Speed Comparison"
	XLabel = "Method"
	YLabel = "Inference Time (seconds)"
)

// BenchmarkEntry is one (method, duration) pair. Time is in seconds.
type BenchmarkEntry struct {
	Method string  `json:"method" yaml:"method"`
	Time   float64 `json:"time" yaml:"time"`
}

// Bar is a single bar of a BarChart.
type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	// Color is a "#RRGGBB" string, shared by every bar with the same label.
	Color string `json:"color"`
}

// BarChart is the chart artifact handed to render surfaces.
type BarChart struct {
	Title      string `json:"title"`
	XLabel     string `json:"x_label"`
	YLabel     string `json:"y_label"`
	Bars       []Bar  `json:"bars"`
	ShowValues bool   `json:"show_values"`
}

// Labels returns the bar labels in order.
func (c BarChart) Labels() []string {
	labels := make([]string, len(c.Bars))
	for i, b := range c.Bars {
		labels[i] = b.Label
	}
	return labels
}

// Values returns the bar values in order.
func (c BarChart) Values() []float64 {
	values := make([]float64, len(c.Bars))
	for i, b := range c.Bars {
		values[i] = b.Value
	}
	return values
}

// Max returns the largest bar value, or 0 for an empty chart.
func (c BarChart) Max() float64 {
	m := 0.0
	for _, b := range c.Bars {
		m = math.Max(m, b.Value)
	}
	return m
}

// palette is the qualitative colour sequence assigned to methods in order of
// first appearance.
var palette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// DefaultEntries returns the illustrative comparison used when no entries are
// supplied. The slice is freshly allocated on every call.
func DefaultEntries() []BenchmarkEntry {
	return []BenchmarkEntry{
		{Method: "Cerebras Inference", Time: 0.5},
		{Method: "Traditional NLP Model", Time: 2.3},
		{Method: "Local Embedding Model", Time: 1.8},
	}
}

// BuildInferenceChart builds the inference speed comparison chart.
//
// A nil entries slice selects DefaultEntries; a non-nil empty slice yields a
// chart without bars. Duplicate labels produce duplicate bars sharing a colour.
// The input is never modified. A time that is NaN, infinite or negative cannot
// be plotted and yields a RenderError.
func BuildInferenceChart(entries []BenchmarkEntry) (BarChart, error) {
	if entries == nil {
		entries = DefaultEntries()
	}

	colors := make(map[string]string, len(entries))
	bars := make([]Bar, 0, len(entries))
	for i, e := range entries {
		if math.IsNaN(e.Time) || math.IsInf(e.Time, 0) || e.Time < 0 {
			return BarChart{}, apperrors.NewRenderError("chart",
				"entry %d (%q) has invalid time %v", i, e.Method, e.Time)
		}
		c, ok := colors[e.Method]
		if !ok {
			c = palette[len(colors)%len(palette)]
			colors[e.Method] = c
		}
		bars = append(bars, Bar{Label: e.Method, Value: e.Time, Color: c})
	}

	return BarChart{
		Title:      Title,
		XLabel:     XLabel,
		YLabel:     YLabel,
		Bars:       bars,
		ShowValues: true,
	}, nil
}
