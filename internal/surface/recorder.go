package surface

import (
	"sync"

	"github.com/agbru/litperf/internal/chart"
	"github.com/agbru/litperf/internal/dashboard"
)

// BlockKind identifies the surface call that produced a Block.
type BlockKind string

// Block kinds, one per Surface method.
const (
	KindHeader    BlockKind = "header"
	KindSubheader BlockKind = "subheader"
	KindMetrics   BlockKind = "metrics"
	KindChart     BlockKind = "chart"
	KindTable     BlockKind = "table"
	KindExpander  BlockKind = "expander"
	KindError     BlockKind = "error"
	KindProgress  BlockKind = "progress"
)

// Block is one recorded element of the report.
type Block struct {
	Kind    BlockKind                 `json:"kind"`
	Title   string                    `json:"title,omitempty"`
	Message string                    `json:"message,omitempty"`
	Metrics [][]dashboard.SummaryStat `json:"metrics,omitempty"`
	Chart   *chart.BarChart           `json:"chart,omitempty"`
	Table   *dashboard.Table          `json:"table,omitempty"`
	Payload any                       `json:"payload,omitempty"`
}

// Recorder is a Surface that stores every call in order. It is safe for
// concurrent use.
type Recorder struct {
	mu     sync.Mutex
	blocks []Block
}

// Verify interface compliance.
var _ dashboard.Surface = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(b Block) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blocks = append(r.blocks, b)
}

// Header records a header block.
func (r *Recorder) Header(title string) { r.add(Block{Kind: KindHeader, Title: title}) }

// Subheader records a subheader block.
func (r *Recorder) Subheader(title string) { r.add(Block{Kind: KindSubheader, Title: title}) }

// MetricGrid records the metric tiles.
func (r *Recorder) MetricGrid(columns [][]dashboard.SummaryStat) {
	r.add(Block{Kind: KindMetrics, Metrics: columns})
}

// Chart records the chart.
func (r *Recorder) Chart(c chart.BarChart) { r.add(Block{Kind: KindChart, Chart: &c}) }

// Table records the table.
func (r *Recorder) Table(t dashboard.Table) { r.add(Block{Kind: KindTable, Table: &t}) }

// Expander records a detail panel.
func (r *Recorder) Expander(label string, payload any) {
	r.add(Block{Kind: KindExpander, Title: label, Payload: payload})
}

// Error records an error message.
func (r *Recorder) Error(message string) { r.add(Block{Kind: KindError, Message: message}) }

// InProgress records the label and runs work.
func (r *Recorder) InProgress(label string, work func()) {
	r.add(Block{Kind: KindProgress, Title: label})
	work()
}

// Err always returns nil: recording cannot fail.
func (r *Recorder) Err() error { return nil }

// Blocks returns a copy of the recorded blocks.
func (r *Recorder) Blocks() []Block {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Block, len(r.blocks))
	copy(out, r.blocks)
	return out
}

// Count returns how many blocks of the given kind were recorded.
func (r *Recorder) Count(kind BlockKind) int {
	n := 0
	for _, b := range r.Blocks() {
		if b.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the recorded blocks of the given kind.
func (r *Recorder) Filter(kind BlockKind) []Block {
	var out []Block
	for _, b := range r.Blocks() {
		if b.Kind == kind {
			out = append(out, b)
		}
	}
	return out
}

// Reset discards all recorded blocks.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.blocks = nil
}

// Replay issues the surface call recorded in each block against s. Progress
// blocks are replayed with no work.
func Replay(s dashboard.Surface, blocks []Block) {
	for _, b := range blocks {
		switch b.Kind {
		case KindHeader:
			s.Header(b.Title)
		case KindSubheader:
			s.Subheader(b.Title)
		case KindMetrics:
			s.MetricGrid(b.Metrics)
		case KindChart:
			if b.Chart != nil {
				s.Chart(*b.Chart)
			}
		case KindTable:
			if b.Table != nil {
				s.Table(*b.Table)
			}
		case KindExpander:
			s.Expander(b.Title, b.Payload)
		case KindError:
			s.Error(b.Message)
		case KindProgress:
			s.InProgress(b.Title, func() {})
		}
	}
}
