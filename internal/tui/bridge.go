package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/litperf/internal/chart"
	"github.com/agbru/litperf/internal/dashboard"
	"github.com/agbru/litperf/internal/surface"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the render goroutine can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// bridgeSurface implements dashboard.Surface by forwarding every call as a
// message tagged with the render generation.
type bridgeSurface struct {
	send       func(tea.Msg)
	generation uint64
}

// Verify interface compliance.
var _ dashboard.Surface = (*bridgeSurface)(nil)

func (b *bridgeSurface) block(blk surface.Block) {
	b.send(BlockMsg{Block: blk, Generation: b.generation})
}

func (b *bridgeSurface) Header(title string) {
	b.block(surface.Block{Kind: surface.KindHeader, Title: title})
}

func (b *bridgeSurface) Subheader(title string) {
	b.block(surface.Block{Kind: surface.KindSubheader, Title: title})
}

func (b *bridgeSurface) MetricGrid(columns [][]dashboard.SummaryStat) {
	b.block(surface.Block{Kind: surface.KindMetrics, Metrics: columns})
}

func (b *bridgeSurface) Chart(c chart.BarChart) {
	b.block(surface.Block{Kind: surface.KindChart, Chart: &c})
}

func (b *bridgeSurface) Table(t dashboard.Table) {
	b.block(surface.Block{Kind: surface.KindTable, Table: &t})
}

func (b *bridgeSurface) Expander(label string, payload any) {
	b.block(surface.Block{Kind: surface.KindExpander, Title: label, Payload: payload})
}

func (b *bridgeSurface) Error(message string) {
	b.block(surface.Block{Kind: surface.KindError, Message: message})
}

// InProgress brackets work with progress messages so the model can show a
// spinner with label.
func (b *bridgeSurface) InProgress(label string, work func()) {
	b.send(ProgressMsg{Label: label, Generation: b.generation})
	work()
	b.send(ProgressMsg{Done: true, Generation: b.generation})
}

func (b *bridgeSurface) Err() error { return nil }
