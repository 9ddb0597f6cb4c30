package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/litperf/internal/dashboard"
	apperrors "github.com/agbru/litperf/internal/errors"
	"github.com/agbru/litperf/internal/explorer"
	"github.com/agbru/litperf/internal/surface"
)

// ExecutionState holds the execution-related fields of a TUI session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	generation uint64
	running    bool
	label      string
	results    []dashboard.OperationResult
	err        error
	exitCode   int
}

// Model is the root bubbletea model for the TUI dashboard.
type Model struct {
	header   HeaderModel
	spinner  spinner.Model
	viewport viewport.Model
	keymap   KeyMap

	ExecutionState

	width  int
	height int

	blocks   []surface.Block
	expanded []bool
	selected int

	parentCtx context.Context
	explorer  explorer.Explorer
	opts      []dashboard.Option
	ref       *programRef
}

// NewModel creates a new TUI model. The render starts when the program
// calls Init.
func NewModel(parentCtx context.Context, ex explorer.Explorer, version string, opts ...dashboard.Option) Model {
	ctx, cancel := context.WithCancel(parentCtx)
	return Model{
		header:   NewHeaderModel(version),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(statusRunningStyle)),
		viewport: viewport.New(0, 0),
		keymap:   DefaultKeyMap(),
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			running:  true,
			exitCode: apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		explorer:  ex,
		opts:      opts,
		ref:       &programRef{},
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		startRenderCmd(m.ref, m.ctx, m.explorer, m.generation, m.opts),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(m.width)
		m.viewport.Width = m.width
		m.viewport.Height = max(m.height-headerHeight-footerHeight, minBodyHeight)
		m.refreshContent()
		return m, nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ProgressMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a previous render
		}
		m.label = msg.Label
		if msg.Done {
			m.label = ""
		}
		return m, nil

	case BlockMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.blocks = append(m.blocks, msg.Block)
		if msg.Block.Kind == surface.KindExpander {
			m.expanded = append(m.expanded, false)
		}
		m.refreshContent()
		return m, nil

	case RenderCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.running = false
		m.label = ""
		m.results = msg.Results
		m.err = msg.Err
		if msg.Err != nil {
			m.exitCode = apperrors.ExitCodeFor(msg.Err)
		}
		m.header.SetDone()
		m.refreshContent()
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.running = false
		m.exitCode = apperrors.ExitErrorCanceled
		m.header.SetDone()
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		if m.selected > 0 {
			m.selected--
			m.refreshContent()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		if m.selected < len(m.expanded)-1 {
			m.selected++
			m.refreshContent()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Toggle):
		if m.selected < len(m.expanded) {
			expanded := make([]bool, len(m.expanded))
			copy(expanded, m.expanded)
			expanded[m.selected] = !expanded[m.selected]
			m.expanded = expanded
			m.refreshContent()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Rerun):
		return m.rerun()

	case key.Matches(msg, m.keymap.PageUp), key.Matches(msg, m.keymap.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

// rerun cancels the current render and starts a new generation.
func (m Model) rerun() (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	m.generation++
	ctx, cancel := context.WithCancel(m.parentCtx)
	m.ctx = ctx
	m.cancel = cancel

	m.header.Reset()
	m.blocks = nil
	m.expanded = nil
	m.selected = 0
	m.running = true
	m.label = ""
	m.results = nil
	m.err = nil
	m.exitCode = apperrors.ExitSuccess
	m.refreshContent()

	return m, tea.Batch(
		m.spinner.Tick,
		startRenderCmd(m.ref, m.ctx, m.explorer, m.generation, m.opts),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Layout constants for the TUI dashboard.
const (
	headerHeight  = 1
	footerHeight  = 1
	minBodyHeight = 4
)

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, ex explorer.Explorer, version string, opts ...dashboard.Option) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, ex, version, opts...)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so the render can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startRenderCmd returns a tea.Cmd that renders the dashboard through a
// bridge surface.
func startRenderCmd(ref *programRef, ctx context.Context, ex explorer.Explorer, gen uint64, opts []dashboard.Option) tea.Cmd {
	return func() tea.Msg {
		s := &bridgeSurface{send: ref.Send, generation: gen}
		results, err := dashboard.RenderPerformanceDashboard(ctx, ex, s, opts...)
		return RenderCompleteMsg{Results: results, Err: err, Generation: gen}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
