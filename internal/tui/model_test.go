package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/litperf/internal/errors"
	"github.com/agbru/litperf/internal/explorer"
	"github.com/agbru/litperf/internal/surface"
)

type stubExplorer struct{}

func (stubExplorer) SearchPapers(context.Context, string) ([]explorer.Paper, error) {
	return []explorer.Paper{{Title: "paper1"}}, nil
}

func (stubExplorer) RecommendPapers(context.Context, string) ([]explorer.Recommendation, error) {
	return nil, errors.New("network error")
}

func (stubExplorer) AnalyzeTrends(context.Context) (explorer.TrendSummary, error) {
	return explorer.TrendSummary{PaperCount: 1}, nil
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(context.Background(), stubExplorer{}, "v1.0.0")
	t.Cleanup(m.cancel)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestModel_ViewBeforeSize(t *testing.T) {
	m := NewModel(context.Background(), stubExplorer{}, "dev")
	defer m.cancel()
	if m.View() != "Initializing..." {
		t.Errorf("unexpected initial view %q", m.View())
	}
}

func TestModel_StartRenderCmd(t *testing.T) {
	m := newTestModel(t)
	msg := startRenderCmd(m.ref, m.ctx, m.explorer, m.generation, nil)()

	done, ok := msg.(RenderCompleteMsg)
	if !ok {
		t.Fatalf("expected RenderCompleteMsg, got %T", msg)
	}
	if done.Err != nil || len(done.Results) != 3 {
		t.Errorf("unexpected completion %+v", done)
	}
}

func TestModel_BlocksAndCompletion(t *testing.T) {
	m := newTestModel(t)

	m, _ = send(t, m, ProgressMsg{Label: "Measuring Paper Search performance..."})
	if !strings.Contains(m.View(), "Measuring Paper Search performance...") {
		t.Error("status should show the in-progress label")
	}

	m, _ = send(t, m, BlockMsg{Block: surface.Block{Kind: surface.KindHeader, Title: "Cerebras Inference Performance"}})
	m, _ = send(t, m, BlockMsg{Block: surface.Block{Kind: surface.KindError, Message: "Error in Recommendation Generation: network error"}})
	m, _ = send(t, m, BlockMsg{Block: surface.Block{Kind: surface.KindExpander, Title: "Paper Search", Payload: []string{"paper1"}}})
	m, _ = send(t, m, BlockMsg{Block: surface.Block{Kind: surface.KindExpander, Title: "Research Trend Analysis", Payload: map[string]string{"trend": "up"}}})
	m, _ = send(t, m, RenderCompleteMsg{})

	if m.running {
		t.Error("model should not be running after completion")
	}
	if len(m.expanded) != 2 {
		t.Fatalf("expected 2 panels, got %d", len(m.expanded))
	}
	view := m.View()
	for _, want := range []string{"Cerebras Inference Performance", "network error", "▸ Paper Search", "▸ Research Trend Analysis", "done"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModel_StaleMessagesIgnored(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, BlockMsg{Block: surface.Block{Kind: surface.KindHeader}, Generation: 5})
	m, _ = send(t, m, RenderCompleteMsg{Generation: 5})
	if len(m.blocks) != 0 || !m.running {
		t.Error("messages from another generation must be ignored")
	}
}

func TestModel_TogglePanels(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, BlockMsg{Block: surface.Block{Kind: surface.KindExpander, Title: "Paper Search", Payload: map[string]string{"title": "paper1"}}})
	m, _ = send(t, m, BlockMsg{Block: surface.Block{Kind: surface.KindExpander, Title: "Research Trend Analysis", Payload: map[string]string{"trend": "up"}}})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.selected != 1 {
		t.Fatalf("selected = %d, want 1", m.selected)
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.selected != 1 {
		t.Errorf("selection should stop at the last panel")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.expanded[1] || m.expanded[0] {
		t.Fatalf("expanded = %v", m.expanded)
	}
	if !strings.Contains(m.renderReport(), "trend: up") {
		t.Errorf("expanded panel should show its payload:\n%s", m.renderReport())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.expanded[1] {
		t.Error("space should collapse the panel again")
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.selected != 0 {
		t.Errorf("selected = %d, want 0", m.selected)
	}
}

func TestModel_ToggleSharesNoState(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, BlockMsg{Block: surface.Block{Kind: surface.KindExpander, Title: "A"}})
	before := m
	after, _ := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if before.expanded[0] || !after.expanded[0] {
		t.Error("toggling must not mutate the previous model value")
	}
}

func TestModel_Rerun(t *testing.T) {
	m := newTestModel(t)
	m, _ = send(t, m, BlockMsg{Block: surface.Block{Kind: surface.KindExpander, Title: "A"}})
	m, _ = send(t, m, RenderCompleteMsg{Err: apperrors.RenderError{Component: "chart", Cause: errors.New("bad")}})
	if m.exitCode != apperrors.ExitErrorRender {
		t.Fatalf("exitCode = %d", m.exitCode)
	}

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if cmd == nil {
		t.Fatal("rerun should return commands")
	}
	if m.generation != 1 || !m.running || len(m.blocks) != 0 || m.exitCode != apperrors.ExitSuccess {
		t.Errorf("rerun did not reset state: gen=%d running=%v blocks=%d exit=%d",
			m.generation, m.running, len(m.blocks), m.exitCode)
	}

	// Completion of the old generation is ignored.
	m, _ = send(t, m, RenderCompleteMsg{Generation: 0})
	if !m.running {
		t.Error("stale completion must not finish the new render")
	}
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.ctx.Err() == nil {
		t.Error("quit should cancel the render context")
	}
}

func TestModel_ContextCancelled(t *testing.T) {
	m := newTestModel(t)
	m, cmd := send(t, m, ContextCancelledMsg{Err: context.Canceled})
	if m.exitCode != apperrors.ExitErrorCanceled {
		t.Errorf("exitCode = %d", m.exitCode)
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}
