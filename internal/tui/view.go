package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/litperf/internal/surface"
)

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	header := m.header.View(m.statusView())
	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), m.footerView())
}

func (m Model) statusView() string {
	switch {
	case m.running && m.label != "":
		return m.spinner.View() + " " + m.label
	case m.running:
		return m.spinner.View() + " rendering"
	case m.err != nil:
		return statusErrorStyle.Render("render failed: " + m.err.Error())
	default:
		return statusDoneStyle.Render("done")
	}
}

func (m Model) footerView() string {
	help := m.keymap.ShortHelp()
	parts := make([]string, 0, len(help))
	for _, b := range help {
		h := b.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, "  ")
}

// refreshContent re-renders the report into the viewport.
func (m *Model) refreshContent() {
	m.viewport.SetContent(m.renderReport())
}

// renderReport draws the recorded blocks with the terminal renderer. Detail
// panels are drawn last, collapsed unless toggled open.
func (m Model) renderReport() string {
	var sb strings.Builder
	opts := []surface.TerminalOption{surface.WithRenderer(lipgloss.DefaultRenderer())}
	if m.width > 0 {
		opts = append(opts, surface.WithWidth(m.width))
	}
	term := surface.NewTerminal(&sb, opts...)

	var panels []surface.Block
	var body []surface.Block
	for _, b := range m.blocks {
		switch b.Kind {
		case surface.KindExpander:
			panels = append(panels, b)
		case surface.KindProgress:
		default:
			body = append(body, b)
		}
	}
	surface.Replay(term, body)

	if len(panels) > 0 {
		sb.WriteString("\n")
	}
	for i, p := range panels {
		cursor := "  "
		style := panelTitleStyle
		if i == m.selected {
			cursor = "> "
			style = panelSelectedStyle
		}
		if i < len(m.expanded) && m.expanded[i] {
			var panel strings.Builder
			surface.NewTerminal(&panel, opts...).Expander(p.Title, p.Payload)
			sb.WriteString(cursor + strings.TrimLeft(panel.String(), "\n"))
			continue
		}
		sb.WriteString(cursor + style.Render("▸ "+p.Title) + "\n")
	}
	return sb.String()
}
