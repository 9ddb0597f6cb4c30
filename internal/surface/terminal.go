package surface

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/agbru/litperf/internal/chart"
	"github.com/agbru/litperf/internal/dashboard"
	"github.com/agbru/litperf/internal/ui"
)

// Layout defaults.
const (
	DefaultWidth    = 80
	DefaultBarWidth = 40
	tileWidth       = 32
	barGlyph        = "█"
)

// Terminal is a Surface that writes a styled text report to an io.Writer.
// Colours degrade to the capabilities of the writer; a plain buffer gets
// unstyled text.
type Terminal struct {
	out        io.Writer
	styles     styles
	width      int
	barWidth   int
	newSpinner func() Spinner
	renderer   *lipgloss.Renderer
	err        error
}

// Verify interface compliance.
var _ dashboard.Surface = (*Terminal)(nil)

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithWidth sets the wrap width of panels.
func WithWidth(width int) TerminalOption {
	return func(t *Terminal) {
		if width > 0 {
			t.width = width
		}
	}
}

// WithProgress enables an animated in-progress indicator drawn to w.
func WithProgress(w io.Writer) TerminalOption {
	return func(t *Terminal) {
		t.newSpinner = func() Spinner { return NewSpinner(w) }
	}
}

// WithRenderer renders styles with r instead of a renderer detected from
// the output writer.
func WithRenderer(r *lipgloss.Renderer) TerminalOption {
	return func(t *Terminal) { t.renderer = r }
}

// NewTerminal creates a Terminal writing to out with the current ui theme.
func NewTerminal(out io.Writer, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		out:      out,
		width:    DefaultWidth,
		barWidth: DefaultBarWidth,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.renderer == nil {
		t.renderer = lipgloss.NewRenderer(out)
	}
	t.styles = newStyles(t.renderer, ui.GetCurrentTheme())
	return t
}

type styles struct {
	renderer  *lipgloss.Renderer
	header    lipgloss.Style
	subheader lipgloss.Style
	tile      lipgloss.Style
	tileLabel lipgloss.Style
	tileValue lipgloss.Style
	axis      lipgloss.Style
	colHeader lipgloss.Style
	panel     lipgloss.Style
	panelHead lipgloss.Style
	errorText lipgloss.Style
}

func newStyles(r *lipgloss.Renderer, th ui.Theme) styles {
	return styles{
		renderer:  r,
		header:    r.NewStyle().Bold(true).Foreground(th.Accent),
		subheader: r.NewStyle().Bold(true).Foreground(th.Text),
		tile: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(th.Border).
			Padding(0, 1).
			Width(tileWidth),
		tileLabel: r.NewStyle().Foreground(th.Dim),
		tileValue: r.NewStyle().Bold(true).Foreground(th.Info),
		axis:      r.NewStyle().Foreground(th.Dim),
		colHeader: r.NewStyle().Bold(true).Foreground(th.Text),
		panel: r.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(th.Border).
			Padding(0, 1),
		panelHead: r.NewStyle().Bold(true).Foreground(th.Accent),
		errorText: r.NewStyle().Bold(true).Foreground(th.Error),
	}
}

// write keeps the first write failure and drops everything after it.
func (t *Terminal) write(s string) {
	if t.err != nil {
		return
	}
	_, t.err = io.WriteString(t.out, s)
}

func (t *Terminal) writeln(s string) { t.write(s + "\n") }

// Err returns the first output failure.
func (t *Terminal) Err() error { return t.err }

// Header writes the page title underlined with a rule.
func (t *Terminal) Header(title string) {
	t.writeln(t.styles.header.Render(title))
	t.writeln(t.styles.axis.Render(strings.Repeat("═", lipgloss.Width(title))))
	t.writeln("")
}

// Subheader writes a section heading.
func (t *Terminal) Subheader(title string) {
	t.writeln("")
	t.writeln(t.styles.subheader.Render(title))
	t.writeln(t.styles.axis.Render(strings.Repeat("─", lipgloss.Width(title))))
}

// MetricGrid draws each column as a stack of bordered tiles and joins the
// columns side by side.
func (t *Terminal) MetricGrid(columns [][]dashboard.SummaryStat) {
	rendered := make([]string, 0, len(columns))
	for _, col := range columns {
		tiles := make([]string, 0, len(col))
		for _, stat := range col {
			body := t.styles.tileLabel.Render(stat.Label) + "\n" + t.styles.tileValue.Render(stat.Value)
			tiles = append(tiles, t.styles.tile.Render(body))
		}
		rendered = append(rendered, lipgloss.JoinVertical(lipgloss.Left, tiles...))
	}
	t.writeln(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}

// Chart draws horizontal bars scaled to the largest value. The title is
// left to the preceding subheader.
func (t *Terminal) Chart(c chart.BarChart) {
	if len(c.Bars) == 0 {
		t.writeln(t.styles.axis.Render("(no data)"))
		return
	}

	labelWidth := 0
	for _, b := range c.Bars {
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
	}
	peak := c.Max()
	for _, b := range c.Bars {
		n := 0
		if peak > 0 {
			n = int(math.Round(b.Value / peak * float64(t.barWidth)))
		}
		bar := t.styles.renderer.NewStyle().Foreground(lipgloss.Color(b.Color)).Render(strings.Repeat(barGlyph, n))
		line := padRight(b.Label, labelWidth) + " │ " + bar
		if c.ShowValues {
			line += fmt.Sprintf(" %.2f", b.Value)
		}
		t.writeln(line)
	}
	t.writeln(t.styles.axis.Render(fmt.Sprintf("x: %s   y: %s", c.XLabel, c.YLabel)))
}

// Table writes aligned columns with a header rule.
func (t *Terminal) Table(tbl dashboard.Table) {
	widths := make([]int, len(tbl.Columns))
	for i, col := range tbl.Columns {
		widths[i] = lipgloss.Width(col)
	}
	for _, row := range tbl.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	cells := make([]string, len(tbl.Columns))
	rules := make([]string, len(tbl.Columns))
	for i, col := range tbl.Columns {
		cells[i] = t.styles.colHeader.Render(padRight(col, widths[i]))
		rules[i] = strings.Repeat("─", widths[i])
	}
	t.writeln(strings.Join(cells, "  "))
	t.writeln(t.styles.axis.Render(strings.Join(rules, "  ")))
	for _, row := range tbl.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			if i < len(widths) {
				v = padRight(v, widths[i])
			}
			cells[i] = v
		}
		t.writeln(strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

// Expander writes a bordered panel titled label whose body is the YAML
// rendering of payload.
func (t *Terminal) Expander(label string, payload any) {
	body, err := encodeYAML(payload)
	if err != nil {
		if t.err == nil {
			t.err = fmt.Errorf("panel %q: %w", label, err)
		}
		return
	}
	inner := max(t.width-4, 10)
	body = wrapYAML(strings.TrimRight(body, "\n"), inner)
	t.writeln("")
	t.writeln(t.styles.panelHead.Render("▾ " + label))
	t.writeln(t.styles.panel.Render(body))
}

// Error writes a highlighted error line.
func (t *Terminal) Error(message string) {
	t.writeln(t.styles.errorText.Render("✗ " + message))
}

// InProgress runs work, animating a spinner labelled with label when
// progress output is enabled.
func (t *Terminal) InProgress(label string, work func()) {
	if t.newSpinner == nil {
		work()
		return
	}
	s := t.newSpinner()
	s.UpdateSuffix(" " + label)
	s.Start()
	defer s.Stop()
	work()
}

// encodeYAML marshals v, converting encoder panics on unsupported types into
// errors.
func encodeYAML(v any) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("encoding payload: %v", r)
		}
	}()
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding payload: %w", err)
	}
	return string(b), nil
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
