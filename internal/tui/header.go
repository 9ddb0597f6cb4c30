package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/litperf/internal/format"
)

// HeaderModel renders the top bar: title, version, elapsed time and status.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
	}
}

// SetDone freezes the elapsed timer at the current time.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
}

// Reset restarts the elapsed timer.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header with status appended.
func (h HeaderModel) View(status string) string {
	titleText := "litperf"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	title := titleStyle.Render(titleText)
	pipe := versionStyle.Render(" | ")

	duration := time.Since(h.startTime)
	if !h.endTime.IsZero() {
		duration = h.endTime.Sub(h.startTime)
	}
	elapsed := versionStyle.Render(fmt.Sprintf("Elapsed: %s", format.ExecutionDuration(duration)))

	row := title + pipe + elapsed + pipe + status
	return headerStyle.Width(max(h.width, lipgloss.Width(row))).Render(row)
}
