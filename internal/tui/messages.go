package tui

import (
	"github.com/agbru/litperf/internal/dashboard"
	"github.com/agbru/litperf/internal/surface"
)

// BlockMsg carries one report element from the render goroutine.
type BlockMsg struct {
	Block      surface.Block
	Generation uint64
}

// ProgressMsg starts (Done=false) or ends an in-progress indicator.
type ProgressMsg struct {
	Label      string
	Done       bool
	Generation uint64
}

// RenderCompleteMsg is sent when RenderPerformanceDashboard returns.
type RenderCompleteMsg struct {
	Results    []dashboard.OperationResult
	Err        error
	Generation uint64
}

// ContextCancelledMsg is sent when the parent context is cancelled.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
