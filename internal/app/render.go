package app

import (
	"context"
	"io"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/agbru/litperf/internal/chart"
	"github.com/agbru/litperf/internal/config"
	"github.com/agbru/litperf/internal/dashboard"
	apperrors "github.com/agbru/litperf/internal/errors"
	"github.com/agbru/litperf/internal/explorer"
	"github.com/agbru/litperf/internal/logging"
	"github.com/agbru/litperf/internal/metrics"
	"github.com/agbru/litperf/internal/surface"
)

// chartCapture forwards every call to the wrapped surface and keeps the last
// chart so it can be exported after the render.
type chartCapture struct {
	dashboard.Surface
	chart *chart.BarChart
}

func (c *chartCapture) Chart(b chart.BarChart) {
	c.chart = &b
	c.Surface.Chart(b)
}

// render draws the dashboard in the configured format.
func (a *Application) render(ctx context.Context, ex explorer.Explorer, m *metrics.Metrics, out io.Writer) int {
	opts := a.dashboardOptions(m)

	if a.Config.Format == config.FormatTUI {
		if len(a.Config.ChartOut) > 0 {
			a.Logger.Info("chart export is skipped in tui mode")
		}
		code := a.runTUI(ctx, ex, Version, opts...)
		m.RenderCompleted()
		return code
	}

	var rec *surface.Recorder
	var target dashboard.Surface
	if a.Config.Format == config.FormatJSON {
		rec = surface.NewRecorder()
		target = rec
	} else {
		target = a.newTerminal(out)
	}
	capture := &chartCapture{Surface: target}

	results, err := dashboard.RenderPerformanceDashboard(ctx, ex, capture, opts...)
	m.RenderCompleted()
	if err != nil {
		a.Logger.Error("dashboard render failed", err)
		return apperrors.ExitCodeFor(err)
	}

	if rec != nil {
		if err := surface.NewReport(rec, results, time.Now()).WriteJSON(out); err != nil {
			a.Logger.Error("cannot write report", err)
			return apperrors.ExitErrorGeneric
		}
	}

	if len(a.Config.ChartOut) > 0 && capture.chart != nil {
		if err := chart.ExportAll(ctx, *capture.chart, a.Config.ChartOut...); err != nil {
			a.Logger.Error("chart export failed", err)
			return apperrors.ExitCodeFor(err)
		}
		a.Logger.Info("chart exported", logging.Int("files", len(a.Config.ChartOut)))
	}

	if ctx.Err() != nil {
		return apperrors.ExitErrorCanceled
	}
	return apperrors.ExitSuccess
}

func (a *Application) dashboardOptions(m *metrics.Metrics) []dashboard.Option {
	opts := []dashboard.Option{
		dashboard.WithObserver(m),
		dashboard.WithObserver(dashboard.ObserverFunc(a.logResult)),
	}
	if a.Config.Measured {
		opts = append(opts, dashboard.WithMeasuredTimings())
	}
	return opts
}

func (a *Application) logResult(r dashboard.OperationResult) {
	fields := []logging.Field{
		logging.String("operation", string(r.Name)),
		logging.Duration("duration", r.Duration),
	}
	if r.Err != nil {
		a.Logger.Error("operation failed", r.Err, fields...)
		return
	}
	a.Logger.Info("operation succeeded", fields...)
}

func (a *Application) newTerminal(out io.Writer) *surface.Terminal {
	opts := []surface.TerminalOption{surface.WithWidth(a.Config.Width)}
	if !a.Config.Quiet && a.isTerminal(a.ErrWriter) {
		opts = append(opts, surface.WithProgress(a.ErrWriter))
	}
	return surface.NewTerminal(out, opts...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
