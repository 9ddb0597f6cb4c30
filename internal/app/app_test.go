package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/litperf/internal/dashboard"
	apperrors "github.com/agbru/litperf/internal/errors"
	"github.com/agbru/litperf/internal/explorer"
	"github.com/agbru/litperf/internal/explorer/mocks"
	"github.com/agbru/litperf/internal/logging"
	"github.com/agbru/litperf/internal/surface"
)

func newTestApp(t *testing.T, args []string, opts ...AppOption) *Application {
	t.Helper()
	opts = append([]AppOption{WithLogger(logging.Nop())}, opts...)
	a, err := New(append([]string{"litperf"}, args...), &bytes.Buffer{}, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a
}

func decodeReport(t *testing.T, data []byte) surface.Report {
	t.Helper()
	var r surface.Report
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatalf("invalid JSON report: %v\n%s", err, data)
	}
	return r
}

func TestNew_HelpAndErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantHelp bool
		wantCode int
	}{
		{"help", []string{"litperf", "--help"}, true, apperrors.ExitErrorGeneric},
		{"unknown flag", []string{"litperf", "--nope"}, false, apperrors.ExitErrorGeneric},
		{"unknown fault", []string{"litperf", "--fail", "download=x"}, false, apperrors.ExitErrorConfig},
		{"bad format", []string{"litperf", "--format", "html"}, false, apperrors.ExitErrorConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.args, &bytes.Buffer{})
			if err == nil {
				t.Fatal("expected an error")
			}
			if IsHelpError(err) != tt.wantHelp {
				t.Errorf("IsHelpError(%v) = %v", err, !tt.wantHelp)
			}
			if !tt.wantHelp {
				if got := apperrors.ExitCodeFor(err); got != tt.wantCode {
					t.Errorf("exit code = %d, want %d", got, tt.wantCode)
				}
			}
		})
	}
}

func TestNew_DefaultProgramName(t *testing.T) {
	t.Parallel()
	a, err := New(nil, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("New(nil) error = %v", err)
	}
	if a.Config.Format != "text" || a.Logger == nil {
		t.Errorf("unexpected application %+v", a.Config)
	}
}

func TestRun_TextReportFromSeededStore(t *testing.T) {
	a := newTestApp(t, []string{"--no-color", "--quiet"})
	var out bytes.Buffer

	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want 0\n%s", code, out.String())
	}
	for _, want := range []string{
		"Cerebras Inference Performance",
		"Inference Speed Comparison",
		"Benchmark Results",
		"Paper Search",
		"Recommendation Generation",
		"Research Trend Analysis",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("report missing %q", want)
		}
	}
	if strings.Contains(out.String(), "Error in") {
		t.Errorf("seeded store should not produce errors:\n%s", out.String())
	}
}

func TestRun_JSONWithFaultInjection(t *testing.T) {
	a := newTestApp(t, []string{"--format", "json", "--fail", "recommend=network error"})
	var out bytes.Buffer

	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d, want 0", code)
	}
	r := decodeReport(t, out.Bytes())

	if len(r.Operations) != 3 {
		t.Fatalf("expected 3 operations, got %d", len(r.Operations))
	}
	if r.Operations[1].Status != "failed" || !strings.Contains(r.Operations[1].Error, "network error") {
		t.Errorf("recommendation should fail: %+v", r.Operations[1])
	}

	var errs, panels int
	for _, b := range r.Blocks {
		switch b.Kind {
		case surface.KindError:
			errs++
			if b.Message != "Error in Recommendation Generation: network error" {
				t.Errorf("error message = %q", b.Message)
			}
		case surface.KindExpander:
			panels++
		}
	}
	if errs != 1 || panels != 2 {
		t.Errorf("errors = %d, panels = %d; want 1 and 2", errs, panels)
	}
}

func TestRun_MockExplorer(t *testing.T) {
	ctrl := gomock.NewController(t)
	ex := mocks.NewMockExplorer(ctrl)
	gomock.InOrder(
		ex.EXPECT().SearchPapers(gomock.Any(), "Quantum Machine Learning").Return([]explorer.Paper{{Title: "paper1"}}, nil),
		ex.EXPECT().RecommendPapers(gomock.Any(), "doi:example-paper-doi").Return(nil, errors.New("boom")),
		ex.EXPECT().AnalyzeTrends(gomock.Any()).Return(explorer.TrendSummary{PaperCount: 1}, nil),
	)

	a := newTestApp(t, []string{"--format", "json"}, WithExplorer(ex))
	var out bytes.Buffer
	if code := a.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	r := decodeReport(t, out.Bytes())
	if r.Operations[0].Status != "succeeded" || r.Operations[1].Status != "failed" {
		t.Errorf("unexpected statuses %+v", r.Operations)
	}
}

func TestRun_WritesMetricsAndChart(t *testing.T) {
	dir := t.TempDir()
	metricsPath := filepath.Join(dir, "litperf.prom")
	chartPath := filepath.Join(dir, "chart.svg")

	a := newTestApp(t, []string{
		"--format", "json",
		"--metrics-file", metricsPath,
		"--chart-out", chartPath,
	})
	if code := a.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}

	data, err := os.ReadFile(metricsPath)
	if err != nil {
		t.Fatalf("metrics file not written: %v", err)
	}
	if !strings.Contains(string(data), "litperf_operation_duration_seconds") {
		t.Errorf("metrics file missing histogram:\n%s", data)
	}
	if info, err := os.Stat(chartPath); err != nil || info.Size() == 0 {
		t.Errorf("chart not exported: %v", err)
	}
}

func TestRun_MetricsFileError(t *testing.T) {
	a := newTestApp(t, []string{"--format", "json", "--metrics-file", filepath.Join(t.TempDir(), "missing", "m.prom")})
	if code := a.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitErrorGeneric {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
}

func TestRun_StoreOpenFailure(t *testing.T) {
	a := newTestApp(t, []string{"--db", filepath.Join(t.TempDir(), "missing", "papers.db")})
	if code := a.Run(context.Background(), &bytes.Buffer{}); code == apperrors.ExitSuccess {
		t.Error("expected a failure exit code for an unusable store path")
	}
}

func TestRun_PersistentStoreIsSeededOnce(t *testing.T) {
	db := filepath.Join(t.TempDir(), "papers.db")

	for i := 0; i < 2; i++ {
		a := newTestApp(t, []string{"--db", db, "--format", "json"})
		if code := a.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitSuccess {
			t.Fatalf("run %d: Run() = %d", i, code)
		}
	}

	store, err := explorer.OpenStore(db)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	n, err := store.Count(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != len(explorer.SamplePapers()) {
		t.Errorf("store holds %d papers, want %d", n, len(explorer.SamplePapers()))
	}
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestApp(t, []string{"--format", "json"}, WithExplorer(explorer.NewLibrary(mustStore(t))))
	if code := a.Run(ctx, &bytes.Buffer{}); code != apperrors.ExitErrorCanceled {
		t.Errorf("Run() = %d, want %d", code, apperrors.ExitErrorCanceled)
	}
}

func mustStore(t *testing.T) *explorer.Store {
	t.Helper()
	s, err := explorer.OpenStore(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestIsTerminal_NonFile(t *testing.T) {
	t.Parallel()
	if isTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
}

func TestRun_TUIModeWritesNothingToErrWriter(t *testing.T) {
	var errBuf bytes.Buffer
	a, err := New([]string{"litperf", "--tui", "--fail", "recommend=network error", "--log-level", "debug"}, &errBuf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	rec := surface.NewRecorder()
	a.runTUI = func(ctx context.Context, ex explorer.Explorer, _ string, opts ...dashboard.Option) int {
		if _, err := dashboard.RenderPerformanceDashboard(ctx, ex, rec, opts...); err != nil {
			return apperrors.ExitCodeFor(err)
		}
		return apperrors.ExitSuccess
	}

	if code := a.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}
	if rec.Count(surface.KindError) != 1 {
		t.Fatalf("expected the injected failure to be rendered, got %d errors", rec.Count(surface.KindError))
	}
	if errBuf.Len() != 0 {
		t.Errorf("nothing may be written beside the TUI, got:\n%s", errBuf.String())
	}
}

func TestRun_FailureLoggedOnce(t *testing.T) {
	var errBuf bytes.Buffer
	a, err := New([]string{"litperf", "--format", "json", "--no-color", "--fail", "recommend=network error"}, &errBuf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if code := a.Run(context.Background(), &bytes.Buffer{}); code != apperrors.ExitSuccess {
		t.Fatalf("Run() = %d", code)
	}

	logs := errBuf.String()
	if n := strings.Count(logs, "operation failed"); n != 1 {
		t.Errorf("expected one failure line, got %d:\n%s", n, logs)
	}
	if strings.Contains(logs, "explorer call failed") {
		t.Errorf("explorer call failures belong at debug level:\n%s", logs)
	}
}
