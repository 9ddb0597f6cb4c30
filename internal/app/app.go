package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/litperf/internal/config"
	"github.com/agbru/litperf/internal/dashboard"
	apperrors "github.com/agbru/litperf/internal/errors"
	"github.com/agbru/litperf/internal/explorer"
	"github.com/agbru/litperf/internal/logging"
	"github.com/agbru/litperf/internal/metrics"
	"github.com/agbru/litperf/internal/tui"
	"github.com/agbru/litperf/internal/ui"
)

// Application represents the litperf application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer

	// Explorer, when set, replaces the store-backed explorer built from Config.
	Explorer explorer.Explorer
	Logger   logging.Logger

	isTerminal func(w io.Writer) bool
	runTUI     func(ctx context.Context, ex explorer.Explorer, version string, opts ...dashboard.Option) int
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithExplorer makes the application monitor ex instead of opening a store.
func WithExplorer(ex explorer.Explorer) AppOption {
	return func(a *Application) { a.Explorer = ex }
}

// WithLogger sets the application logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, isTerminal: isTerminal, runTUI: tui.Run}
	for _, opt := range opts {
		opt(app)
	}

	programName := "litperf"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		app.Logger = newLogger(cfg, errWriter)
	}
	return app, nil
}

// newLogger returns the console logger for cfg. The TUI owns the terminal,
// so nothing is logged in that mode.
func newLogger(cfg config.AppConfig, w io.Writer) logging.Logger {
	if cfg.Format == config.FormatTUI {
		return logging.Nop()
	}
	return logging.NewConsoleLogger(w, "litperf", cfg.LogLevel, cfg.NoColor || os.Getenv("NO_COLOR") != "")
}

// Run renders the dashboard in the configured format and returns the process
// exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.Theme, a.Config.NoColor)

	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	ex, closeExplorer, err := a.buildExplorer(ctx)
	if err != nil {
		a.Logger.Error("cannot prepare the literature explorer", err)
		return apperrors.ExitCodeFor(err)
	}
	defer closeExplorer()

	m := metrics.New()
	code := a.render(ctx, ex, m, out)

	if a.Config.MetricsFile != "" {
		if err := m.WriteTextfile(a.Config.MetricsFile); err != nil {
			a.Logger.Error("cannot write metrics", err, logging.String("path", a.Config.MetricsFile))
			if code == apperrors.ExitSuccess {
				code = apperrors.ExitErrorGeneric
			}
		}
	}
	return code
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
