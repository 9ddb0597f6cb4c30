package config

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	apperrors "github.com/agbru/litperf/internal/errors"
)

// EnvPrefix is the prefix of every environment variable override.
const EnvPrefix = "LITPERF_"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTUI  = "tui"
)

// Defaults.
const (
	DefaultDBPath   = ":memory:"
	DefaultLogLevel = "warn"
	DefaultTheme    = "dark"
	DefaultWidth    = 80
)

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// DBPath is the SQLite paper store. ":memory:" keeps it in memory.
	DBPath string `flag:"db" validate:"required"`
	// Seed forces ingestion of the sample papers even if the store is not empty.
	Seed bool `flag:"seed"`
	// Format selects the output mode.
	Format string `flag:"format" validate:"oneof=text json tui"`
	// Faults maps an explorer fault key to the injected failure reason.
	Faults map[string]string `flag:"fail" validate:"dive,keys,oneof=search recommend trends,endkeys"`
	// ChartOut lists image files the comparison chart is exported to.
	ChartOut []string `flag:"chart-out" validate:"dive,chartfile"`
	// MetricsFile receives Prometheus metrics in text format when set.
	MetricsFile string `flag:"metrics-file"`
	// Measured shows measured durations instead of the illustrative figures.
	Measured bool `flag:"measured"`
	// LogLevel is the zerolog level name.
	LogLevel string `flag:"log-level" validate:"oneof=trace debug info warn error"`
	// Theme is the colour theme name.
	Theme string `flag:"theme" validate:"oneof=dark light none"`
	// NoColor disables colours.
	NoColor bool `flag:"no-color"`
	// Quiet disables the in-progress spinner.
	Quiet bool `flag:"quiet"`
	// Width is the wrap width of the text report.
	Width int `flag:"width" validate:"gte=40,lte=400"`
	// ConfigFile is the optional YAML config file.
	ConfigFile string `flag:"config"`
	// EnvFile is the optional .env file.
	EnvFile string `flag:"env-file"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() AppConfig {
	return AppConfig{
		DBPath:   DefaultDBPath,
		Format:   FormatText,
		LogLevel: DefaultLogLevel,
		Theme:    DefaultTheme,
		Width:    DefaultWidth,
	}
}

// ParseConfig parses command-line arguments and applies file and environment
// overrides. It returns flag.ErrHelp unchanged when -h or --help is given.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	cfg := Defaults()

	var chartOut string
	var tui bool
	faults := faultsValue{m: &cfg.Faults}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite paper store path (\":memory:\" for an in-memory store).")
	fs.BoolVar(&cfg.Seed, "seed", false, "Ingest the sample papers even if the store already holds papers.")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "Output format: text, json or tui.")
	fs.BoolVar(&tui, "tui", false, "Shorthand for --format tui.")
	fs.Var(&faults, "fail", "Inject a failure: key=reason with key in {search, recommend, trends}. Repeatable.")
	fs.StringVar(&chartOut, "chart-out", "", "Comma-separated image files to export the chart to (png, svg, pdf, jpg).")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file.")
	fs.BoolVar(&cfg.Measured, "measured", false, "Show measured timings instead of the illustrative figures.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: trace, debug, info, warn or error.")
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "Colour theme: dark, light or none.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colours (also honours NO_COLOR).")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Disable the in-progress spinner.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Shorthand for --quiet.")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "Wrap width of the text report.")
	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML config file.")
	fs.StringVar(&cfg.EnvFile, "env-file", "", ".env file with LITPERF_* variables.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if chartOut != "" {
		cfg.ChartOut = splitList(chartOut)
	}
	if tui {
		cfg.Format = FormatTUI
	}

	if err := applyFileOverrides(&cfg, fs); err != nil {
		return AppConfig{}, err
	}
	lookup, err := newEnvLookup(cfg.EnvFile)
	if err != nil {
		return AppConfig{}, err
	}
	if err := applyEnvOverrides(&cfg, fs, lookup); err != nil {
		return AppConfig{}, err
	}

	if err := Validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// faultsValue is a repeatable flag.Value collecting key=reason pairs.
type faultsValue struct {
	m *map[string]string
}

func (f *faultsValue) String() string {
	if f.m == nil || *f.m == nil {
		return ""
	}
	return formatFaults(*f.m)
}

func (f *faultsValue) Set(s string) error {
	parsed, err := parseFaults(s)
	if err != nil {
		return err
	}
	if *f.m == nil {
		*f.m = make(map[string]string, len(parsed))
	}
	for k, v := range parsed {
		(*f.m)[k] = v
	}
	return nil
}

// parseFaults parses "key=reason" pairs separated by ';'. A missing reason
// is left empty.
func parseFaults(s string) (map[string]string, error) {
	out := make(map[string]string)
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, reason, _ := strings.Cut(pair, "=")
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			return nil, fmt.Errorf("invalid fault %q: missing key", pair)
		}
		out[key] = strings.TrimSpace(reason)
	}
	return out, nil
}

func formatFaults(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + m[k]
	}
	return strings.Join(pairs, ";")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
