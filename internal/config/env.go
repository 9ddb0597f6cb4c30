// This file contains the environment and config file override layers.

package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	apperrors "github.com/agbru/litperf/internal/errors"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// override declares a single configuration override.
// key is the environment variable name without the LITPERF_ prefix; its
// lower-cased form is the config file key. flags lists the CLI flag name(s)
// that take precedence over it.
type override struct {
	key   string
	flags []string
	apply func(*AppConfig, string) error
}

// overrides is the declarative table shared by the file and env layers.
var overrides = []override{
	// String overrides
	{"DB", []string{"db"}, func(c *AppConfig, v string) error {
		c.DBPath = v
		return nil
	}},
	{"FORMAT", []string{"format", "tui"}, func(c *AppConfig, v string) error {
		c.Format = strings.ToLower(v)
		return nil
	}},
	{"METRICS_FILE", []string{"metrics-file"}, func(c *AppConfig, v string) error {
		c.MetricsFile = v
		return nil
	}},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) error {
		c.LogLevel = strings.ToLower(v)
		return nil
	}},
	{"THEME", []string{"theme"}, func(c *AppConfig, v string) error {
		c.Theme = strings.ToLower(v)
		return nil
	}},

	// List overrides
	{"CHART_OUT", []string{"chart-out"}, func(c *AppConfig, v string) error {
		c.ChartOut = splitList(v)
		return nil
	}},
	{"FAIL", []string{"fail"}, func(c *AppConfig, v string) error {
		parsed, err := parseFaults(v)
		if err != nil {
			return err
		}
		c.Faults = parsed
		return nil
	}},

	// Numeric overrides
	{"WIDTH", []string{"width"}, func(c *AppConfig, v string) error {
		parsed, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("not an integer: %q", v)
		}
		c.Width = parsed
		return nil
	}},

	// Boolean overrides
	{"SEED", []string{"seed"}, func(c *AppConfig, v string) error {
		c.Seed = parseBoolEnv(v, c.Seed)
		return nil
	}},
	{"MEASURED", []string{"measured"}, func(c *AppConfig, v string) error {
		c.Measured = parseBoolEnv(v, c.Measured)
		return nil
	}},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) error {
		c.NoColor = parseBoolEnv(v, c.NoColor)
		return nil
	}},
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) error {
		c.Quiet = parseBoolEnv(v, c.Quiet)
		return nil
	}},
}

// parseBoolEnv parses a boolean value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// envLookup resolves an environment variable by its full name.
type envLookup func(key string) (string, bool)

// newEnvLookup returns a lookup over the process environment, falling back
// to the variables of envFile when it is set. The process environment wins.
func newEnvLookup(envFile string) (envLookup, error) {
	var fromFile map[string]string
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		if err != nil {
			return nil, apperrors.NewConfigError("reading env file %s: %v", envFile, err)
		}
		fromFile = m
	}
	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fromFile[key]
		return v, ok
	}, nil
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line. A value
// that cannot be parsed is a ConfigError; unrecognised booleans keep their
// current value.
//
// Supported environment variables (all prefixed with LITPERF_):
//   - DB, FORMAT, METRICS_FILE, LOG_LEVEL, THEME, CHART_OUT, FAIL, WIDTH,
//     SEED, MEASURED, NO_COLOR, QUIET
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet, lookup envLookup) error {
	for _, o := range overrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val, ok := lookup(EnvPrefix + o.key); ok && val != "" {
			if err := o.apply(config, val); err != nil {
				return apperrors.NewConfigError("invalid %s%s: %v", EnvPrefix, o.key, err)
			}
		}
	}
	return nil
}
