package config

import (
	"flag"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"

	apperrors "github.com/agbru/litperf/internal/errors"
)

// applyFileOverrides loads cfg.ConfigFile, if any, and applies its values
// for flags that were not set on the command line.
//
// Keys are the lower-cased override keys, e.g.:
//
//	db: papers.db
//	format: json
//	chart_out: [chart.png, chart.svg]
//	fail:
//	  recommend: network error
func applyFileOverrides(cfg *AppConfig, fs *flag.FlagSet) error {
	if cfg.ConfigFile == "" {
		return nil
	}
	v := viper.New()
	v.SetConfigFile(cfg.ConfigFile)
	if err := v.ReadInConfig(); err != nil {
		return apperrors.NewConfigError("reading config file %s: %v", cfg.ConfigFile, err)
	}

	for _, o := range overrides {
		key := strings.ToLower(o.key)
		if !v.IsSet(key) || isFlagSetAny(fs, o.flags...) {
			continue
		}
		if err := o.apply(cfg, fileValue(v, key)); err != nil {
			return apperrors.NewConfigError("invalid %s in %s: %v", key, cfg.ConfigFile, err)
		}
	}
	return nil
}

// fileValue flattens a config file value into the string form accepted by
// the override table: lists are comma-joined and maps become key=value
// pairs separated by ';'.
func fileValue(v *viper.Viper, key string) string {
	switch raw := v.Get(key).(type) {
	case []any:
		parts := make([]string, len(raw))
		for i, item := range raw {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ",")
	case map[string]any:
		keys := make([]string, 0, len(raw))
		for k := range raw {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = k + "=" + fmt.Sprint(raw[k])
		}
		return strings.Join(pairs, ";")
	default:
		return v.GetString(key)
	}
}
