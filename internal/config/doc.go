// Package config parses the litperf command line. Values are resolved with the
// precedence: CLI flags > LITPERF_* environment variables (including an
// optional .env file) > YAML config file > defaults.
package config
