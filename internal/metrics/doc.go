// Package metrics exposes dashboard measurements as Prometheus metrics and
// writes them in the text exposition format for node_exporter's textfile
// collector.
package metrics
