// Package dashboard runs the monitored explorer operations and assembles the
// performance report. It decouples the report from its presentation through
// the Surface interface: the same sequence of calls drives the terminal
// renderer, the JSON recorder and the interactive TUI.
package dashboard
