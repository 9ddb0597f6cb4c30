// Package tui provides the interactive dashboard. The performance report is
// rendered by the dashboard package into a bridge surface that forwards each
// block to the bubbletea program; detail panels can be collapsed and the
// whole report re-run.
package tui
