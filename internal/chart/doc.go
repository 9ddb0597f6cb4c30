// Package chart builds the categorical bar chart that compares inference
// times across labelled methods, and exports it as an image.
//
// A BarChart is a plain value: surfaces decide how to draw it (unicode bars in
// the terminal, lipgloss panels in the TUI), and Export renders it to PNG or
// SVG through gonum/plot.
package chart
