// Package ui provides the colour themes shared by the terminal report and the
// interactive dashboard. Themes are expressed as lipgloss colours so that each
// renderer can degrade them to the capabilities of its output.
package ui
