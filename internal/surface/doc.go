// Package surface implements the render surfaces the dashboard writes to:
// Terminal draws a styled text report and Recorder captures the report as an
// ordered list of blocks for JSON output and tests.
package surface
