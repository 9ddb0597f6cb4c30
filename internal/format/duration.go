// Package format holds display formatting shared by the report surfaces.
package format

import (
	"fmt"
	"strconv"
	"time"
)

// ExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the duration rounded to the millisecond
// otherwise.
func ExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(time.Millisecond).String()
}

// Seconds formats d as a decimal number of seconds, e.g. "0.520 seconds".
func Seconds(d time.Duration, precision int) string {
	return strconv.FormatFloat(d.Seconds(), 'f', precision, 64) + " seconds"
}
