package format

import (
	"testing"
	"time"
)

func TestExecutionDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   time.Duration
		want string
	}{
		{500 * time.Nanosecond, "0µs"},
		{250 * time.Microsecond, "250µs"},
		{1500 * time.Microsecond, "1ms"},
		{2 * time.Second, "2s"},
		{1234567 * time.Microsecond, "1.235s"},
	}
	for _, tt := range tests {
		if got := ExecutionDuration(tt.in); got != tt.want {
			t.Errorf("ExecutionDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSeconds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in        time.Duration
		precision int
		want      string
	}{
		{520 * time.Millisecond, 2, "0.52 seconds"},
		{520 * time.Millisecond, 3, "0.520 seconds"},
		{0, 3, "0.000 seconds"},
	}
	for _, tt := range tests {
		if got := Seconds(tt.in, tt.precision); got != tt.want {
			t.Errorf("Seconds(%v, %d) = %q, want %q", tt.in, tt.precision, got, tt.want)
		}
	}
}
