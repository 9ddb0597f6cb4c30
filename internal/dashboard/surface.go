package dashboard

import "github.com/agbru/litperf/internal/chart"

// Surface is a display environment the report is written to. Calls arrive
// in report order. Implementations keep the first output failure and
// report it through Err.
type Surface interface {
	// Header renders the page title.
	Header(title string)
	// Subheader renders a section heading.
	Subheader(title string)
	// MetricGrid renders metric tiles laid out in columns.
	MetricGrid(columns [][]SummaryStat)
	// Chart embeds a bar chart.
	Chart(c chart.BarChart)
	// Table renders tabular data.
	Table(t Table)
	// Expander renders a collapsible section holding a structured payload.
	Expander(label string, payload any)
	// Error renders a visible error message.
	Error(message string)
	// InProgress shows a transient indicator while work runs.
	InProgress(label string, work func())
	// Err returns the first output failure, if any.
	Err() error
}

// Observer is notified of every operation outcome.
type Observer interface {
	Observe(result OperationResult)
}

// ObserverFunc is a function adapter that implements Observer.
type ObserverFunc func(result OperationResult)

// Observe calls the underlying function.
func (f ObserverFunc) Observe(result OperationResult) { f(result) }
