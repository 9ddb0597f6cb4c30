package surface

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerRefreshRate is the animation interval of the in-progress indicator.
const SpinnerRefreshRate = 100 * time.Millisecond

// Spinner abstracts a terminal spinner so the Terminal can be tested without
// animating.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// NewSpinner returns a spinner that draws to w.
func NewSpinner(w io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], SpinnerRefreshRate, spinner.WithWriter(w))
	return &realSpinner{s}
}
