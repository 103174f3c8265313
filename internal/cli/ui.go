package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fibmod/internal/format"
	"github.com/agbru/fibmod/internal/orchestration"
)

const (
	// ProgressRefreshRate is the spinner frame interval and the rate at
	// which the elapsed time is refreshed.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width in characters of the progress bar.
	ProgressBarWidth = 20
)

// Spinner abstracts the terminal spinner so that DisplayProgress can be
// tested without a terminal.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }
func (rs *realSpinner) Stop()  { rs.s.Stop() }

// UpdateSuffix takes the spinner lock since the suffix is read by the
// spinner's own goroutine.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress shows a spinner while calculators run. Its suffix names the
// running strategy, or for several calculators shows a progress bar of the
// finished ones, followed by the elapsed time. It returns, calling wg.Done,
// once progressChan is closed.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numCalculators int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numCalculators)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	start := time.Now()
	state := orchestration.AggregatedProgress{Total: numCalculators}
	s.UpdateSuffix(FormatProgressSuffix(state, 0))
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				return
			}
			state = agg.Update(update)
		case <-ticker.C:
		}
		s.UpdateSuffix(FormatProgressSuffix(state, time.Since(start)))
	}
}

// FormatProgressSuffix renders the spinner suffix for a progress state.
func FormatProgressSuffix(p orchestration.AggregatedProgress, elapsed time.Duration) string {
	if p.Total > 1 {
		return fmt.Sprintf(" Comparing strategies %s %d/%d done (%s)",
			progressBar(p.Fraction, ProgressBarWidth), p.Completed, p.Total, format.FormatExecutionDuration(elapsed))
	}
	name := p.Name
	if name == "" {
		name = "calculation"
	}
	return fmt.Sprintf(" Running %s... (%s)", name, format.FormatExecutionDuration(elapsed))
}

// progressBar renders progress (clamped to [0, 1]) as a bar of length runes.
func progressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	count := int(progress * float64(length))
	return strings.Repeat("█", count) + strings.Repeat("░", length-count)
}
