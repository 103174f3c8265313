package orchestration

import "time"

// ProgressUpdate is sent by ExecuteCalculations when a calculator starts
// (Done false) and when it finishes (Done true). The strategies have no
// intermediate checkpoints, so start and finish are the only events.
type ProgressUpdate struct {
	CalculatorIndex int
	Name            string
	Done            bool
	// Err and Elapsed are set on the finish event.
	Err     error
	Elapsed time.Duration
}

// ProgressAggregator folds progress events into a completion fraction. The
// CLI spinner and the TUI both use it.
type ProgressAggregator struct {
	finished  []bool
	completed int
	failed    int
}

// AggregatedProgress is the state after one update.
type AggregatedProgress struct {
	CalculatorIndex int
	Name            string
	Done            bool
	Completed       int
	Failed          int
	Total           int
	// Fraction is Completed / Total, in [0, 1].
	Fraction float64
}

// NewProgressAggregator returns an aggregator for numCalculators calculators,
// or nil if numCalculators <= 0.
func NewProgressAggregator(numCalculators int) *ProgressAggregator {
	if numCalculators <= 0 {
		return nil
	}
	return &ProgressAggregator{finished: make([]bool, numCalculators)}
}

// Update records u. Finish events are counted once per calculator and events
// with an out-of-range index are ignored.
func (a *ProgressAggregator) Update(u ProgressUpdate) AggregatedProgress {
	if u.Done && u.CalculatorIndex >= 0 && u.CalculatorIndex < len(a.finished) && !a.finished[u.CalculatorIndex] {
		a.finished[u.CalculatorIndex] = true
		a.completed++
		if u.Err != nil {
			a.failed++
		}
	}
	return AggregatedProgress{
		CalculatorIndex: u.CalculatorIndex,
		Name:            u.Name,
		Done:            u.Done,
		Completed:       a.completed,
		Failed:          a.failed,
		Total:           len(a.finished),
		Fraction:        a.Fraction(),
	}
}

// Fraction returns the share of calculators that have finished.
func (a *ProgressAggregator) Fraction() float64 {
	return float64(a.completed) / float64(len(a.finished))
}

// NumCalculators returns the number of calculators being tracked.
func (a *ProgressAggregator) NumCalculators() int {
	return len(a.finished)
}

// IsMultiCalculator reports whether more than one calculator is tracked.
func (a *ProgressAggregator) IsMultiCalculator() bool {
	return len(a.finished) > 1
}

// DrainChannel discards every update until the channel is closed.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
