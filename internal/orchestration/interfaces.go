package orchestration

import (
	"io"
	"math/big"
	"sync"
	"time"
)

// CalculationResult is the outcome of one calculator run.
type CalculationResult struct {
	// Name is the calculator's display label (e.g. "Mat (loop)").
	Name string
	// Result is F(n) mod m. It is nil if an error occurred.
	Result   *big.Int
	Duration time.Duration
	Err      error
}

// PresentationOptions configures how results are presented.
type PresentationOptions struct {
	N       *big.Int
	M       *big.Int
	Details bool
	Quiet   bool
}

// ProgressReporter displays progress events while calculators run.
type ProgressReporter interface {
	// DisplayProgress consumes progressChan until it is closed, then calls
	// wg.Done.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numCalculators int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numCalculators int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numCalculators int, out io.Writer) {
	f(wg, progressChan, numCalculators, out)
}

// NullProgressReporter drains the progress channel without output. Quiet mode
// uses it.
type NullProgressReporter struct{}

// DisplayProgress drains the channel.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter formats results.
type ResultPresenter interface {
	// PresentComparisonTable displays one row per calculator.
	PresentComparisonTable(results []CalculationResult, out io.Writer)
	// PresentResult displays the value agreed on by the calculators.
	PresentResult(result CalculationResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler reports a calculation error and returns the exit code.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
