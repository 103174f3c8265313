package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fibmod/internal/errors"
	"github.com/agbru/fibmod/internal/fibonacci"
)

// eventsPerCalculator is the number of progress events each calculator sends.
// The channel is sized so that sends never block.
const eventsPerCalculator = 2

// ExecuteCalculations runs every calculator on (opts.N, opts.M) concurrently
// and returns their results in the order of calculators. Calculator errors are
// recorded in the results, never propagated, so one failure does not cancel
// the others.
func ExecuteCalculations(ctx context.Context, calculators []fibonacci.Calculator, opts PresentationOptions, progressReporter ProgressReporter, out io.Writer) []CalculationResult {
	var g errgroup.Group
	results := make([]CalculationResult, len(calculators))
	progressChan := make(chan ProgressUpdate, len(calculators)*eventsPerCalculator)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(calculators), out)

	for i, calc := range calculators {
		g.Go(func() error {
			name := calc.Name()
			progressChan <- ProgressUpdate{CalculatorIndex: i, Name: name}

			start := time.Now()
			res, err := calc.Calculate(ctx, opts.N, opts.M)
			elapsed := time.Since(start)
			if err != nil {
				err = apperrors.CalculationError{Strategy: name, Cause: err}
			}
			results[i] = CalculationResult{Name: name, Result: res, Duration: elapsed, Err: err}

			progressChan <- ProgressUpdate{CalculatorIndex: i, Name: name, Done: true, Err: err, Elapsed: elapsed}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults reports the results and returns the exit code.
//
// Results are sorted with successes first, fastest first. A single result is
// presented directly. Several results are shown in a comparison table and
// must agree: any difference between successful results is a mismatch
// (ExitErrorMismatch). When nothing succeeded, the first error decides the
// exit code through handler. Quiet mode skips the table and the success line.
func AnalyzeComparisonResults(results []CalculationResult, opts PresentationOptions, presenter ResultPresenter, handler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	if len(results) == 0 {
		fmt.Fprintf(out, "Global Status: Failure. No calculator was selected.\n")
		return apperrors.ExitErrorConfig
	}
	comparison := len(results) > 1
	if comparison && !opts.Quiet {
		presenter.PresentComparisonTable(results, out)
	}

	best := results[0]
	if best.Err != nil {
		if comparison {
			fmt.Fprintf(out, "\nGlobal Status: Failure. No strategy could complete the calculation.\n")
		}
		return handler.HandleError(best.Err, best.Duration, out)
	}

	for _, res := range results[1:] {
		if res.Err == nil && res.Result.Cmp(best.Result) != 0 {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %s and %s disagree: %s != %s.\n",
				best.Name, res.Name, best.Result, res.Result)
			return apperrors.ExitErrorMismatch
		}
	}

	if comparison && !opts.Quiet {
		fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	}
	presenter.PresentResult(best, opts, out)
	return apperrors.ExitSuccess
}

// BestResult returns the fastest successful result, or nil.
func BestResult(results []CalculationResult) *CalculationResult {
	var best *CalculationResult
	for i := range results {
		if results[i].Err == nil && (best == nil || results[i].Duration < best.Duration) {
			best = &results[i]
		}
	}
	return best
}
