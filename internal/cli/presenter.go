package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	apperrors "github.com/agbru/fibmod/internal/errors"
	"github.com/agbru/fibmod/internal/format"
	"github.com/agbru/fibmod/internal/orchestration"
	"github.com/agbru/fibmod/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with
// DisplayProgress.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numCalculators int, out io.Writer) {
	DisplayProgress(wg, progressChan, numCalculators, out)
}

// CLIResultPresenter presents results on the terminal.
type CLIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable prints one row per strategy: name, duration and
// status. Padding is computed on the visible text so that color codes do not
// break the alignment.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	const nameHeader, durationHeader = "Strategy", "Duration"
	nameWidth, durationWidth := len(nameHeader), len(durationHeader)
	for _, res := range results {
		nameWidth = max(nameWidth, len(res.Name))
		durationWidth = max(durationWidth, len([]rune(format.FormatExecutionDuration(res.Duration))))
	}

	fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %sResult%s\n",
		ui.ColorUnderline(), nameHeader, ui.ColorReset(), padRight("", nameWidth-len(nameHeader)),
		ui.ColorUnderline(), durationHeader, ui.ColorReset(), padRight("", durationWidth-len(durationHeader)),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		status := fmt.Sprintf("%s✅ %s%s", ui.ColorGreen(), res.Result, ui.ColorReset())
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		}
		duration := format.FormatExecutionDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", nameWidth-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", durationWidth-len([]rune(duration))),
			status)
	}
}

// padRight appends length spaces to s.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult prints the agreed result line, or the value alone in quiet
// mode.
func (CLIResultPresenter) PresentResult(result orchestration.CalculationResult, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Quiet {
		DisplayQuietResult(out, result.Result)
		return
	}
	fmt.Fprintln(out)
	DisplayResult(out, result.Name, opts.N, opts.M, result.Result, result.Duration, opts.Details)
}

// HandleError prints the failure status line and returns the exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}
