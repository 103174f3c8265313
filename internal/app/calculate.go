package app

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/fibmod/internal/cli"
	apperrors "github.com/agbru/fibmod/internal/errors"
	"github.com/agbru/fibmod/internal/logging"
	"github.com/agbru/fibmod/internal/metrics"
	"github.com/agbru/fibmod/internal/orchestration"
	"github.com/agbru/fibmod/internal/ui"
)

// runCalculate computes F(n) mod m with the selected strategies, reports the
// results and saves the agreed value when an output file is configured.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	ctx, cancel := a.lifecycle(ctx)
	defer cancel()

	calculatorsToRun := orchestration.GetCalculatorsToRun(a.Config.Algo, a.Factory)

	if a.Config.Details && !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(calculatorsToRun, out)
	}

	var progressReporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		progressReporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	presOpts := orchestration.PresentationOptions{
		N:       a.Config.N,
		M:       a.Config.M,
		Details: a.Config.Details,
		Quiet:   a.Config.Quiet,
	}
	results := orchestration.ExecuteCalculations(ctx, calculatorsToRun, presOpts, progressReporter, progressOut)
	presenter := cli.CLIResultPresenter{}
	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, out)

	if a.Config.Details && !a.Config.Quiet {
		fmt.Fprintf(out, "Memory:    %s%s%s\n", ui.ColorCyan(), collector.Snapshot().Since(before), ui.ColorReset())
	}

	if exitCode != apperrors.ExitSuccess {
		return exitCode
	}
	if err := a.saveResult(results, out); err != nil {
		a.Logger.Error("saving the result failed", err, logging.String("path", a.Config.OutputFile))
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// saveResult writes the fastest successful result to the output file, if
// one is configured.
func (a *Application) saveResult(results []orchestration.CalculationResult, out io.Writer) error {
	best := orchestration.BestResult(results)
	if a.Config.OutputFile == "" || best == nil {
		return nil
	}
	cfg := cli.OutputConfig{OutputFile: a.Config.OutputFile, Domain: a.Factory.Domain()}
	if err := cli.WriteResultToFile(best.Result, a.Config.N, a.Config.M, best.Duration, best.Name, cfg); err != nil {
		return err
	}
	if !a.Config.Quiet {
		fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), a.Config.OutputFile, ui.ColorReset())
	}
	return nil
}
