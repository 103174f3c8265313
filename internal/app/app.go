// Package app wires the command line to the calculation modes of fibmod.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/fibmod/internal/cli"
	"github.com/agbru/fibmod/internal/config"
	apperrors "github.com/agbru/fibmod/internal/errors"
	"github.com/agbru/fibmod/internal/fibonacci"
	"github.com/agbru/fibmod/internal/logging"
	"github.com/agbru/fibmod/internal/metrics"
	"github.com/agbru/fibmod/internal/orchestration"
	"github.com/agbru/fibmod/internal/tui"
	"github.com/agbru/fibmod/internal/ui"
)

// Application represents the fibmod application instance.
type Application struct {
	Config    config.AppConfig
	Factory   fibonacci.CalculatorFactory
	ErrWriter io.Writer
	// In is read by the interactive mode.
	In     io.Reader
	Logger logging.Logger

	benchCases []cli.BenchmarkCase
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom CalculatorFactory for the application. By
// default the factory of the -type domain is used.
func WithFactory(f fibonacci.CalculatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithInput sets the reader of the interactive mode.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// WithBenchmarkCases replaces the cases run by -bench.
func WithBenchmarkCases(cases []cli.BenchmarkCase) AppOption {
	return func(a *Application) { a.benchCases = cases }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}

	programName := "fibmod"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	availableAlgos := fibonacci.NewDefaultFactory().List()
	if app.Factory != nil {
		availableAlgos = app.Factory.List()
	}
	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableAlgos, fibonacci.Domains())
	if err != nil {
		return nil, err
	}

	if app.Factory == nil {
		factory, err := fibonacci.NewFactory(cfg.Type, cfg.ToCalculationOptions())
		if err != nil {
			return nil, apperrors.NewConfigError("%v", err)
		}
		app.Factory = factory
	}
	if app.benchCases == nil {
		app.benchCases = cli.DefaultBenchmarkCases()
	}

	app.Config = cfg
	return app, nil
}

// Run executes the mode selected by the configuration and returns the exit
// code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Version {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	level, err := logging.ParseLevel(a.Config.LogLevel)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	a.Logger = logging.Setup(level, a.ErrWriter)
	ui.InitTheme(a.Config.NoColor)

	a.Logger.Debug("starting",
		logging.String("algo", a.Config.Algo),
		logging.String("domain", a.Factory.Domain()),
		logging.BigInt("n", a.Config.N),
		logging.BigInt("m", a.Config.M),
		logging.Duration("timeout", a.Config.Timeout))

	var code int
	switch {
	case a.Config.Interactive:
		code = a.runInteractive(out)
	case a.Config.Bench:
		code = a.runBenchmark(ctx, out)
	case a.Config.TUI:
		code = a.runTUI(ctx, out)
	default:
		code = a.runCalculate(ctx, out)
	}

	if a.Config.Metrics {
		a.writeMetrics(out)
	}
	return code
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Factory.List(), fibonacci.Domains()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runInteractive starts the REPL on a.In.
func (a *Application) runInteractive(out io.Writer) int {
	repl := cli.NewREPL(a.Factory, cli.REPLConfig{
		DefaultAlgo: a.Config.Algo,
		Modulus:     a.Config.M,
		Timeout:     a.Config.Timeout,
		Options:     a.Config.ToCalculationOptions(),
	})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runBenchmark runs the benchmark table.
func (a *Application) runBenchmark(ctx context.Context, out io.Writer) int {
	ctx, cancel := a.lifecycle(ctx)
	defer cancel()

	if err := cli.RunBenchmark(ctx, a.Factory, a.benchCases, out); err != nil {
		a.Logger.Error("benchmark failed", err)
		return apperrors.ExitCode(err)
	}
	return apperrors.ExitSuccess
}

// runTUI launches the interactive dashboard. Each run of the dashboard
// applies the timeout on its own.
func (a *Application) runTUI(ctx context.Context, _ io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	calculatorsToRun := orchestration.GetCalculatorsToRun(a.Config.Algo, a.Factory)
	return tui.Run(ctx, calculatorsToRun, a.Config, Version)
}

// lifecycle bounds ctx by the timeout and by SIGINT/SIGTERM.
func (a *Application) lifecycle(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

// writeMetrics dumps the fibmod_ metrics of the default registry.
func (a *Application) writeMetrics(out io.Writer) {
	metrics.NewMemoryCollector().Snapshot()
	fmt.Fprintf(out, "\n--- Metrics ---\n")
	if err := metrics.WriteText(out, prometheus.DefaultGatherer, metrics.Prefix); err != nil {
		a.Logger.Error("metrics export failed", err)
	}
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeForError returns the exit code of an error returned by New. Help
// requests and a bare invocation, which only print the usage, succeed.
func ExitCodeForError(err error) int {
	if IsHelpError(err) || errors.Is(err, config.ErrMissingArguments) {
		return apperrors.ExitSuccess
	}
	if code := apperrors.ExitCode(err); code != apperrors.ExitErrorGeneric {
		return code
	}
	return apperrors.ExitErrorConfig
}
