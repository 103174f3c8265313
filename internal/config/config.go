// Package config parses the fibmod command line into an AppConfig: flags,
// the positional <n> <m> pair and FIBMOD_ environment overrides.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"slices"
	"strings"
	"time"

	apperrors "github.com/agbru/fibmod/internal/errors"
	"github.com/agbru/fibmod/internal/fibonacci"
	"github.com/agbru/fibmod/internal/logging"
)

// EnvPrefix is the prefix of every environment variable read by fibmod.
const EnvPrefix = "FIBMOD_"

// Default configuration values.
const (
	// DefaultAlgo runs every strategy and compares the results.
	DefaultAlgo = "all"
	// DefaultType is the numeric representation of n, m and the result.
	DefaultType = fibonacci.DefaultDomain
	// DefaultTimeout bounds a whole run.
	DefaultTimeout = time.Minute
	// DefaultRecursiveLimit is the largest |n| run by the recursive strategy.
	DefaultRecursiveLimit uint64 = fibonacci.DefaultRecursiveLimit
	// DefaultLogLevel keeps the calculator debug lines hidden.
	DefaultLogLevel = "info"
)

// ErrMissingArguments is returned by ParseConfig when a mode that computes a
// value is missing its <n> <m> arguments. The usage message has already been
// printed; the caller exits with status 0.
var ErrMissingArguments = errors.New("missing <n> <m> arguments")

// AppConfig is the parsed command line.
type AppConfig struct {
	// N and M are the positional index and modulus, nil when absent.
	N *big.Int
	M *big.Int

	Algo           string
	Type           string
	Timeout        time.Duration
	RecursiveLimit uint64

	Quiet       bool
	Details     bool
	Metrics     bool
	TUI         bool
	NoColor     bool
	LogLevel    string
	OutputFile  string
	Completion  string
	Interactive bool
	Bench       bool
	Version     bool
}

// ToCalculationOptions returns the calculator options of the configuration.
func (c AppConfig) ToCalculationOptions() fibonacci.Options {
	return fibonacci.Options{RecursiveLimit: c.RecursiveLimit}
}

// NeedsArguments reports whether the selected mode computes F(n) mod m and so
// requires the positional arguments.
func (c AppConfig) NeedsArguments() bool {
	return c.Completion == "" && !c.Interactive && !c.Bench && !c.Version
}

// Validate checks the semantic consistency of the configuration against the
// available strategy names and numeric types.
func (c AppConfig) Validate(availableAlgos, availableTypes []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Algo != DefaultAlgo && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: 'all' or [%s]",
			c.Algo, strings.Join(availableAlgos, ", "))
	}
	if !slices.Contains(availableTypes, c.Type) {
		return apperrors.NewConfigError("unrecognized numeric type: '%s'. Valid types are: [%s]",
			c.Type, strings.Join(availableTypes, ", "))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	return nil
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Flags set on the command line take precedence over FIBMOD_ environment
// variables, which take precedence over defaults.
//
// Errors are flag.ErrHelp for -h, ErrMissingArguments when <n> <m> is needed
// but absent, and an apperrors.ConfigError otherwise. Usage and error text go
// to errorWriter.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos, availableTypes []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.Algo, "algo", DefaultAlgo,
		fmt.Sprintf("Strategy to run: 'all' or one of [%s].", strings.Join(availableAlgos, ", ")))
	fs.StringVar(&config.Type, "type", DefaultType,
		fmt.Sprintf("Numeric type of n, m and the result: one of [%s].", strings.Join(availableTypes, ", ")))
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time.")
	fs.Uint64Var(&config.RecursiveLimit, "recursive-limit", DefaultRecursiveLimit, "Largest |n| accepted by the recursive strategy.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the value, for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Details, "details", false, "Display the execution configuration and result details.")
	fs.BoolVar(&config.Details, "d", false, "Alias for -details.")
	fs.BoolVar(&config.Metrics, "metrics", false, "Print calculation metrics in Prometheus text format on exit.")
	fs.BoolVar(&config.TUI, "tui", false, "Run every strategy in the interactive dashboard.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn, error or disabled.")
	fs.StringVar(&config.OutputFile, "output", "", "Also write the result to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file (shorthand).")
	fs.StringVar(&config.Completion, "completion", "", "Print a shell completion script (bash, zsh, fish, powershell).")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start the interactive prompt.")
	fs.BoolVar(&config.Bench, "bench", false, "Run each strategy on its benchmark index modulo 1e9.")
	fs.BoolVar(&config.Version, "version", false, "Print the version and exit.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("%v", err)
	}

	applyEnvOverrides(&config, fs)

	config.Algo = strings.ToLower(strings.TrimSpace(config.Algo))
	config.Type = strings.ToLower(strings.TrimSpace(config.Type))
	if err := config.Validate(availableAlgos, availableTypes); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, err
	}

	if err := config.parsePositional(fs.Args()); err != nil {
		if !errors.Is(err, ErrMissingArguments) {
			fmt.Fprintln(errorWriter, "Configuration error:", err)
		}
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}

func (c *AppConfig) parsePositional(args []string) error {
	if len(args) == 0 {
		if c.NeedsArguments() {
			return ErrMissingArguments
		}
		return nil
	}
	if len(args) != 2 {
		return apperrors.NewConfigError("expected exactly two arguments <n> <m>, got %d", len(args))
	}
	var err error
	if c.N, err = ParseInteger(args[0]); err != nil {
		return apperrors.NewConfigError("invalid index n: %v", err)
	}
	if c.M, err = ParseInteger(args[1]); err != nil {
		return apperrors.NewConfigError("invalid modulus m: %v", err)
	}
	return nil
}

// ParseInteger parses a base-10 integer of any size. An optional sign and
// underscore digit separators ("1_000_000") are accepted.
func ParseInteger(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	digits := strings.ReplaceAll(s, "_", "")
	if digits == "" || strings.HasPrefix(s, "_") || strings.HasSuffix(s, "_") || strings.Contains(s, "__") {
		return nil, fmt.Errorf("%q is not an integer", s)
	}
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, fmt.Errorf("%q is not an integer", s)
	}
	return v, nil
}
