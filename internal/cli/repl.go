package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/agbru/fibmod/internal/config"
	"github.com/agbru/fibmod/internal/fibonacci"
	"github.com/agbru/fibmod/internal/format"
	"github.com/agbru/fibmod/internal/ui"
)

// REPLConfig holds the settings of an interactive session.
type REPLConfig struct {
	// DefaultAlgo is the initial strategy. "all" or empty selects the
	// fastest one.
	DefaultAlgo string
	// Domain is the initial numeric type.
	Domain string
	// Modulus is used by calc and compare when no modulus is typed.
	Modulus *big.Int
	// Timeout bounds each calculation.
	Timeout time.Duration
	// Options configures the calculators built when the type changes.
	Options fibonacci.Options
}

// REPL is an interactive modular Fibonacci session.
type REPL struct {
	config      REPLConfig
	factory     fibonacci.CalculatorFactory
	currentAlgo string
	in          io.Reader
	out         io.Writer
}

// NewREPL returns a session running calculators from factory.
func NewREPL(factory fibonacci.CalculatorFactory, cfg REPLConfig) *REPL {
	if cfg.Modulus == nil || cfg.Modulus.Sign() <= 0 {
		cfg.Modulus = big.NewInt(1_000_000_000)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = config.DefaultTimeout
	}
	cfg.Domain = factory.Domain()

	algo := strings.ToLower(cfg.DefaultAlgo)
	if algo == "" || algo == "all" {
		algo = fibonacci.StrategyMatrixPowIterative.String()
	}
	return &REPL{
		config:      cfg,
		factory:     factory,
		currentAlgo: algo,
		in:          os.Stdin,
		out:         os.Stdout,
	}
}

// SetInput sets the reader commands are read from.
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets the writer of the session.
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start reads and runs commands until exit or end of input.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"fibmod> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
		eof := err != nil

		if input = strings.TrimSpace(input); input != "" && !r.processCommand(input) {
			return
		}
		if eof {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s   %sFibonacci modulo m - Interactive Mode%s        %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	cmds := []struct{ usage, desc string }{
		{"calc <n> [m]", "Calculate F(n) mod m with the current strategy"},
		{"<n> [m]", "Shorthand for calc"},
		{"compare <n> [m]", "Run every strategy and check they agree"},
		{"algo <name>", "Change strategy (" + strings.Join(r.factory.List(), ", ") + ")"},
		{"type <name>", "Change numeric type (" + strings.Join(fibonacci.Domains(), ", ") + ")"},
		{"mod <m>", "Change the default modulus"},
		{"list", "List available strategies"},
		{"status", "Display current configuration"},
		{"help", "Display this help"},
		{"exit", "Exit interactive mode"},
	}
	for _, c := range cmds {
		fmt.Fprintf(r.out, "  %s%-16s%s - %s\n", ui.ColorYellow(), c.usage, ui.ColorReset(), c.desc)
	}
}

// processCommand runs one command line. It returns false when the session
// should end.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "calc", "c":
		r.cmdCalc(args)
	case "compare", "cmp":
		r.cmdCompare(args)
	case "algo", "a":
		r.cmdAlgo(args)
	case "type", "t":
		r.cmdType(args)
	case "mod", "m":
		r.cmdMod(args)
	case "list", "ls":
		r.cmdList()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		if _, err := config.ParseInteger(cmd); err == nil {
			r.cmdCalc(parts)
			return true
		}
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}
	return true
}

// parseArgs reads "<n> [m]", falling back to the default modulus.
func (r *REPL) parseArgs(usage string, args []string) (n, m *big.Int, ok bool) {
	if len(args) == 0 || len(args) > 2 {
		fmt.Fprintf(r.out, "%sUsage: %s%s\n", ui.ColorRed(), usage, ui.ColorReset())
		return nil, nil, false
	}
	n, err := config.ParseInteger(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid index: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return nil, nil, false
	}
	m = r.config.Modulus
	if len(args) == 2 {
		if m, err = config.ParseInteger(args[1]); err != nil {
			fmt.Fprintf(r.out, "%sInvalid modulus: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return nil, nil, false
		}
	}
	return n, m, true
}

func (r *REPL) run(calc fibonacci.Calculator, n, m *big.Int) (*big.Int, time.Duration, error) {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()
	start := time.Now()
	result, err := calc.Calculate(ctx, n, m)
	return result, time.Since(start), err
}

func (r *REPL) cmdCalc(args []string) {
	n, m, ok := r.parseArgs("calc <n> [m]", args)
	if !ok {
		return
	}
	calc, err := r.factory.Get(r.currentAlgo)
	if err != nil {
		fmt.Fprintf(r.out, "%sStrategy not found: %s%s\n", ui.ColorRed(), r.currentAlgo, ui.ColorReset())
		return
	}

	result, duration, err := r.run(calc, n, m)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	DisplayResult(r.out, calc.Name(), n, m, result, duration, false)
}

func (r *REPL) cmdCompare(args []string) {
	n, m, ok := r.parseArgs("compare <n> [m]", args)
	if !ok {
		return
	}

	fmt.Fprintf(r.out, "\n%sComparison for F(%s) mod %s:%s\n", ui.ColorBold(), n, m, ui.ColorReset())
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())

	var first *big.Int
	for _, name := range r.factory.List() {
		calc, err := r.factory.Get(name)
		if err != nil {
			continue
		}
		result, duration, err := r.run(calc, n, m)
		if err != nil {
			fmt.Fprintf(r.out, "  %s%-12s%s: %sError - %v%s\n",
				ui.ColorYellow(), calc.Name(), ui.ColorReset(), ui.ColorRed(), err, ui.ColorReset())
			continue
		}
		if first == nil {
			first = result
		}
		status := ui.ColorGreen() + "✓" + ui.ColorReset()
		if result.Cmp(first) != 0 {
			status = ui.ColorRed() + "✗ INCONSISTENT" + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "  %s%-12s%s: %s%12s%s %s %s\n",
			ui.ColorYellow(), calc.Name(), ui.ColorReset(),
			ui.ColorCyan(), format.FormatExecutionDuration(duration), ui.ColorReset(),
			result, status)
	}

	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

func (r *REPL) cmdAlgo(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: algo <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available strategies: %s\n", strings.Join(r.factory.List(), ", "))
		return
	}
	name := strings.ToLower(args[0])
	calc, err := r.factory.Get(name)
	if err != nil {
		fmt.Fprintf(r.out, "%sUnknown strategy: %s%s\n", ui.ColorRed(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Available strategies: %s\n", strings.Join(r.factory.List(), ", "))
		return
	}
	r.currentAlgo = name
	fmt.Fprintf(r.out, "Strategy changed to: %s%s%s\n", ui.ColorGreen(), calc.Name(), ui.ColorReset())
}

func (r *REPL) cmdType(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: type <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available types: %s\n", strings.Join(fibonacci.Domains(), ", "))
		return
	}
	factory, err := fibonacci.NewFactory(strings.ToLower(args[0]), r.config.Options)
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	r.factory = factory
	r.config.Domain = factory.Domain()
	fmt.Fprintf(r.out, "Numeric type changed to: %s%s%s\n", ui.ColorGreen(), factory.Domain(), ui.ColorReset())
}

func (r *REPL) cmdMod(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: mod <m>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	m, err := config.ParseInteger(args[0])
	if err != nil || m.Sign() <= 0 {
		fmt.Fprintf(r.out, "%sThe modulus must be a positive integer: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	r.config.Modulus = m
	fmt.Fprintf(r.out, "Default modulus changed to: %s%s%s\n", ui.ColorGreen(), m, ui.ColorReset())
}

func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable strategies:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, name := range r.factory.List() {
		calc, err := r.factory.Get(name)
		if err != nil {
			continue
		}
		marker := "  "
		if name == r.currentAlgo {
			marker = ui.ColorGreen() + "► " + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "%s%s%-12s%s - %s\n", marker, ui.ColorYellow(), name, ui.ColorReset(), calc.Name())
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Strategy:  %s%s%s\n", ui.ColorCyan(), r.currentAlgo, ui.ColorReset())
	fmt.Fprintf(r.out, "  Type:      %s%s%s\n", ui.ColorCyan(), r.config.Domain, ui.ColorReset())
	fmt.Fprintf(r.out, "  Modulus:   %s%s%s\n", ui.ColorCyan(), r.config.Modulus, ui.ColorReset())
	fmt.Fprintf(r.out, "  Timeout:   %s%s%s\n", ui.ColorCyan(), r.config.Timeout, ui.ColorReset())
	fmt.Fprintln(r.out)
}
