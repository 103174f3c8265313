package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/big"
	"time"

	"github.com/agbru/fibmod/internal/fibonacci"
	"github.com/agbru/fibmod/internal/format"
	"github.com/agbru/fibmod/internal/ui"
)

// BenchmarkModulus is the modulus of every benchmark case.
const BenchmarkModulus = 1_000_000_000

// BenchmarkCase is one row of the benchmark table.
type BenchmarkCase struct {
	Strategy fibonacci.Strategy
	N        *big.Int
}

// DefaultBenchmarkCases gives each strategy the largest index it handles in
// about a second: the naive recursion stops at 35, the linear strategies at
// ten million, and the logarithmic ones run the largest 64-bit index.
func DefaultBenchmarkCases() []BenchmarkCase {
	maxU64 := new(big.Int).SetUint64(math.MaxUint64)
	return []BenchmarkCase{
		{fibonacci.StrategyRecursive, big.NewInt(35)},
		{fibonacci.StrategySequential, big.NewInt(10_000_000)},
		{fibonacci.StrategyMatrixSequential, big.NewInt(10_000_000)},
		{fibonacci.StrategyMatrixPowRecursive, maxU64},
		{fibonacci.StrategyMatrixPowIterative, maxU64},
	}
}

// RunBenchmark runs the cases one after the other on factory, printing one
// aligned line per case. It returns the first error, after printing every
// line.
func RunBenchmark(ctx context.Context, factory fibonacci.CalculatorFactory, cases []BenchmarkCase, out io.Writer) error {
	m := big.NewInt(BenchmarkModulus)
	var firstErr error
	for _, c := range cases {
		calc, err := factory.Get(c.Strategy.String())
		if err != nil {
			return err
		}
		start := time.Now()
		result, err := calc.Calculate(ctx, c.N, m)
		elapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(out, "%-10s: n=%20s, %sfailed: %v%s\n", calc.Name(), c.N, ui.ColorRed(), err, ui.ColorReset())
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		fmt.Fprintln(out, FormatBenchmarkLine(calc.Name(), c.N, m, result, elapsed))
	}
	return firstErr
}

// FormatBenchmarkLine formats a benchmark row:
//
//	Mat (loop): n=18446744073709551615, F(n)%1000000000=362999010 (  0ms)
func FormatBenchmarkLine(label string, n, m, result *big.Int, elapsed time.Duration) string {
	return fmt.Sprintf("%-10s: n=%20s, F(n)%%%s=%9s (%s)", label, n, m, result, format.FormatMillis(elapsed))
}
