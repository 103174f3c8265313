package cli

import (
	"bytes"
	"context"
	"math"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/agbru/fibmod/internal/fibonacci"
)

func TestFormatBenchmarkLine(t *testing.T) {
	t.Parallel()
	n := new(big.Int).SetUint64(math.MaxUint64)
	got := FormatBenchmarkLine("Mat (loop)", n, big.NewInt(BenchmarkModulus), big.NewInt(362999010), 0)
	want := "Mat (loop): n=18446744073709551615, F(n)%1000000000=362999010 (  0ms)"
	if got != want {
		t.Errorf("FormatBenchmarkLine() = %q, want %q", got, want)
	}

	got = FormatBenchmarkLine("Recursive", big.NewInt(35), big.NewInt(BenchmarkModulus), big.NewInt(9227465), 41*time.Millisecond)
	want = "Recursive : n=                  35, F(n)%1000000000=  9227465 ( 41ms)"
	if got != want {
		t.Errorf("FormatBenchmarkLine() = %q, want %q", got, want)
	}
}

func TestDefaultBenchmarkCases(t *testing.T) {
	t.Parallel()
	cases := DefaultBenchmarkCases()
	if len(cases) != len(fibonacci.Strategies()) {
		t.Fatalf("got %d cases, want one per strategy", len(cases))
	}
	for i, s := range fibonacci.Strategies() {
		if cases[i].Strategy != s {
			t.Errorf("case %d runs %s, want %s", i, cases[i].Strategy, s)
		}
	}
	if cases[0].N.Cmp(big.NewInt(fibonacci.DefaultRecursiveLimit)) > 0 {
		t.Errorf("recursive case n=%s exceeds the default limit", cases[0].N)
	}
}

func TestRunBenchmark(t *testing.T) {
	t.Parallel()
	factory := fibonacci.NewDefaultFactory()
	maxU64 := new(big.Int).SetUint64(math.MaxUint64)
	cases := []BenchmarkCase{
		{fibonacci.StrategyRecursive, big.NewInt(20)},
		{fibonacci.StrategySequential, big.NewInt(1000)},
		{fibonacci.StrategyMatrixPowRecursive, maxU64},
		{fibonacci.StrategyMatrixPowIterative, maxU64},
	}

	var buf bytes.Buffer
	if err := RunBenchmark(context.Background(), factory, cases, &buf); err != nil {
		t.Fatalf("RunBenchmark() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(cases) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(cases), buf.String())
	}
	wants := []string{
		"Recursive : n=                  20, F(n)%1000000000=     6765",
		"Sequential: n=                1000, F(n)%1000000000=849228875",
		"Mat (rec) : n=18446744073709551615, F(n)%1000000000=362999010",
		"Mat (loop): n=18446744073709551615, F(n)%1000000000=362999010",
	}
	for i, want := range wants {
		if !strings.HasPrefix(lines[i], want) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], want)
		}
	}
}

func TestRunBenchmark_ReportsFailures(t *testing.T) {
	t.Parallel()
	factory := fibonacci.NewDefaultFactory()
	cases := []BenchmarkCase{
		{fibonacci.StrategyRecursive, big.NewInt(fibonacci.DefaultRecursiveLimit + 1)},
		{fibonacci.StrategyMatrixPowIterative, big.NewInt(10)},
	}

	var buf bytes.Buffer
	err := RunBenchmark(context.Background(), factory, cases, &buf)
	if err == nil {
		t.Fatal("expected the recursive case to fail")
	}
	output := buf.String()
	if !strings.Contains(output, "Recursive : n=                  36, failed:") {
		t.Errorf("missing failure line:\n%s", output)
	}
	if !strings.Contains(output, "F(n)%1000000000=       55") {
		t.Errorf("later cases should still run:\n%s", output)
	}
}
