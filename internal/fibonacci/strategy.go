package fibonacci

import (
	"fmt"
	"strings"
)

// Strategy selects the algorithm used to compute F(n) mod m.
type Strategy int

const (
	StrategyRecursive Strategy = iota
	StrategySequential
	StrategyMatrixSequential
	StrategyMatrixPowRecursive
	StrategyMatrixPowIterative
)

var strategyNames = [...]string{
	StrategyRecursive:          "recursive",
	StrategySequential:         "sequential",
	StrategyMatrixSequential:   "matrix",
	StrategyMatrixPowRecursive: "matrix-rec",
	StrategyMatrixPowIterative: "matrix-iter",
}

var strategyLabels = [...]string{
	StrategyRecursive:          "Recursive",
	StrategySequential:         "Sequential",
	StrategyMatrixSequential:   "Matrix",
	StrategyMatrixPowRecursive: "Mat (rec)",
	StrategyMatrixPowIterative: "Mat (loop)",
}

// Strategies returns every strategy, slowest first.
func Strategies() []Strategy {
	return []Strategy{
		StrategyRecursive,
		StrategySequential,
		StrategyMatrixSequential,
		StrategyMatrixPowRecursive,
		StrategyMatrixPowIterative,
	}
}

// Valid reports whether s is a declared strategy.
func (s Strategy) Valid() bool {
	return s >= StrategyRecursive && s <= StrategyMatrixPowIterative
}

// String returns the command-line name of the strategy.
func (s Strategy) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// Label returns the short display label used in result lines.
func (s Strategy) Label() string {
	if !s.Valid() {
		return s.String()
	}
	return strategyLabels[s]
}

// Logarithmic reports whether the strategy runs in O(log n) matrix products.
func (s Strategy) Logarithmic() bool {
	return s == StrategyMatrixPowRecursive || s == StrategyMatrixPowIterative
}

// ParseStrategy returns the strategy with the given command-line name.
// Matching is case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == name {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q (want one of %s)", name, strings.Join(strategyNames[:], ", "))
}
