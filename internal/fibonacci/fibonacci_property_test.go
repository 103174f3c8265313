package fibonacci

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/fibmod/internal/algebra"
)

// TestLogarithmicStrategies_PropertyBased checks both matrix power strategies
// against the fast doubling reference on random 64-bit inputs.
func TestLogarithmicStrategies_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("MatrixPowRecursive == MatrixPowIterative == FastDoublingMod", prop.ForAll(
		func(n, m uint64) bool {
			rec := MatrixPowRecursive(algebra.U64(n), algebra.U64(m))
			iter := MatrixPowIterative(algebra.U64(n), algebra.U64(m))
			want, err := FastDoublingMod(new(big.Int).SetUint64(n), new(big.Int).SetUint64(m))
			if err != nil {
				return false
			}
			return rec == iter && rec.Big().Cmp(want) == 0
		},
		gen.UInt64(), gen.UInt64Range(1, 1<<64-1),
	))

	properties.Property("Sequential agrees on moderate indices", prop.ForAll(
		func(n uint64, m uint64) bool {
			return Sequential(algebra.U64(n), algebra.U64(m)) == MatrixPowIterative(algebra.U64(n), algebra.U64(m))
		},
		gen.UInt64Range(0, 5000), gen.UInt64Range(2, 1<<63),
	))

	properties.Property("representations agree", prop.ForAll(
		func(n int64, m int64) bool {
			i := Fibonacci(algebra.I64(n), algebra.I64(m), StrategyMatrixPowIterative)
			b := Fibonacci(algebra.NewInt(n), algebra.NewInt(m), StrategyMatrixPowRecursive)
			return i.Big().Cmp(b.Big()) == 0
		},
		gen.Int64Range(-1<<62, 1<<62), gen.Int64Range(1, 1<<62),
	))

	properties.TestingRun(t)
}

// TestNegativeIndexIdentity_PropertyBased verifies F(-n) = (-1)^(n+1) F(n)
// for every strategy routed through Extend.
func TestNegativeIndexIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, s := range Strategies() {
		s := s
		properties.Property(s.String()+" satisfies the negative index identity", prop.ForAll(
			func(n int64, m int64) bool {
				pos := Fibonacci(algebra.I64(n), algebra.I64(m), s)
				neg := Fibonacci(algebra.I64(-n), algebra.I64(m), s)
				if n%2 == 1 {
					return neg == pos
				}
				return neg == -pos
			},
			gen.Int64Range(0, 20), gen.Int64Range(1, 1_000_000_007),
		))
	}

	properties.Property("unsigned negation stays in [0, m)", prop.ForAll(
		func(r, m uint64) bool {
			neg := algebra.Negate(algebra.U64(r%m), algebra.U64(m))
			return uint64(neg) < m && (uint64(neg)+r%m)%m == 0
		},
		gen.UInt64(), gen.UInt64Range(1, 1<<32),
	))

	properties.TestingRun(t)
}

// TestCassinisIdentity_PropertyBased checks F(n-1)·F(n+1) - F(n)² = (-1)^n
// modulo m on the arbitrary-precision signed domain.
func TestCassinisIdentity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("Cassini's identity holds mod m", prop.ForAll(
		func(n int64, m int64) bool {
			mm := algebra.NewInt(m)
			f := func(k int64) *big.Int {
				return Fibonacci(algebra.NewInt(k), mm, StrategyMatrixPowIterative).Big()
			}
			left := new(big.Int).Mul(f(n-1), f(n+1))
			left.Sub(left, new(big.Int).Mul(f(n), f(n)))
			right := big.NewInt(1)
			if n%2 != 0 {
				right.Neg(right)
			}
			bm := big.NewInt(m)
			return new(big.Int).Mod(left, bm).Cmp(new(big.Int).Mod(right, bm)) == 0
		},
		gen.Int64Range(-1<<40, 1<<40), gen.Int64Range(2, 1<<40),
	))

	properties.TestingRun(t)
}
