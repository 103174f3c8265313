package fibonacci

import (
	"github.com/agbru/fibmod/internal/algebra"
	"github.com/agbru/fibmod/internal/matrix"
)

// Func computes F(n) mod m. n must be non-negative and m non-zero unless the
// function says otherwise.
type Func[T any] func(n, m T) T

// Recursive computes F(n) mod m straight from the recurrence. It makes
// O(F(n)) calls and is only usable for small n.
func Recursive[T algebra.Number[T]](n, m T) T {
	return recursive(n, m, nil)
}

// Sequential advances the pair (F(k), F(k+1)) n times.
func Sequential[T algebra.Number[T]](n, m T) T {
	return sequential(n, m, nil)
}

// MatrixSequential multiplies Q into the identity n times and reads F(n) from
// the top-right entry.
func MatrixSequential[T algebra.Number[T]](n, m T) T {
	return matrixSequential(n, m, nil)
}

// cancelCheckMask sets how often the linear strategies poll for
// cancellation: once every 2^16 steps.
const cancelCheckMask = 1<<16 - 1

// canceller lets a linear strategy bail out once done is closed. A nil
// canceller never stops. It is owned by a single goroutine.
type canceller struct {
	done    <-chan struct{}
	steps   uint64
	stopped bool
}

func (c *canceller) stop() bool {
	if c == nil {
		return false
	}
	if c.stopped {
		return true
	}
	c.steps++
	if c.steps&cancelCheckMask != 0 {
		return false
	}
	select {
	case <-c.done:
		c.stopped = true
	default:
	}
	return c.stopped
}

// The unexported variants return zero once c stops; the caller discards that
// value.

func recursive[T algebra.Number[T]](n, m T, c *canceller) T {
	if n.IsZero() || c.stop() {
		return n.Zero()
	}
	one := n.One()
	if n.IsOne() {
		return algebra.Reduce(one, m)
	}
	n1 := n.Sub(one)
	return algebra.AddMod(recursive(n1.Sub(one), m, c), recursive(n1, m, c), m)
}

func sequential[T algebra.Number[T]](n, m T, c *canceller) T {
	one := n.One()
	a, b := m.Zero(), algebra.Reduce(one, m)
	for i := n.Zero(); !i.Equal(n); i = i.Add(one) {
		if c.stop() {
			return m.Zero()
		}
		a, b = b, algebra.AddMod(a, b, m)
	}
	return a
}

func matrixSequential[T algebra.Number[T]](n, m T, c *canceller) T {
	one := n.One()
	q := matrix.Q[T]()
	t := matrix.Identity[T]()
	for i := n.Zero(); !i.Equal(n); i = i.Add(one) {
		if c.stop() {
			return m.Zero()
		}
		t = matrix.Multiply(t, q, m)
	}
	return t.TopRight()
}

// MatrixPowRecursive reads F(n) from Q^n mod m computed by recursive halving.
func MatrixPowRecursive[T algebra.Number[T]](n, m T) T {
	return MatrixPowRecursiveExp(n, m)
}

// MatrixPowIterative reads F(n) from Q^n mod m computed by square-and-multiply.
func MatrixPowIterative[T algebra.Number[T]](n, m T) T {
	return MatrixPowIterativeExp(n, m)
}

// MatrixPowRecursiveExp is MatrixPowRecursive with an index whose
// representation differs from the modulus, e.g. an arbitrary-precision n
// over a machine-word m.
func MatrixPowRecursiveExp[T algebra.EuclideanDomain[T], U algebra.Exponent[U]](n U, m T) T {
	return matrix.PowRecursive(matrix.Q[T](), n, m).TopRight()
}

// MatrixPowIterativeExp is the iterative counterpart of MatrixPowRecursiveExp.
func MatrixPowIterativeExp[T algebra.EuclideanDomain[T], U algebra.Exponent[U]](n U, m T) T {
	return matrix.PowIterative(matrix.Q[T](), n, m).TopRight()
}

// Extend lifts f to negative indices. For n < 0 it evaluates f at -n and
// applies F(-n) = (-1)^(n+1) F(n): the value is kept when -n is odd and
// negated when -n is even. Unsigned representations never see a negative n.
func Extend[T algebra.Number[T]](f Func[T]) Func[T] {
	return func(n, m T) T {
		if !algebra.IsNegative(n) {
			return f(n, m)
		}
		k := algebra.Abs(n)
		r := f(k, m)
		if algebra.IsOdd(k) {
			return r
		}
		return algebra.Negate(r, m)
	}
}

// Fibonacci returns F(n) mod m computed with strategy s, for any integer n.
// It panics if s is not one of the declared strategies.
func Fibonacci[T algebra.Number[T]](n, m T, s Strategy) T {
	return Extend(funcFor[T](s))(n, m)
}

func funcFor[T algebra.Number[T]](s Strategy) Func[T] {
	return funcWith[T](s, nil)
}

// funcWith is funcFor with the linear strategies bound to c. The logarithmic
// ones finish in O(log n) steps and ignore it.
func funcWith[T algebra.Number[T]](s Strategy, c *canceller) Func[T] {
	switch s {
	case StrategyRecursive:
		return func(n, m T) T { return recursive(n, m, c) }
	case StrategySequential:
		return func(n, m T) T { return sequential(n, m, c) }
	case StrategyMatrixSequential:
		return func(n, m T) T { return matrixSequential(n, m, c) }
	case StrategyMatrixPowRecursive:
		return MatrixPowRecursive[T]
	case StrategyMatrixPowIterative:
		return MatrixPowIterative[T]
	}
	panic("fibonacci: unknown strategy " + s.String())
}
