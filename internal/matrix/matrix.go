package matrix

import (
	"fmt"

	"github.com/agbru/fibmod/internal/algebra"
)

// Matrix is the 2×2 matrix
//
//	| A  B |
//	| C  D |
//
// Matrices are values: no operation modifies its operands.
type Matrix[T algebra.EuclideanDomain[T]] struct {
	A, B T
	C, D T
}

// New returns the matrix ((a, b), (c, d)).
func New[T algebra.EuclideanDomain[T]](a, b, c, d T) Matrix[T] {
	return Matrix[T]{A: a, B: b, C: c, D: d}
}

// Zero returns the zero matrix ((0, 0), (0, 0)).
func Zero[T algebra.EuclideanDomain[T]]() Matrix[T] {
	var t T
	z := t.Zero()
	return Matrix[T]{A: z, B: z, C: z, D: z}
}

// Identity returns ((1, 0), (0, 1)).
func Identity[T algebra.EuclideanDomain[T]]() Matrix[T] {
	var t T
	z, o := t.Zero(), t.One()
	return Matrix[T]{A: o, B: z, C: z, D: o}
}

// Q returns the Fibonacci Q-matrix ((0, 1), (1, 1)). For n >= 0,
//
//	Q^n = ((F(n-1), F(n)), (F(n), F(n+1)))
func Q[T algebra.EuclideanDomain[T]]() Matrix[T] {
	var t T
	z, o := t.Zero(), t.One()
	return Matrix[T]{A: z, B: o, C: o, D: o}
}

// Multiply returns x*y with every entry reduced modulo m. m must be non-zero.
func Multiply[T algebra.EuclideanDomain[T]](x, y Matrix[T], m T) Matrix[T] {
	dot := func(p, q, r, s T) T {
		return algebra.AddMod(algebra.MulMod(p, q, m), algebra.MulMod(r, s, m), m)
	}
	return Matrix[T]{
		A: dot(x.A, y.A, x.B, y.C),
		B: dot(x.A, y.B, x.B, y.D),
		C: dot(x.C, y.A, x.D, y.C),
		D: dot(x.C, y.B, x.D, y.D),
	}
}

// PowRecursive returns x^n mod m by recursive halving. The recursion depth is
// the bit length of n.
func PowRecursive[T algebra.EuclideanDomain[T], U algebra.Exponent[U]](x Matrix[T], n U, m T) Matrix[T] {
	if n.IsZero() {
		return Identity[T]()
	}
	y := PowRecursive(x, n.Rsh(1), m)
	y = Multiply(y, y, m)
	if algebra.IsOdd(n) {
		y = Multiply(y, x, m)
	}
	return y
}

// PowIterative returns x^n mod m by square-and-multiply over the bits of n,
// least significant first.
func PowIterative[T algebra.EuclideanDomain[T], U algebra.Exponent[U]](x Matrix[T], n U, m T) Matrix[T] {
	z := Identity[T]()
	y := x
	for !n.IsZero() {
		if algebra.IsOdd(n) {
			z = Multiply(z, y, m)
		}
		y = Multiply(y, y, m)
		n = n.Rsh(1)
	}
	return z
}

// Mul returns x*y mod m.
func (x Matrix[T]) Mul(y Matrix[T], m T) Matrix[T] {
	return Multiply(x, y, m)
}

// Pow returns x^n mod m using the iterative strategy.
func (x Matrix[T]) Pow(n uint64, m T) Matrix[T] {
	return PowIterative(x, algebra.U64(n), m)
}

// Equal reports whether x and y hold the same entries.
func (x Matrix[T]) Equal(y Matrix[T]) bool {
	return x.A.Equal(y.A) && x.B.Equal(y.B) && x.C.Equal(y.C) && x.D.Equal(y.D)
}

// TopRight returns the B entry, which holds F(n) in Q^n.
func (x Matrix[T]) TopRight() T {
	return x.B
}

func (x Matrix[T]) String() string {
	return fmt.Sprintf("((%v, %v), (%v, %v))", x.A, x.B, x.C, x.D)
}
