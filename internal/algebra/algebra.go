package algebra

import (
	"fmt"
	"math/big"
)

// AdditiveGroup is the set of operations closed under addition, with Zero as
// the identity element.
type AdditiveGroup[T any] interface {
	// Zero returns the additive identity. It must not depend on the receiver's
	// value, so it can be called on the zero value of T.
	Zero() T
	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool
	// Add returns receiver + y.
	Add(y T) T
	// Sub returns receiver - y.
	Sub(y T) T
}

// MultiplicativeGroup is the set of operations closed under multiplication,
// with One as the identity element.
type MultiplicativeGroup[T any] interface {
	// One returns the multiplicative identity. Like Zero, it can be called on
	// the zero value of T.
	One() T
	// IsOne reports whether the receiver is the multiplicative identity.
	IsOne() bool
	// Mul returns receiver * y.
	Mul(y T) T
}

// Ring combines the additive and multiplicative groups.
type Ring[T any] interface {
	AdditiveGroup[T]
	MultiplicativeGroup[T]
}

// EuclideanDomain is a Ring with a remainder operation and equality, which is
// the minimum needed for arithmetic modulo m.
type EuclideanDomain[T any] interface {
	Ring[T]
	// Rem returns the remainder of the receiver divided by m. m must be
	// non-zero.
	Rem(m T) T
	// Equal reports whether the receiver and y hold the same value.
	Equal(y T) bool
}

// Exponent is the minimum needed to walk an integer's binary digits from the
// least significant bit upward: parity via And(One()) and halving via Rsh(1).
// It is independent of EuclideanDomain so that the exponent of a matrix power
// may use a different representation than the matrix entries.
type Exponent[U any] interface {
	Zero() U
	One() U
	IsZero() bool
	// And returns the bitwise AND of the receiver and y.
	And(y U) U
	// Rsh returns the receiver shifted right by s bits.
	Rsh(s uint) U
	Equal(y U) bool
}

// ModularArithmetic is implemented by fixed-width types whose plain Mul or Add
// may overflow before the reduction step. MulMod and AddMod compute the exact
// reduced result using wider intermediate precision.
type ModularArithmetic[T any] interface {
	MulMod(y, m T) T
	AddMod(y, m T) T
}

// Signed is implemented by representations that can hold negative values.
type Signed[T any] interface {
	// Sign returns -1, 0 or +1.
	Sign() int
	// Neg returns the additive inverse of the receiver.
	Neg() T
}

// Convertible moves values across the boundary between a concrete
// representation and *big.Int, which the calculator layer uses as its
// representation-neutral currency.
type Convertible[T any] interface {
	// FromBig converts v into T. It returns an error wrapping ErrOutOfRange
	// when v cannot be represented.
	FromBig(v *big.Int) (T, error)
	// Big returns a fresh *big.Int holding the receiver's value.
	Big() *big.Int
	fmt.Stringer
}

// Number is a type usable both as ring element and as exponent, as the index
// and modulus of the Fibonacci functions are.
type Number[T any] interface {
	EuclideanDomain[T]
	Exponent[T]
	Convertible[T]
}

// MulMod returns (x * y) mod m, using the type's widening MulMod when it has
// one.
func MulMod[T EuclideanDomain[T]](x, y, m T) T {
	if w, ok := any(x).(ModularArithmetic[T]); ok {
		return w.MulMod(y, m)
	}
	return x.Mul(y).Rem(m)
}

// AddMod returns (x + y) mod m, using the type's widening AddMod when it has
// one.
func AddMod[T EuclideanDomain[T]](x, y, m T) T {
	if w, ok := any(x).(ModularArithmetic[T]); ok {
		return w.AddMod(y, m)
	}
	return x.Add(y).Rem(m)
}

// Reduce returns x mod m.
func Reduce[T EuclideanDomain[T]](x, m T) T {
	return x.Rem(m)
}

// IsOdd reports whether the lowest bit of n is set.
func IsOdd[U Exponent[U]](n U) bool {
	one := n.One()
	return n.And(one).Equal(one)
}

// Negate returns the negation of r. Signed representations return -r as is;
// unsigned ones return the modular negation (m - r) mod m, which is the only
// negation they can hold.
func Negate[T EuclideanDomain[T]](r, m T) T {
	if s, ok := any(r).(Signed[T]); ok {
		return s.Neg()
	}
	return m.Sub(r.Rem(m)).Rem(m)
}

// IsNegative reports whether n is a negative value of a signed
// representation. Unsigned representations are never negative.
func IsNegative[T any](n T) bool {
	if s, ok := any(n).(Signed[T]); ok {
		return s.Sign() < 0
	}
	return false
}

// Abs returns the absolute value of n, and n itself for unsigned
// representations.
func Abs[T any](n T) T {
	if s, ok := any(n).(Signed[T]); ok && s.Sign() < 0 {
		return s.Neg()
	}
	return n
}

// FromUint64 converts a small constant into T through the Convertible
// boundary. It panics if T cannot represent v, which only happens for
// programming errors.
func FromUint64[T Convertible[T]](v uint64) T {
	var zero T
	x, err := zero.FromBig(new(big.Int).SetUint64(v))
	if err != nil {
		panic(fmt.Sprintf("algebra: constant %d not representable: %v", v, err))
	}
	return x
}
