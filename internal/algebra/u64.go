package algebra

import (
	"math/big"
	"math/bits"
	"strconv"
)

// U64 is an unsigned 64-bit ring element. Plain Add and Mul wrap around on
// overflow; MulMod and AddMod widen to 128 bits so that reduction modulo any
// non-zero U64 is exact.
type U64 uint64

var (
	_ Number[U64]            = U64(0)
	_ ModularArithmetic[U64] = U64(0)
)

func (U64) Zero() U64          { return 0 }
func (x U64) IsZero() bool     { return x == 0 }
func (x U64) Add(y U64) U64    { return x + y }
func (x U64) Sub(y U64) U64    { return x - y }
func (U64) One() U64           { return 1 }
func (x U64) IsOne() bool      { return x == 1 }
func (x U64) Mul(y U64) U64    { return x * y }
func (x U64) Rem(m U64) U64    { return x % m }
func (x U64) Equal(y U64) bool { return x == y }
func (x U64) And(y U64) U64    { return x & y }
func (x U64) Rsh(s uint) U64   { return x >> s }
func (x U64) String() string   { return strconv.FormatUint(uint64(x), 10) }
func (x U64) Big() *big.Int    { return new(big.Int).SetUint64(uint64(x)) }

// MulMod returns (x * y) mod m computed on the full 128-bit product.
func (x U64) MulMod(y, m U64) U64 {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	return U64(bits.Rem64(hi, lo, uint64(m)))
}

// AddMod returns (x + y) mod m without losing the carry out of 64 bits.
func (x U64) AddMod(y, m U64) U64 {
	a, b := uint64(x)%uint64(m), uint64(y)%uint64(m)
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= uint64(m) {
		s -= uint64(m)
	}
	return U64(s)
}

// FromBig converts v into a U64.
func (U64) FromBig(v *big.Int) (U64, error) {
	if v == nil {
		return 0, nilValue("u64")
	}
	if !v.IsUint64() {
		return 0, outOfRange(v, "u64")
	}
	return U64(v.Uint64()), nil
}
