package algebra

import (
	"math/big"
	"math/bits"
	"strconv"
)

// I64 is a signed 64-bit ring element. Rem follows Go's truncated division,
// so the remainder carries the sign of the dividend. Rsh is arithmetic.
type I64 int64

var (
	_ Number[I64]            = I64(0)
	_ ModularArithmetic[I64] = I64(0)
	_ Signed[I64]            = I64(0)
)

func (I64) Zero() I64          { return 0 }
func (x I64) IsZero() bool     { return x == 0 }
func (x I64) Add(y I64) I64    { return x + y }
func (x I64) Sub(y I64) I64    { return x - y }
func (I64) One() I64           { return 1 }
func (x I64) IsOne() bool      { return x == 1 }
func (x I64) Mul(y I64) I64    { return x * y }
func (x I64) Rem(m I64) I64    { return x % m }
func (x I64) Equal(y I64) bool { return x == y }
func (x I64) And(y I64) I64    { return x & y }
func (x I64) Rsh(s uint) I64   { return x >> s }
func (x I64) Neg() I64         { return -x }
func (x I64) String() string   { return strconv.FormatInt(int64(x), 10) }
func (x I64) Big() *big.Int    { return big.NewInt(int64(x)) }

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x I64) Sign() int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// abs64 returns |x| as a uint64, which also holds |MinInt64|.
func abs64(x int64) uint64 {
	if x < 0 {
		return uint64(-(x + 1)) + 1
	}
	return uint64(x)
}

// MulMod returns (x * y) rem m on the full 128-bit product of the magnitudes.
// The sign of the result follows the sign of the product, as x.Mul(y).Rem(m)
// would if it did not overflow.
func (x I64) MulMod(y, m I64) I64 {
	hi, lo := bits.Mul64(abs64(int64(x)), abs64(int64(y)))
	r := I64(bits.Rem64(hi, lo, abs64(int64(m))))
	if (x < 0) != (y < 0) {
		return -r
	}
	return r
}

// AddMod returns (x + y) rem m. When the sum of the two reduced operands
// overflows int64, |m| is taken off in wrapping arithmetic, which lands back
// on the exact in-range value.
func (x I64) AddMod(y, m I64) I64 {
	a, b := x%m, y%m
	s := a + b
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		mm := abs64(int64(m))
		if a > 0 {
			s = I64(uint64(s) - mm)
		} else {
			s = I64(uint64(s) + mm)
		}
		return s
	}
	return s % m
}

// FromBig converts v into an I64.
func (I64) FromBig(v *big.Int) (I64, error) {
	if v == nil {
		return 0, nilValue("i64")
	}
	if !v.IsInt64() {
		return 0, outOfRange(v, "i64")
	}
	return I64(v.Int64()), nil
}
