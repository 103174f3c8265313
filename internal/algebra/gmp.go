//go:build gmp

// This file wires GMP integers into the algebra, conditionally compiled with
// the "gmp" build tag:
//   - the default build uses math/big only and needs no C toolchain
//   - -tags=gmp requires libgmp (libgmp-dev on Debian/Ubuntu, brew install gmp)

package algebra

import (
	"math/big"

	"github.com/ncw/gmp"
)

// GMP is an arbitrary-precision natural number backed by libgmp. It follows
// the same immutability rules as Nat.
type GMP struct {
	v *gmp.Int
}

var _ Number[GMP] = GMP{}

// NewGMP returns the GMP value holding x.
func NewGMP(x int64) GMP {
	return GMP{v: gmp.NewInt(x)}
}

func (x GMP) val() *gmp.Int {
	if x.v == nil {
		return gmp.NewInt(0)
	}
	return x.v
}

func (GMP) Zero() GMP      { return GMP{} }
func (x GMP) IsZero() bool { return x.val().Sign() == 0 }
func (GMP) One() GMP       { return NewGMP(1) }
func (x GMP) IsOne() bool  { return x.val().Cmp(gmp.NewInt(1)) == 0 }

func (x GMP) Add(y GMP) GMP { return GMP{v: new(gmp.Int).Add(x.val(), y.val())} }

// Sub returns x - y and panics on underflow, like Nat.
func (x GMP) Sub(y GMP) GMP {
	if x.val().Cmp(y.val()) < 0 {
		panic("algebra: GMP subtraction underflow")
	}
	return GMP{v: new(gmp.Int).Sub(x.val(), y.val())}
}

func (x GMP) Mul(y GMP) GMP    { return GMP{v: new(gmp.Int).Mul(x.val(), y.val())} }
func (x GMP) Rem(m GMP) GMP    { return GMP{v: new(gmp.Int).Rem(x.val(), m.val())} }
func (x GMP) Equal(y GMP) bool { return x.val().Cmp(y.val()) == 0 }
func (x GMP) And(y GMP) GMP    { return GMP{v: new(gmp.Int).And(x.val(), y.val())} }
func (x GMP) Rsh(s uint) GMP   { return GMP{v: new(gmp.Int).Rsh(x.val(), s)} }
func (x GMP) String() string   { return x.val().String() }

// Big converts x to a math/big integer through its big-endian magnitude.
func (x GMP) Big() *big.Int {
	return new(big.Int).SetBytes(x.val().Bytes())
}

// FromBig converts v into a GMP value. Negative values are rejected.
func (GMP) FromBig(v *big.Int) (GMP, error) {
	if v == nil {
		return GMP{}, nilValue("gmp")
	}
	if v.Sign() < 0 {
		return GMP{}, outOfRange(v, "gmp")
	}
	return GMP{v: new(gmp.Int).SetBytes(v.Bytes())}, nil
}
