package algebra

import "math/big"

// Int is an arbitrary-precision signed integer with the same immutability
// guarantees as Nat. Rem is truncated (sign of the dividend) and Rsh on a
// negative value rounds toward negative infinity, as in math/big.
type Int struct {
	v *big.Int
}

var (
	_ Number[Int] = Int{}
	_ Signed[Int] = Int{}
)

// NewInt returns the Int holding x.
func NewInt(x int64) Int {
	return Int{v: big.NewInt(x)}
}

func (x Int) val() *big.Int {
	if x.v == nil {
		return bigZero
	}
	return x.v
}

func (Int) Zero() Int      { return Int{} }
func (x Int) IsZero() bool { return x.val().Sign() == 0 }
func (Int) One() Int       { return NewInt(1) }
func (x Int) IsOne() bool  { return x.val().IsInt64() && x.val().Int64() == 1 }
func (x Int) Sign() int    { return x.val().Sign() }

func (x Int) Add(y Int) Int { return Int{v: new(big.Int).Add(x.val(), y.val())} }
func (x Int) Sub(y Int) Int { return Int{v: new(big.Int).Sub(x.val(), y.val())} }
func (x Int) Mul(y Int) Int { return Int{v: new(big.Int).Mul(x.val(), y.val())} }
func (x Int) Rem(m Int) Int { return Int{v: new(big.Int).Rem(x.val(), m.val())} }
func (x Int) Neg() Int      { return Int{v: new(big.Int).Neg(x.val())} }

func (x Int) Equal(y Int) bool { return x.val().Cmp(y.val()) == 0 }
func (x Int) And(y Int) Int    { return Int{v: new(big.Int).And(x.val(), y.val())} }
func (x Int) Rsh(s uint) Int   { return Int{v: new(big.Int).Rsh(x.val(), s)} }

func (x Int) Big() *big.Int  { return new(big.Int).Set(x.val()) }
func (x Int) String() string { return x.val().String() }

// FromBig converts v into an Int.
func (Int) FromBig(v *big.Int) (Int, error) {
	if v == nil {
		return Int{}, nilValue("int")
	}
	return Int{v: new(big.Int).Set(v)}, nil
}
