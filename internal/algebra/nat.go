package algebra

import "math/big"

// Nat is an arbitrary-precision natural number. The zero value is 0. Nat
// values are immutable: every operation returns a freshly allocated result
// and never modifies its operands.
type Nat struct {
	v *big.Int
}

var _ Number[Nat] = Nat{}

// NewNat returns the Nat holding x.
func NewNat(x uint64) Nat {
	return Nat{v: new(big.Int).SetUint64(x)}
}

var bigZero = new(big.Int)

// val returns the underlying value for reading only.
func (x Nat) val() *big.Int {
	if x.v == nil {
		return bigZero
	}
	return x.v
}

func (Nat) Zero() Nat      { return Nat{} }
func (x Nat) IsZero() bool { return x.val().Sign() == 0 }
func (Nat) One() Nat       { return NewNat(1) }
func (x Nat) IsOne() bool  { return x.val().IsUint64() && x.val().Uint64() == 1 }

func (x Nat) Add(y Nat) Nat {
	return Nat{v: new(big.Int).Add(x.val(), y.val())}
}

// Sub returns x - y. It panics when y > x, since the result is not a natural
// number.
func (x Nat) Sub(y Nat) Nat {
	if x.val().Cmp(y.val()) < 0 {
		panic("algebra: Nat subtraction underflow")
	}
	return Nat{v: new(big.Int).Sub(x.val(), y.val())}
}

func (x Nat) Mul(y Nat) Nat {
	return Nat{v: new(big.Int).Mul(x.val(), y.val())}
}

func (x Nat) Rem(m Nat) Nat {
	return Nat{v: new(big.Int).Rem(x.val(), m.val())}
}

func (x Nat) Equal(y Nat) bool {
	return x.val().Cmp(y.val()) == 0
}

func (x Nat) And(y Nat) Nat {
	return Nat{v: new(big.Int).And(x.val(), y.val())}
}

func (x Nat) Rsh(s uint) Nat {
	return Nat{v: new(big.Int).Rsh(x.val(), s)}
}

// BitLen returns the length of x in bits.
func (x Nat) BitLen() int { return x.val().BitLen() }

func (x Nat) Big() *big.Int  { return new(big.Int).Set(x.val()) }
func (x Nat) String() string { return x.val().String() }

// FromBig converts v into a Nat. Negative values are rejected.
func (Nat) FromBig(v *big.Int) (Nat, error) {
	if v == nil {
		return Nat{}, nilValue("nat")
	}
	if v.Sign() < 0 {
		return Nat{}, outOfRange(v, "nat")
	}
	return Nat{v: new(big.Int).Set(v)}, nil
}
