package fibonacci

import (
	"errors"
	"math/big"
)

// ErrInvalidModulus is returned by FastDoublingMod for a modulus that is nil
// or not positive.
var ErrInvalidModulus = errors.New("modulus must be positive")

// FastDoublingMod computes F(n) mod m on math/big integers, independently of
// the generic strategies. It is the reference the golden file and the
// cross-strategy tests are checked against.
//
// It walks the bits of |n| from the most significant one using:
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))  mod m
//	F(2k+1) = F(k+1)² + F(k)²            mod m
//
// A negative n follows F(-n) = (-1)^(n+1) F(n); the result is then in
// (-m, 0] when negated, matching the signed domains.
func FastDoublingMod(n, m *big.Int) (*big.Int, error) {
	if m == nil || m.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}
	k := new(big.Int).Abs(n)

	fk := big.NewInt(0)  // F(k)
	fk1 := big.NewInt(1) // F(k+1)
	fk1.Mod(fk1, m)
	t1 := new(big.Int)
	t2 := new(big.Int)

	for i := k.BitLen() - 1; i >= 0; i-- {
		// F(2k) = F(k) * (2*F(k+1) - F(k)) mod m
		t1.Lsh(fk1, 1)
		t1.Sub(t1, fk)
		t1.Mod(t1, m) // Mod keeps the difference non-negative
		t1.Mul(t1, fk)
		t1.Mod(t1, m)

		// F(2k+1) = F(k+1)² + F(k)² mod m
		t2.Mul(fk1, fk1)
		fk.Mul(fk, fk)
		t2.Add(t2, fk)
		t2.Mod(t2, m)

		fk.Set(t1)
		fk1.Set(t2)

		// If bit is set: shift to F(2k+1), F(2k+2)
		if k.Bit(i) == 1 {
			t1.Add(fk, fk1)
			t1.Mod(t1, m)
			fk.Set(fk1)
			fk1.Set(t1)
		}
	}

	if n.Sign() < 0 && k.Bit(0) == 0 {
		fk.Neg(fk)
	}
	return fk, nil
}

// FastDoublingModUnsigned is FastDoublingMod with negated values mapped back
// into [0, m), matching the unsigned domains.
func FastDoublingModUnsigned(n, m *big.Int) (*big.Int, error) {
	r, err := FastDoublingMod(n, m)
	if err != nil {
		return nil, err
	}
	return r.Mod(r, m), nil
}
