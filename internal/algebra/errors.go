package algebra

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrOutOfRange is returned (wrapped) by FromBig when a value does not fit the
// target representation.
var ErrOutOfRange = errors.New("value out of range")

func outOfRange(v *big.Int, kind string) error {
	return fmt.Errorf("%w: %s does not fit in %s", ErrOutOfRange, v.String(), kind)
}

func nilValue(kind string) error {
	return fmt.Errorf("%w: nil value for %s", ErrOutOfRange, kind)
}
