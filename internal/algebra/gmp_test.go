//go:build gmp

package algebra

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGMP_IsUnsigned(t *testing.T) {
	t.Parallel()

	t.Run("Sub underflow panics", func(t *testing.T) {
		assert.Panics(t, func() { NewGMP(1).Sub(NewGMP(2)) })
	})

	t.Run("FromBig rejects negatives", func(t *testing.T) {
		_, err := GMP{}.FromBig(big.NewInt(-5))
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("never negative", func(t *testing.T) {
		assert.False(t, IsNegative(NewGMP(3)))
		v, err := GMP{}.FromBig(big.NewInt(875))
		require.NoError(t, err)
		assert.Equal(t, "875", v.Big().String())
		assert.Equal(t, "2", MulMod(NewGMP(4), NewGMP(5), NewGMP(6)).String())
	})
}
