//go:build gmp

// This file registers the libgmp-backed domain, conditionally compiled with
// the "gmp" build tag:
//   - the default build uses math/big and needs no C toolchain
//   - go build -tags=gmp requires libgmp (libgmp-dev, brew install gmp)

package fibonacci

import "github.com/agbru/fibmod/internal/algebra"

func init() {
	RegisterDomain("gmp", domainOf[algebra.GMP]("gmp"))
}
