// Package algebra defines the capability interfaces a numeric type must
// satisfy to take part in modular Fibonacci arithmetic, and wires the
// concrete integer representations into them.
//
// The interfaces are self-referential generic constraints: a type T satisfies
// Ring[T] when its own methods return T. Go's built-in integers carry no
// methods, so each representation is a small named type (U64, I64) or a
// wrapper around an arbitrary-precision integer (Nat, Int, and GMP when built
// with the "gmp" tag).
//
// The algebraic laws (associativity, identities, distributivity) are not
// checked at runtime. They are an obligation of each implementation.
package algebra
