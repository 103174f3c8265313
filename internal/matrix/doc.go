// Package matrix implements 2×2 matrices over any algebra.EuclideanDomain and
// their exponentiation modulo m.
//
// Two power strategies are provided. PowRecursive halves the exponent on the
// way down and squares on the way back up; PowIterative walks the exponent's
// bits from the least significant one with an accumulator. Both are
// O(log n) multiplications and must return identical results.
//
// The exponent is a separate type parameter from the entry type, so a
// matrix over machine words can be raised to an arbitrary-precision power.
package matrix
