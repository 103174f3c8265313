// Package fibonacci computes F(n) mod m with five interchangeable strategies
// over any algebra.Number representation, and exposes them to the rest of
// the application as Calculator values.
//
// The strategies, from slowest to fastest:
//
//   - Recursive: the definition F(n) = F(n-2) + F(n-1), exponential time
//   - Sequential: the pair (F(k), F(k+1)) advanced n times
//   - MatrixSequential: Q multiplied into the identity n times
//   - MatrixPowRecursive and MatrixPowIterative: Q^n by repeated squaring,
//     O(log n) matrix products
//
// Every strategy is defined for n >= 0. Extend lifts one to negative indices
// using F(-n) = (-1)^(n+1) F(n), and Fibonacci always goes through it.
//
// Results are reduced into [0, m) in magnitude. For signed representations a
// negative index with an even magnitude yields a non-positive result; unsigned
// representations return the modular negation instead.
package fibonacci
