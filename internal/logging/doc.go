// Package logging provides the structured logging interface of fibmod and
// its zerolog and standard-library backends.
//
// Diagnostics go to stderr so that stdout carries only results. The global
// zerolog logger, used by the calculators for their debug lines, is
// configured by Setup from the -log-level flag.
package logging
