// Package orchestration runs the selected calculators concurrently and
// compares their results. Presentation stays behind the ProgressReporter,
// ResultPresenter and ErrorHandler interfaces so the CLI and the TUI can share
// the same execution path.
package orchestration
