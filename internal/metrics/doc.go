// Package metrics exposes the application's Prometheus metrics as text and
// measures the memory cost of a run.
package metrics
