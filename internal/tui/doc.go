// Package tui implements the -tui dashboard: every selected strategy runs
// concurrently on the same F(n) mod m, and the dashboard shows each one's
// state, duration and value and whether the values agree. The footer
// samples the process heap and the host CPU and memory usage.
package tui
