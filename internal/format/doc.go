// Package format turns durations, numbers and byte counts into display
// strings. It performs no I/O.
package format
