// Package cli holds the terminal presentation of fibmod: progress spinner,
// result lines, comparison table, file output, shell completion, the
// benchmark table and the interactive prompt.
//
// Functions follow a naming pattern:
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a string and perform no I/O.
//   - Write* functions write to the filesystem.
package cli
