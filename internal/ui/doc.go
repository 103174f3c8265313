// Package ui holds the color themes shared by the CLI, the usage message and
// the TUI dashboard. ANSI themes feed plain terminal output; TUITheme carries
// the matching lipgloss palette.
//
// Colors are disabled by the -no-color flag or by the NO_COLOR environment
// variable (https://no-color.org/).
package ui
