package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// The theme is process-wide, so these tests do not run in parallel.

func TestSetTheme(t *testing.T) {
	original := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(original) })

	tests := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"none", "none"},
		{"solarized", "dark"},
		{"", "dark"},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q): got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitTheme(t *testing.T) {
	original := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(original) })

	t.Run("flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if got := GetCurrentTheme(); got.Name != "none" || got.Primary != "" {
			t.Errorf("InitTheme(true) = %+v, want the no-color theme", got)
		}
	})

	t.Run("NO_COLOR disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		InitTheme(false)
		if got := GetCurrentTheme().Name; got != "none" {
			t.Errorf("theme = %q, want none", got)
		}
		if _, ok := GetCurrentTUITheme().Accent.(lipgloss.NoColor); !ok {
			t.Error("TUI palette should have no colors")
		}
	})
}

func TestColorHelpers(t *testing.T) {
	original := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(original) })

	SetCurrentTheme(DarkTheme)
	if ColorRed() != DarkTheme.Error || ColorGreen() != DarkTheme.Success || ColorReset() != "\033[0m" {
		t.Error("color helpers should read the dark theme")
	}
	if GetCurrentTUITheme() != DarkTUITheme {
		t.Error("dark theme should select the dark TUI palette")
	}

	SetCurrentTheme(NoColorTheme)
	for name, got := range map[string]string{
		"red": ColorRed(), "yellow": ColorYellow(), "blue": ColorBlue(),
		"magenta": ColorMagenta(), "cyan": ColorCyan(), "bold": ColorBold(),
		"underline": ColorUnderline(), "reset": ColorReset(),
	} {
		if got != "" {
			t.Errorf("%s = %q, want empty", name, got)
		}
	}
}
