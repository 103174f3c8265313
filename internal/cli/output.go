package cli

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/fibmod/internal/format"
	"github.com/agbru/fibmod/internal/ui"
)

// OutputConfig holds the result output settings.
type OutputConfig struct {
	// OutputFile is the path to save the result to (empty for none).
	OutputFile string
	// Domain is the numeric type name written to the file header.
	Domain string
}

// FormatResultLine formats the one-line summary of a calculation:
//
//	Mat (loop): n=1000000, F(n)%1000=875 (12µs)
func FormatResultLine(label string, n, m, result *big.Int, duration time.Duration) string {
	return fmt.Sprintf("%s: n=%s, F(n)%%%s=%s (%s)", label, n, m, result, format.FormatExecutionDuration(duration))
}

// DisplayResult prints the result line and, with details, the size of the
// value in digits and bits.
func DisplayResult(out io.Writer, label string, n, m, result *big.Int, duration time.Duration, details bool) {
	fmt.Fprintf(out, "%s%s%s: n=%s%s%s, F(n)%%%s=%s%s%s (%s%s%s)\n",
		ui.ColorBlue(), label, ui.ColorReset(),
		ui.ColorMagenta(), n, ui.ColorReset(),
		m, ui.ColorGreen(), result, ui.ColorReset(),
		ui.ColorYellow(), format.FormatExecutionDuration(duration), ui.ColorReset())
	if !details {
		return
	}
	digits := len(new(big.Int).Abs(result).String())
	fmt.Fprintf(out, "\n%s--- Result details ---%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "Value:     %s%s%s\n", ui.ColorGreen(), format.FormatNumberString(result.String()), ui.ColorReset())
	fmt.Fprintf(out, "Digits:    %s%d%s\n", ui.ColorCyan(), digits, ui.ColorReset())
	fmt.Fprintf(out, "Bits:      %s%d%s\n", ui.ColorCyan(), result.BitLen(), ui.ColorReset())
	fmt.Fprintf(out, "Duration:  %s%s%s\n", ui.ColorCyan(), duration, ui.ColorReset())
}

// DisplayQuietResult prints the value alone, for scripts.
func DisplayQuietResult(out io.Writer, result *big.Int) {
	fmt.Fprintln(out, result.String())
}

// WriteResultToFile writes the result with a commented header to
// cfg.OutputFile, creating missing directories. It does nothing when no file
// is configured.
func WriteResultToFile(result, n, m *big.Int, duration time.Duration, label string, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}
	if dir := filepath.Dir(cfg.OutputFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Fibonacci modulo m\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Strategy: %s\n", label)
	if cfg.Domain != "" {
		fmt.Fprintf(file, "# Type: %s\n", cfg.Domain)
	}
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "\nF(%s) mod %s =\n%s\n", n, m, result)

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
