package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats d for display: microseconds below a
// millisecond, milliseconds below a second and time.Duration's own format
// above. A zero duration is shown as "< 1µs".
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "< 1µs"
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(time.Millisecond).String()
}

// FormatMillis formats d as whole milliseconds right-aligned on three
// columns, the layout of the benchmark table.
func FormatMillis(d time.Duration) string {
	return fmt.Sprintf("%3dms", d.Milliseconds())
}
