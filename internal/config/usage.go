package config

import (
	"flag"
	"fmt"

	"github.com/agbru/fibmod/internal/ui"
)

// setCustomUsage installs a colored usage message on fs.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		// Theme initialization happens after parsing, so NO_COLOR is checked here.
		t := ui.GetCurrentTheme()
		if ui.NoColorRequested() {
			t = ui.NoColorTheme
		}
		out := fs.Output()

		fmt.Fprintf(out, "\n%sfibmod%s computes the n-th Fibonacci number modulo m.\n\n", t.Bold, t.Reset)
		fmt.Fprintf(out, "%sUsage:%s\n  %s [flags] <n> <m>\n\n", t.Warning, t.Reset, fs.Name())
		fmt.Fprintf(out, "n may be negative for the signed types (i64, int); put -- before it:\n  %s -type int -- -10 1000\n\n", fs.Name())
		fmt.Fprintf(out, "%sFlags:%s\n", t.Warning, t.Reset)

		fs.VisitAll(func(f *flag.Flag) {
			name, usage := flag.UnquoteUsage(f)
			sig := "-" + f.Name
			if name != "" {
				sig += " " + name
			}
			fmt.Fprintf(out, "  %s%-25s%s %s", t.Primary, sig, t.Reset, usage)
			if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "false" {
				fmt.Fprintf(out, " %s(default %s)%s", t.Secondary, f.DefValue, t.Reset)
			}
			fmt.Fprintln(out)
		})
		fmt.Fprintln(out)
	}
}
