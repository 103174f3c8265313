package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/agbru/fibmod/internal/config"
	"github.com/agbru/fibmod/internal/fibonacci"
	"github.com/agbru/fibmod/internal/ui"
)

// PrintExecutionConfig displays the calculation inputs, the timeout and the
// runtime environment.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Calculating %sF(%s) mod %s%s over %s%s%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.N, cfg.M, ui.ColorReset(),
		ui.ColorCyan(), cfg.Type, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s, %s/%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorCyan(), runtime.Version(), ui.ColorReset(),
		runtime.GOOS, runtime.GOARCH)
	if features := CPUFeatures(); len(features) > 0 {
		fmt.Fprintf(out, "CPU features: %s%s%s.\n", ui.ColorCyan(), strings.Join(features, ", "), ui.ColorReset())
	}
	limit := cfg.RecursiveLimit
	if limit == 0 {
		limit = fibonacci.DefaultRecursiveLimit
	}
	fmt.Fprintf(out, "Recursive strategy limit: |n| <= %s%d%s.\n", ui.ColorCyan(), limit, ui.ColorReset())
}

// CPUFeatures lists the instruction set extensions relevant to wide integer
// arithmetic that the processor supports.
func CPUFeatures() []string {
	var features []string
	add := func(ok bool, name string) {
		if ok {
			features = append(features, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasBMI2, "BMI2")
		add(cpu.X86.HasADX, "ADX")
		add(cpu.X86.HasAVX2, "AVX2")
		add(cpu.X86.HasAVX512F, "AVX-512F")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "ASIMD")
		add(cpu.ARM64.HasSVE, "SVE")
	}
	return features
}

// PrintExecutionMode displays whether one strategy runs or all of them are
// compared.
func PrintExecutionMode(calculators []fibonacci.Calculator, out io.Writer) {
	modeDesc := "Parallel comparison of all strategies"
	if len(calculators) == 1 {
		modeDesc = fmt.Sprintf("Single calculation with the %s%s%s strategy",
			ui.ColorGreen(), calculators[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
