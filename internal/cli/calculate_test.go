package cli

import (
	"bytes"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/agbru/fibmod/internal/config"
	"github.com/agbru/fibmod/internal/fibonacci"
	"github.com/agbru/fibmod/internal/orchestration"
)

func TestPrintExecutionConfig(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	cfg := config.AppConfig{
		N:       big.NewInt(1000),
		M:       big.NewInt(7),
		Type:    "nat",
		Timeout: time.Minute,
	}

	PrintExecutionConfig(cfg, &buf)

	output := buf.String()
	for _, s := range []string{"Calculating F(1000) mod 7 over nat with a timeout of 1m0s.", "logical processors", "|n| <= 35"} {
		if !strings.Contains(output, s) {
			t.Errorf("output should contain %q, got:\n%s", s, output)
		}
	}
}

func TestCPUFeatures(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for _, f := range CPUFeatures() {
		if f == "" || seen[f] {
			t.Errorf("unexpected feature entry %q in %v", f, CPUFeatures())
		}
		seen[f] = true
	}
}

func TestPrintExecutionMode(t *testing.T) {
	t.Parallel()
	factory := fibonacci.NewDefaultFactory()

	t.Run("Single calculator mode", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		PrintExecutionMode([]fibonacci.Calculator{factory.MustGet("matrix-rec")}, &buf)
		if !strings.Contains(buf.String(), "Single calculation with the Mat (rec) strategy") {
			t.Errorf("unexpected output:\n%s", buf.String())
		}
	})

	t.Run("Multiple calculators mode", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		PrintExecutionMode(orchestration.GetCalculatorsToRun("all", factory), &buf)
		if !strings.Contains(buf.String(), "Parallel comparison of all strategies") {
			t.Errorf("unexpected output:\n%s", buf.String())
		}
	})
}
