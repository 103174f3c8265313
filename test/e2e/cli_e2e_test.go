package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestCLI_E2E builds the fibmod binary and checks its output and exit codes.
func TestCLI_E2E(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end test in short mode")
	}

	tmpDir := t.TempDir()
	binName := "fibmod"
	if runtime.GOOS == "windows" {
		binName = "fibmod.exe"
	}
	binPath := filepath.Join(tmpDir, binName)

	// go test runs in the package directory; build from the module root.
	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/fibmod")
	cmd.Dir = filepath.Join("..", "..")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build fibmod: %v", err)
	}

	tests := []struct {
		name     string
		args     []string
		wantOut  string // substring match (case-insensitive)
		wantCode int
	}{
		{
			name:     "Single Strategy",
			args:     []string{"-algo", "matrix-iter", "10", "1000"},
			wantOut:  "F(n)%1000=55",
			wantCode: 0,
		},
		{
			name:     "All Strategies Comparison",
			args:     []string{"1000", "1000000000"},
			wantOut:  "Global Status: Success",
			wantCode: 0,
		},
		{
			name:     "Quiet Mode",
			args:     []string{"--quiet", "100", "1000000000"},
			wantOut:  "261915075",
			wantCode: 0,
		},
		{
			name:     "Signed Negative Index",
			args:     []string{"-q", "-type", "int", "--", "-10", "1000"},
			wantOut:  "-55",
			wantCode: 0,
		},
		{
			name:     "Unsigned Negative Index",
			args:     []string{"-algo", "matrix", "--", "-10", "1000"},
			wantOut:  "Invalid input",
			wantCode: 4,
		},
		{
			name:     "Index Wider Than 64 Bits",
			args:     []string{"-q", "-type", "nat", "-algo", "matrix-rec", "12345678901234567890123", "1000000000"},
			wantOut:  "",
			wantCode: 0,
		},
		{
			name:     "Zero Modulus",
			args:     []string{"-algo", "matrix", "10", "0"},
			wantOut:  "Invalid input",
			wantCode: 4,
		},
		{
			name:     "Unknown Algorithm",
			args:     []string{"-algo", "bogus", "10", "1000"},
			wantOut:  "unrecognized algorithm",
			wantCode: 4,
		},
		{
			name:     "Very Short Timeout",
			args:     []string{"-algo", "sequential", "-timeout", "1ms", "100000000000", "1000"},
			wantOut:  "Timeout",
			wantCode: 2,
		},
		{
			name:     "Help",
			args:     []string{"--help"},
			wantOut:  "usage",
			wantCode: 0,
		},
		{
			name:     "Version Flag",
			args:     []string{"--version"},
			wantOut:  "fibmod",
			wantCode: 0,
		},
		{
			name:     "Completion",
			args:     []string{"-completion", "zsh"},
			wantOut:  "#compdef fibmod",
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			if err != nil {
				var exitErr *exec.ExitError
				if !errors.As(err, &exitErr) {
					t.Fatalf("Command did not run: %v", err)
				}
				code = exitErr.ExitCode()
			}
			if code != tt.wantCode {
				t.Errorf("Exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}

			if tt.wantOut != "" && !strings.Contains(strings.ToLower(outStr), strings.ToLower(tt.wantOut)) {
				t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", tt.wantOut, outStr)
			}
		})
	}
}
